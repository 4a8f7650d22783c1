// Package nav models the site navigation bar: an ordered tree of leaves, link items
// and groups whose prefixes compose down the tree into effective link paths.
package nav

import (
	"regexp"
	"strconv"
	"strings"
)

// protocolLink matches links such as https://..., mailto:... that are never prefixed.
var protocolLink = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Navbar is the immutable navigation tree handed to the site framework.
// Construct it with New; the zero value is an empty navbar.
type Navbar struct {
	nodes []Node
}

// New builds a navbar from the top-level nodes in menu order.
// The nodes are copied, so later changes to the arguments do not leak into the navbar.
func New(nodes ...Node) *Navbar {
	return &Navbar{nodes: cloneNodes(nodes)}
}

// Nodes returns a copy of the top-level nodes.
func (n *Navbar) Nodes() []Node {
	if n == nil {
		return nil
	}
	return cloneNodes(n.nodes)
}

// Len is the number of top-level nodes.
func (n *Navbar) Len() int {
	if n == nil {
		return 0
	}
	return len(n.nodes)
}

// Entry is a node together with its position and its resolved path.
type Entry struct {
	// Kind of the node.
	Kind Kind `json:"kind"`

	// Text is the node label (leaf identifier for leaves).
	Text string `json:"text"`

	// Icon of the node, if any.
	Icon string `json:"icon,omitempty"`

	// Path is the effective link for leaves and link items, and the effective
	// prefix for groups.
	Path string `json:"path"`

	// Depth is 0 for top-level nodes.
	Depth int `json:"depth"`

	// Trail holds the labels of the enclosing groups, outermost first.
	Trail []string `json:"trail,omitempty"`

	// Location is the node address within the document, e.g. [1].children[0].
	Location string `json:"location"`
}

// Entries walks the tree in menu order (pre-order) and resolves every node.
func (n *Navbar) Entries() []Entry {
	var out []Entry
	n.Walk(func(e Entry, _ Node) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Links returns the resolved entries that carry a link: leaves and link items.
func (n *Navbar) Links() []Entry {
	var out []Entry
	for _, e := range n.Entries() {
		if e.Kind != KindGroup {
			out = append(out, e)
		}
	}
	return out
}

// Resolve returns the effective path of the first link-bearing node with the given label.
func (n *Navbar) Resolve(label string) (string, bool) {
	for _, e := range n.Links() {
		if e.Text == label {
			return e.Path, true
		}
	}
	return "", false
}

// Walk visits every node in menu order. Returning false from fn skips the node's children.
func (n *Navbar) Walk(fn func(Entry, Node) bool) {
	if n == nil {
		return
	}
	walk(n.nodes, "", 0, nil, "", fn)
}

func walk(nodes []Node, prefix string, depth int, trail []string, loc string, fn func(Entry, Node) bool) {
	for i, node := range nodes {
		e := Entry{
			Kind:     node.kind,
			Text:     node.Label(),
			Icon:     node.Icon,
			Depth:    depth,
			Trail:    append([]string(nil), trail...),
			Location: location(loc, i),
		}

		if node.kind != KindGroup {
			e.Path = JoinPath(prefix, node.Link)
			fn(e, node)
			continue
		}

		e.Path = JoinPath(prefix, node.Prefix)
		if !fn(e, node) {
			continue
		}
		walk(node.Children, e.Path, depth+1, append(e.Trail, node.Text), e.Location+".children", fn)
	}
}

func location(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// JoinPath resolves link against an accumulated prefix. Relative links are
// concatenated onto the prefix; absolute and protocol links stand on their own.
func JoinPath(prefix, link string) string {
	if IsAbsolute(link) {
		return link
	}
	return prefix + link
}

// IsAbsolute reports whether link ignores the enclosing prefix.
func IsAbsolute(link string) bool {
	return strings.HasPrefix(link, "/") || protocolLink.MatchString(link)
}
