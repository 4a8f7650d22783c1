package nav

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNode is returned when a document holds a value that is not a string,
	// a link item or a group item.
	ErrInvalidNode = errors.New("invalid navigation node")

	// ErrUnknownFormat is returned for document formats other than yaml and json.
	ErrUnknownFormat = errors.New("unknown navbar format")
)

// Kind identifies which of the three node shapes a Node holds.
type Kind int

const (
	// KindLeaf is a bare string, a shorthand link identifier.
	KindLeaf Kind = iota
	// KindLink is a {text, icon, link} item.
	KindLink
	// KindGroup is a {text, icon, prefix, children} submenu.
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindLink:
		return "link"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler so kinds read well in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText reads the names written by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "leaf":
		*k = KindLeaf
	case "link":
		*k = KindLink
	case "group":
		*k = KindGroup
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidNode, b)
	}
	return nil
}

// Node is one entry of the navigation tree.
type Node struct {
	kind Kind

	// Text is the display label. Empty for leaves.
	Text string

	// Icon is the framework icon identifier.
	Icon string

	// Link is the path fragment of a link item, or the identifier of a leaf.
	Link string

	// Prefix is prepended to relative links of all descendants of a group.
	Prefix string

	// Children are the ordered sub-entries of a group. Never nil for groups.
	Children []Node
}

// Leaf returns a shorthand node such as "/" or "tomato".
func Leaf(ref string) Node {
	return Node{kind: KindLeaf, Link: ref}
}

// Item returns a link item.
func Item(text, icon, link string) Node {
	return Node{kind: KindLink, Text: text, Icon: icon, Link: link}
}

// Group returns a submenu whose children inherit prefix.
func Group(text, icon, prefix string, children ...Node) Node {
	return Node{
		kind:     KindGroup,
		Text:     text,
		Icon:     icon,
		Prefix:   prefix,
		Children: cloneNodes(children),
	}
}

// Kind reports the shape of the node.
func (n Node) Kind() Kind {
	return n.kind
}

// IsGroup is shorthand for n.Kind() == KindGroup.
func (n Node) IsGroup() bool {
	return n.kind == KindGroup
}

// Label is the text shown for the node; leaves show their identifier.
func (n Node) Label() string {
	if n.kind == KindLeaf {
		return n.Link
	}
	return n.Text
}

func (n Node) clone() Node {
	c := n
	if n.kind == KindGroup {
		c.Children = cloneNodes(n.Children)
	}
	return c
}

func cloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i := range nodes {
		out[i] = nodes[i].clone()
	}
	return out
}
