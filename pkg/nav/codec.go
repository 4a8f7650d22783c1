package nav

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a document encoding for navbar files.
type Format string

const (
	// FormatYAML is the default on-disk format.
	FormatYAML Format = "yaml"
	// FormatJSON matches the array the framework receives.
	FormatJSON Format = "json"
)

// FormatFromPath infers the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads a navbar document from path.
func Load(path string) (*Navbar, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open navbar %s: %w", path, err)
	}
	defer f.Close()

	nb, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode navbar %s: %w", path, err)
	}

	return nb, nil
}

// Decode reads a top-level sequence of nodes in the given format.
func Decode(r io.Reader, format Format) (*Navbar, error) {
	var nodes []Node

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := decodeSingle(dec.Decode, &nodes, new(yaml.Node)); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := decodeSingle(dec.Decode, &nodes, new(json.RawMessage)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Navbar{nodes: nodes}, nil
}

// decodeSingle decodes exactly one document into v. An empty stream is allowed;
// anything after the first document is an error.
func decodeSingle(decode func(interface{}) error, v, rest interface{}) error {
	if err := decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := decode(rest); !errors.Is(err, io.EOF) {
		if err != nil {
			return fmt.Errorf("unexpected data after navbar document: %w", err)
		}
		return errors.New("unexpected data after navbar document")
	}
	return nil
}

// Encode writes the navbar as a top-level sequence in the given format.
func Encode(w io.Writer, nb *Navbar, format Format) error {
	nodes := nb.Nodes()
	if nodes == nil {
		nodes = []Node{}
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// MarshalJSON encodes the navbar as the array passed to the framework builder.
func (n *Navbar) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, n, FormatJSON); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a top-level array of nodes.
func (n *Navbar) UnmarshalJSON(data []byte) error {
	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return err
	}
	n.nodes = nodes
	return nil
}

type linkDoc struct {
	Text string `json:"text" yaml:"text"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Link string `json:"link" yaml:"link"`
}

type groupDoc struct {
	Text     string `json:"text" yaml:"text"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Children []Node `json:"children" yaml:"children"`
}

// MarshalJSON encodes leaves as bare strings and items as objects.
func (n Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(n.document()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON accepts a string, a link object or a group object.
// An object is a group when it carries a "children" key.
func (n *Node) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidNode
	}

	switch data[0] {
	case '"':
		var ref string
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}
		*n = Leaf(ref)
		return nil
	case '{':
	default:
		return fmt.Errorf("%w: %s", ErrInvalidNode, data)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	if _, ok := keys["children"]; ok {
		var g groupDoc
		if err := json.Unmarshal(data, &g); err != nil {
			return err
		}
		*n = groupFromDoc(g)
		return nil
	}

	var l linkDoc
	if err := json.Unmarshal(data, &l); err != nil {
		return err
	}
	*n = Item(l.Text, l.Icon, l.Link)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (n Node) MarshalYAML() (interface{}, error) {
	return n.document(), nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*n = Leaf(value.Value)
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidNode, value.Line)
	}

	if hasKey(value, "children") {
		var g groupDoc
		if err := value.Decode(&g); err != nil {
			return err
		}
		*n = groupFromDoc(g)
		return nil
	}

	var l linkDoc
	if err := value.Decode(&l); err != nil {
		return err
	}
	*n = Item(l.Text, l.Icon, l.Link)
	return nil
}

func (n Node) document() interface{} {
	switch n.kind {
	case KindGroup:
		children := n.Children
		if children == nil {
			children = []Node{}
		}
		return groupDoc{Text: n.Text, Icon: n.Icon, Prefix: n.Prefix, Children: children}
	case KindLink:
		return linkDoc{Text: n.Text, Icon: n.Icon, Link: n.Link}
	default:
		return n.Link
	}
}

func groupFromDoc(g groupDoc) Node {
	children := g.Children
	if children == nil {
		children = []Node{}
	}
	return Node{kind: KindGroup, Text: g.Text, Icon: g.Icon, Prefix: g.Prefix, Children: children}
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}
