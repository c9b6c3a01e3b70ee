package dom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidTag is returned when an element with an empty or unknown tag
// reaches the serializer. Converter output never contains such a node, so
// hitting this error indicates a bug in whatever built the tree; it is
// surfaced loudly rather than swallowed.
var ErrInvalidTag = errors.New("dom: element has empty or unsupported tag")

// wireNode is the JSON object shape the Telegraph API expects for elements.
// Attributes and children are omitted entirely when empty.
type wireNode struct {
	Tag      Tag               `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// Marshal serializes a node sequence into the Telegraph wire format: a JSON
// array whose entries are strings for text runs and objects for elements.
func Marshal(nodes []*Node) ([]byte, error) {
	if nodes == nil {
		nodes = []*Node{}
	}
	data, err := json.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("marshal nodes: %w", err)
	}
	return data, nil
}

// Unmarshal parses wire-format JSON back into a node sequence. It is the
// structural inverse of Marshal: for any tree produced by this package,
// Unmarshal(Marshal(tree)) yields an equivalent tree.
func Unmarshal(data []byte) ([]*Node, error) {
	var nodes []*Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("unmarshal nodes: %w", err)
	}
	return nodes, nil
}

// MarshalJSON emits a bare JSON string for text runs and a tag/attrs/children
// object for elements.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Kind == KindText {
		return json.Marshal(n.Text)
	}

	if !n.Tag.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, n.Tag)
	}

	attrs := n.Attrs
	if len(attrs) == 0 {
		attrs = nil
	}

	return json.Marshal(wireNode{
		Tag:      n.Tag,
		Attrs:    attrs,
		Children: n.Children,
	})
}

// UnmarshalJSON accepts either a JSON string (text run) or an object
// (element), mirroring MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("dom: empty node value")
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("unmarshal text run: %w", err)
		}
		*n = Node{Kind: KindText, Text: s}
		return nil
	}

	var w wireNode
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return fmt.Errorf("unmarshal element: %w", err)
	}
	if w.Tag == "" {
		return fmt.Errorf("%w: missing tag", ErrInvalidTag)
	}

	*n = Node{
		Kind:     KindElement,
		Tag:      w.Tag,
		Attrs:    w.Attrs,
		Children: w.Children,
	}
	return nil
}
