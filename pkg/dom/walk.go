package dom

import "strings"

// WalkFunc is the callback signature for Walk.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal over a node sequence.
// The callback is called for each node. If it returns a non-nil error,
// the walk stops immediately and returns that error.
func Walk(nodes []*Node, fn WalkFunc) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := fn(n); err != nil {
			return err
		}
		if err := Walk(n.Children, fn); err != nil {
			return err
		}
	}
	return nil
}

// FindByTag returns all element nodes with the given tag, in document order.
func FindByTag(nodes []*Node, tag Tag) []*Node {
	var found []*Node

	//nolint:errcheck // The callback never returns an error.
	Walk(nodes, func(n *Node) error {
		if n.Kind == KindElement && n.Tag == tag {
			found = append(found, n)
		}
		return nil
	})

	return found
}

// FlattenText concatenates every text run in document order. The result
// reproduces the semantic reading order of the source the tree was built
// from, including the exact whitespace between adjacent runs.
func FlattenText(nodes []*Node) string {
	var sb strings.Builder

	//nolint:errcheck // The callback never returns an error.
	Walk(nodes, func(n *Node) error {
		if n.IsText() {
			sb.WriteString(n.Text)
		}
		return nil
	})

	return sb.String()
}
