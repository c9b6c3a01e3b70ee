// Package dom defines the Telegraph document tree: an ordered sequence of
// nodes where each node is either a literal text run or an element with a
// tag, optional attributes, and ordered children.
package dom

// Tag identifies an element kind accepted by the Telegraph API.
type Tag string

// The full set of tags the Telegraph API accepts in page content.
const (
	TagA          Tag = "a"
	TagAside      Tag = "aside"
	TagB          Tag = "b"
	TagBlockquote Tag = "blockquote"
	TagBr         Tag = "br"
	TagCode       Tag = "code"
	TagEm         Tag = "em"
	TagFigcaption Tag = "figcaption"
	TagFigure     Tag = "figure"
	TagH3         Tag = "h3"
	TagH4         Tag = "h4"
	TagHr         Tag = "hr"
	TagI          Tag = "i"
	TagIframe     Tag = "iframe"
	TagImg        Tag = "img"
	TagLi         Tag = "li"
	TagOl         Tag = "ol"
	TagP          Tag = "p"
	TagPre        Tag = "pre"
	TagS          Tag = "s"
	TagStrong     Tag = "strong"
	TagU          Tag = "u"
	TagUl         Tag = "ul"
	TagVideo      Tag = "video"
)

//nolint:gochecknoglobals // Read-only lookup table.
var allowedTags = map[Tag]struct{}{
	TagA: {}, TagAside: {}, TagB: {}, TagBlockquote: {}, TagBr: {},
	TagCode: {}, TagEm: {}, TagFigcaption: {}, TagFigure: {}, TagH3: {},
	TagH4: {}, TagHr: {}, TagI: {}, TagIframe: {}, TagImg: {}, TagLi: {},
	TagOl: {}, TagP: {}, TagPre: {}, TagS: {}, TagStrong: {}, TagU: {},
	TagUl: {}, TagVideo: {},
}

// Valid reports whether the tag is part of the Telegraph allowed set.
func (t Tag) Valid() bool {
	_, ok := allowedTags[t]
	return ok
}

// Kind discriminates the two node variants.
type Kind uint8

// Node variants.
const (
	// KindText is a leaf holding literal text content.
	KindText Kind = iota

	// KindElement is a tagged element with optional attributes and children.
	KindElement
)

// Node is a single unit of a Telegraph document.
//
// A node is exclusively owned by its parent; trees are built fresh per
// conversion and never mutated after they are returned. For a KindText node
// only Text is meaningful; for a KindElement node Tag, Attrs, and Children
// are meaningful.
type Node struct {
	Kind     Kind
	Text     string
	Tag      Tag
	Attrs    map[string]string
	Children []*Node
}

// Text creates a text-run leaf node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Element creates an element node with the given children.
func Element(tag Tag, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Children: children}
}

// ElementAttrs creates an element node with attributes and children.
func ElementAttrs(tag Tag, attrs map[string]string, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Attrs: attrs, Children: children}
}

// IsText reports whether the node is a text run.
func (n *Node) IsText() bool {
	return n != nil && n.Kind == KindText
}

// Append adds nodes to a child sequence, merging a text run into an
// immediately preceding text run. Merging keeps runs that the inline
// tokenizer split at marker boundaries as one literal span, so the boundary
// between them can neither gain nor lose whitespace.
func Append(dst []*Node, nodes ...*Node) []*Node {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.IsText() && n.Text == "" {
			continue
		}
		if last := len(dst) - 1; last >= 0 && dst[last].IsText() && n.IsText() {
			dst[last] = Text(dst[last].Text + n.Text)
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// Equal reports whether two nodes are structurally equivalent: same kind,
// same tag, same attributes, same text, and pairwise-equal children.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindText {
		return a.Text == b.Text
	}
	if a.Tag != b.Tag || len(a.Attrs) != len(b.Attrs) {
		return false
	}
	for k, v := range a.Attrs {
		if b.Attrs[k] != v {
			return false
		}
	}
	return EqualNodes(a.Children, b.Children)
}

// EqualNodes reports whether two node sequences are pairwise equal.
func EqualNodes(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
