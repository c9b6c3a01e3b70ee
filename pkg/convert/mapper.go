package convert

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alterxyz/gotelegraph/pkg/dom"
)

// mapper rewrites a goldmark AST into Telegraph DOM nodes.
//
// Telegraph supports only h3 and h4 headings, so levels are folded the way
// the Telegraph editor itself does: h1 becomes h3, h2 becomes h4, and deeper
// levels become a paragraph of strong text.
type mapper struct {
	source []byte
}

// mapDocument converts the children of a goldmark document into the ordered
// top-level node sequence. The wire format has no synthetic root wrapper.
func (m *mapper) mapDocument(doc ast.Node) []*dom.Node {
	nodes := []*dom.Node{}
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if n := m.mapBlock(c); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// mapBlock converts a single block-level goldmark node.
func (m *mapper) mapBlock(n ast.Node) *dom.Node {
	switch b := n.(type) {
	case *ast.Heading:
		return m.mapHeading(b)

	case *ast.Paragraph:
		return dom.Element(dom.TagP, m.mapInlines(b)...)

	case *ast.TextBlock:
		// Tight list item content reaching us outside a list item.
		return dom.Element(dom.TagP, m.mapInlines(b)...)

	case *ast.List:
		return m.mapList(b)

	case *ast.Blockquote:
		return dom.Element(dom.TagBlockquote, m.mapBlockSequence(b)...)

	case *ast.FencedCodeBlock:
		return m.mapCodeBlock(b)

	case *ast.CodeBlock:
		return m.mapCodeBlock(b)

	case *ast.ThematicBreak:
		return dom.Element(dom.TagHr)

	case *ast.HTMLBlock:
		// Raw HTML has no Telegraph representation; keep the literal source.
		return dom.Element(dom.TagP, dom.Text(m.htmlBlockText(b)))

	default:
		return m.mapUnknownBlock(n)
	}
}

// mapHeading folds heading levels into the Telegraph set.
func (m *mapper) mapHeading(h *ast.Heading) *dom.Node {
	children := m.mapInlines(h)
	switch h.Level {
	case 1:
		return dom.Element(dom.TagH3, children...)
	case 2:
		return dom.Element(dom.TagH4, children...)
	default:
		return dom.Element(dom.TagP, dom.Element(dom.TagStrong, children...))
	}
}

// mapList converts a goldmark list and its items.
func (m *mapper) mapList(list *ast.List) *dom.Node {
	tag := dom.TagUl
	if list.IsOrdered() {
		tag = dom.TagOl
	}

	var items []*dom.Node
	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		items = append(items, dom.Element(dom.TagLi, m.mapBlockSequence(c)...))
	}
	return dom.Element(tag, items...)
}

// mapBlockSequence converts the block children of a container node.
// Tight list item content arrives as a TextBlock; its inline children are
// spliced directly so list items hold their text without a paragraph wrapper.
func (m *mapper) mapBlockSequence(parent ast.Node) []*dom.Node {
	var out []*dom.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if tb, ok := c.(*ast.TextBlock); ok {
			out = dom.Append(out, m.mapInlines(tb)...)
			continue
		}
		if n := m.mapBlock(c); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// mapCodeBlock converts fenced and indented code blocks to pre > code.
func (m *mapper) mapCodeBlock(n ast.Node) *dom.Node {
	code := dom.Element(dom.TagCode, dom.Text(m.rawLines(n)))
	return dom.Element(dom.TagPre, code)
}

// mapUnknownBlock degrades an unrepresentable block to a paragraph holding
// its literal source text, or its mapped inline children when the node has
// no source lines of its own.
func (m *mapper) mapUnknownBlock(n ast.Node) *dom.Node {
	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		return dom.Element(dom.TagP, dom.Text(m.rawLines(n)))
	}
	children := m.mapInlines(n)
	if len(children) == 0 {
		return nil
	}
	return dom.Element(dom.TagP, children...)
}

// mapInlines converts all inline children of a node, merging adjacent text
// runs so tokenizer splits never become run boundaries of their own.
func (m *mapper) mapInlines(parent ast.Node) []*dom.Node {
	var out []*dom.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = dom.Append(out, m.mapInline(c)...)
	}
	return out
}

// mapInline converts a single inline goldmark node. A node may expand to
// more than one DOM node (text followed by a break).
func (m *mapper) mapInline(n ast.Node) []*dom.Node {
	switch in := n.(type) {
	case *ast.Text:
		return m.mapText(in)

	case *ast.String:
		return []*dom.Node{dom.Text(string(in.Value))}

	case *ast.Emphasis:
		tag := dom.TagEm
		if in.Level == 2 {
			tag = dom.TagStrong
		}
		return []*dom.Node{dom.Element(tag, m.mapInlines(in)...)}

	case *east.Strikethrough:
		return []*dom.Node{dom.Element(dom.TagS, m.mapInlines(in)...)}

	case *ast.CodeSpan:
		return []*dom.Node{dom.Element(dom.TagCode, dom.Text(m.codeSpanText(in)))}

	case *ast.Link:
		attrs := map[string]string{"href": string(in.Destination)}
		return []*dom.Node{dom.ElementAttrs(dom.TagA, attrs, m.mapInlines(in)...)}

	case *ast.AutoLink:
		attrs := map[string]string{"href": string(in.URL(m.source))}
		label := dom.Text(string(in.Label(m.source)))
		return []*dom.Node{dom.ElementAttrs(dom.TagA, attrs, label)}

	case *ast.Image:
		attrs := map[string]string{"src": string(in.Destination)}
		if alt := m.plainText(in); alt != "" {
			attrs["alt"] = alt
		}
		return []*dom.Node{dom.ElementAttrs(dom.TagImg, attrs)}

	case *ast.RawHTML:
		return []*dom.Node{dom.Text(m.segmentsText(in.Segments))}

	default:
		// Unknown inline: splice its children so no text is lost.
		return m.mapInlines(n)
	}
}

// mapText converts a text segment, emitting the exact source span followed
// by the break the segment carries, if any. A hard break (trailing double
// space or backslash) becomes a br element; a soft break stays a literal
// newline inside the text.
func (m *mapper) mapText(t *ast.Text) []*dom.Node {
	var nodes []*dom.Node

	if value := t.Segment.Value(m.source); len(value) > 0 {
		nodes = append(nodes, dom.Text(string(value)))
	}

	switch {
	case t.HardLineBreak():
		nodes = append(nodes, dom.Element(dom.TagBr))
	case t.SoftLineBreak():
		nodes = append(nodes, dom.Text("\n"))
	}

	return nodes
}

// codeSpanText extracts the literal content of a code span.
func (m *mapper) codeSpanText(span *ast.CodeSpan) string {
	var sb strings.Builder
	for c := span.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(m.source))
		}
	}
	return sb.String()
}

// plainText flattens the text content of an inline subtree.
func (m *mapper) plainText(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(m.source))
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(m.plainText(c))
		}
	}
	return sb.String()
}

// rawLines concatenates the source lines a block node spans.
func (m *mapper) rawLines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		sb.Write(line.Value(m.source))
	}
	return sb.String()
}

// htmlBlockText returns the literal source of an HTML block, including its
// closure line when present.
func (m *mapper) htmlBlockText(b *ast.HTMLBlock) string {
	raw := m.rawLines(b)
	if b.ClosureLine.Start >= 0 {
		raw += string(b.ClosureLine.Value(m.source))
	}
	return strings.TrimSuffix(raw, "\n")
}

// segmentsText concatenates the source spans of an inline segment list.
func (m *mapper) segmentsText(segs *text.Segments) string {
	var sb strings.Builder
	for i := range segs.Len() {
		seg := segs.At(i)
		sb.Write(seg.Value(m.source))
	}
	return sb.String()
}
