// Package convert transforms Markdown text into the Telegraph document tree
// defined by pkg/dom.
//
// Parsing is delegated to goldmark, which performs the block segmentation
// and left-to-right inline tokenization phases; the mapper in this package
// walks the resulting AST and rewrites it into the fixed Telegraph tag set.
// Malformed Markdown never fails a conversion: goldmark degrades unmatched
// or ambiguous markers to literal text, and the mapper falls back to literal
// source text for any construct the Telegraph format cannot represent.
package convert

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/alterxyz/gotelegraph/pkg/dom"
)

// ErrInvalidInput is returned when the input to Convert is not a text value:
// a nil slice (distinct from an empty document) or bytes that are not valid
// UTF-8. This is the only error a conversion can return; every quirk of the
// Markdown itself degrades to literal text instead.
var ErrInvalidInput = errors.New("convert: input is not valid text")

// Converter turns Markdown into Telegraph DOM nodes.
//
// A Converter is a pure transform with no shared mutable state; one instance
// is safe for concurrent use from multiple goroutines.
type Converter struct {
	md goldmark.Markdown
}

// New creates a Converter. Strikethrough is enabled on top of CommonMark
// because the Telegraph format has a native "s" element for it.
func New() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
		),
	}
}

// Convert parses src and returns the ordered top-level node sequence.
//
// An empty document yields an empty sequence. Text with no Markdown syntax
// yields a single paragraph wrapping one text run.
func (c *Converter) Convert(src []byte) ([]*dom.Node, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil input", ErrInvalidInput)
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrInvalidInput)
	}

	doc := c.md.Parser().Parse(text.NewReader(src))

	m := &mapper{source: src}
	return m.mapDocument(doc), nil
}

// ConvertString is Convert for string input.
func (c *Converter) ConvertString(src string) ([]*dom.Node, error) {
	return c.Convert([]byte(src))
}

//nolint:gochecknoglobals // Shared default converter; goldmark instances are concurrency-safe.
var defaultConverter = sync.OnceValue(New)

// Convert parses src with a shared default Converter.
func Convert(src []byte) ([]*dom.Node, error) {
	return defaultConverter().Convert(src)
}

// ConvertString parses src with a shared default Converter.
func ConvertString(src string) ([]*dom.Node, error) {
	return defaultConverter().ConvertString(src)
}
