package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/alterxyz/gotelegraph/pkg/dom"
)

func mustConvert(t *testing.T, src string) []*dom.Node {
	t.Helper()

	nodes, err := ConvertString(src)
	if err != nil {
		t.Fatalf("ConvertString(%q) error: %v", src, err)
	}
	return nodes
}

func assertTree(t *testing.T, src string, want []*dom.Node) {
	t.Helper()

	got := mustConvert(t, src)
	if !dom.EqualNodes(got, want) {
		gotJSON, _ := dom.Marshal(got)
		wantJSON, _ := dom.Marshal(want)
		t.Errorf("Convert(%q):\n got %s\nwant %s", src, gotJSON, wantJSON)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	t.Parallel()

	nodes := mustConvert(t, "")
	if nodes == nil {
		t.Fatal("empty input should yield an empty sequence, not nil")
	}
	if len(nodes) != 0 {
		t.Errorf("empty input yielded %d nodes, want 0", len(nodes))
	}
}

func TestConvertInvalidInput(t *testing.T) {
	t.Parallel()

	c := New()

	if _, err := c.Convert(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Convert(nil) error = %v, want ErrInvalidInput", err)
	}

	if _, err := c.Convert([]byte{0xff, 0xfe}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Convert(invalid UTF-8) error = %v, want ErrInvalidInput", err)
	}
}

func TestConvertPlainText(t *testing.T) {
	t.Parallel()

	assertTree(t, "Just some text.", []*dom.Node{
		dom.Element(dom.TagP, dom.Text("Just some text.")),
	})
}

func TestConvertInlineStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []*dom.Node
	}{
		{
			name: "bold and italic with exact separators",
			src:  "**bold** and *italic*",
			want: []*dom.Node{
				dom.Element(dom.TagP,
					dom.Element(dom.TagStrong, dom.Text("bold")),
					dom.Text(" and "),
					dom.Element(dom.TagEm, dom.Text("italic")),
				),
			},
		},
		{
			name: "strikethrough",
			src:  "~~gone~~",
			want: []*dom.Node{
				dom.Element(dom.TagP,
					dom.Element(dom.TagS, dom.Text("gone")),
				),
			},
		},
		{
			name: "code span",
			src:  "run `go build` now",
			want: []*dom.Node{
				dom.Element(dom.TagP,
					dom.Text("run "),
					dom.Element(dom.TagCode, dom.Text("go build")),
					dom.Text(" now"),
				),
			},
		},
		{
			name: "nested emphasis",
			src:  "**bold *both* bold**",
			want: []*dom.Node{
				dom.Element(dom.TagP,
					dom.Element(dom.TagStrong,
						dom.Text("bold "),
						dom.Element(dom.TagEm, dom.Text("both")),
						dom.Text(" bold"),
					),
				),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertTree(t, tt.src, tt.want)
		})
	}
}

// Boundary whitespace around an inline marker must survive exactly: zero,
// one, or two spaces in the source mean zero, one, or two spaces in the
// adjacent text runs.
func TestConvertBoundaryWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		src         string
		left, right string
	}{
		{"no spaces", "a**b**c", "a", "c"},
		{"single spaces", "a **b** c", "a ", " c"},
		{"double spaces", "a  **b**  c", "a  ", "  c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := []*dom.Node{
				dom.Element(dom.TagP,
					dom.Text(tt.left),
					dom.Element(dom.TagStrong, dom.Text("b")),
					dom.Text(tt.right),
				),
			}
			assertTree(t, tt.src, want)
		})
	}
}

func TestConvertUnclosedMarkerIsLiteral(t *testing.T) {
	t.Parallel()

	got := mustConvert(t, "**unclosed")

	want := []*dom.Node{
		dom.Element(dom.TagP, dom.Text("**unclosed")),
	}
	if !dom.EqualNodes(got, want) {
		gotJSON, _ := dom.Marshal(got)
		t.Errorf("unclosed marker should degrade to one literal run, got %s", gotJSON)
	}
}

func TestConvertOverlappingMarkersLoseNoText(t *testing.T) {
	t.Parallel()

	// Delimiter resolution is left-to-right CommonMark; whatever nesting
	// comes out, the visible characters must all survive.
	got := mustConvert(t, "**a *b** c*")
	if flat := dom.FlattenText(got); flat != "a b c" {
		t.Errorf("FlattenText = %q, want %q", flat, "a b c")
	}
}

func TestConvertHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []*dom.Node
	}{
		{
			name: "h1 folds to h3",
			src:  "# Title",
			want: []*dom.Node{dom.Element(dom.TagH3, dom.Text("Title"))},
		},
		{
			name: "h2 folds to h4",
			src:  "## Section",
			want: []*dom.Node{dom.Element(dom.TagH4, dom.Text("Section"))},
		},
		{
			name: "h3 folds to strong paragraph",
			src:  "### Deep",
			want: []*dom.Node{
				dom.Element(dom.TagP, dom.Element(dom.TagStrong, dom.Text("Deep"))),
			},
		},
		{
			name: "h6 folds to strong paragraph",
			src:  "###### Deepest",
			want: []*dom.Node{
				dom.Element(dom.TagP, dom.Element(dom.TagStrong, dom.Text("Deepest"))),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertTree(t, tt.src, tt.want)
		})
	}
}

func TestConvertLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []*dom.Node
	}{
		{
			name: "inline link",
			src:  "[docs](https://example.com/docs)",
			want: []*dom.Node{
				dom.Element(dom.TagP,
					dom.ElementAttrs(dom.TagA,
						map[string]string{"href": "https://example.com/docs"},
						dom.Text("docs"),
					),
				),
			},
		},
		{
			name: "autolink",
			src:  "<https://example.com>",
			want: []*dom.Node{
				dom.Element(dom.TagP,
					dom.ElementAttrs(dom.TagA,
						map[string]string{"href": "https://example.com"},
						dom.Text("https://example.com"),
					),
				),
			},
		},
		{
			name: "styled link text",
			src:  "[**bold** link](https://example.com)",
			want: []*dom.Node{
				dom.Element(dom.TagP,
					dom.ElementAttrs(dom.TagA,
						map[string]string{"href": "https://example.com"},
						dom.Element(dom.TagStrong, dom.Text("bold")),
						dom.Text(" link"),
					),
				),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertTree(t, tt.src, tt.want)
		})
	}
}

func TestConvertImages(t *testing.T) {
	t.Parallel()

	assertTree(t, "![a cat](https://example.com/cat.png)", []*dom.Node{
		dom.Element(dom.TagP,
			dom.ElementAttrs(dom.TagImg, map[string]string{
				"src": "https://example.com/cat.png",
				"alt": "a cat",
			}),
		),
	})

	assertTree(t, "![](https://example.com/plain.png)", []*dom.Node{
		dom.Element(dom.TagP,
			dom.ElementAttrs(dom.TagImg, map[string]string{
				"src": "https://example.com/plain.png",
			}),
		),
	})
}

func TestConvertLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []*dom.Node
	}{
		{
			name: "unordered",
			src:  "- one\n- two",
			want: []*dom.Node{
				dom.Element(dom.TagUl,
					dom.Element(dom.TagLi, dom.Text("one")),
					dom.Element(dom.TagLi, dom.Text("two")),
				),
			},
		},
		{
			name: "ordered",
			src:  "1. first\n2. second",
			want: []*dom.Node{
				dom.Element(dom.TagOl,
					dom.Element(dom.TagLi, dom.Text("first")),
					dom.Element(dom.TagLi, dom.Text("second")),
				),
			},
		},
		{
			name: "styled item",
			src:  "- plain **bold**",
			want: []*dom.Node{
				dom.Element(dom.TagUl,
					dom.Element(dom.TagLi,
						dom.Text("plain "),
						dom.Element(dom.TagStrong, dom.Text("bold")),
					),
				),
			},
		},
		{
			name: "nested list",
			src:  "- outer\n  - inner",
			want: []*dom.Node{
				dom.Element(dom.TagUl,
					dom.Element(dom.TagLi,
						dom.Text("outer"),
						dom.Element(dom.TagUl,
							dom.Element(dom.TagLi, dom.Text("inner")),
						),
					),
				),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertTree(t, tt.src, tt.want)
		})
	}
}

func TestConvertBlockquote(t *testing.T) {
	t.Parallel()

	assertTree(t, "> quoted words", []*dom.Node{
		dom.Element(dom.TagBlockquote,
			dom.Element(dom.TagP, dom.Text("quoted words")),
		),
	})
}

func TestConvertCodeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		code string
	}{
		{
			name: "fenced",
			src:  "```\nx := 1\ny := 2\n```",
			code: "x := 1\ny := 2\n",
		},
		{
			name: "fenced with info string",
			src:  "```go\nfmt.Println()\n```",
			code: "fmt.Println()\n",
		},
		{
			name: "indented",
			src:  "    indented code\n",
			code: "indented code\n",
		},
		{
			name: "markers inside stay literal",
			src:  "```\n**not bold**\n```",
			code: "**not bold**\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := []*dom.Node{
				dom.Element(dom.TagPre,
					dom.Element(dom.TagCode, dom.Text(tt.code)),
				),
			}
			assertTree(t, tt.src, want)
		})
	}
}

func TestConvertThematicBreak(t *testing.T) {
	t.Parallel()

	assertTree(t, "above\n\n---\n\nbelow", []*dom.Node{
		dom.Element(dom.TagP, dom.Text("above")),
		dom.Element(dom.TagHr),
		dom.Element(dom.TagP, dom.Text("below")),
	})
}

func TestConvertLineBreaks(t *testing.T) {
	t.Parallel()

	t.Run("hard break becomes br", func(t *testing.T) {
		t.Parallel()
		assertTree(t, "first  \nsecond", []*dom.Node{
			dom.Element(dom.TagP,
				dom.Text("first"),
				dom.Element(dom.TagBr),
				dom.Text("second"),
			),
		})
	})

	t.Run("soft break stays in the run", func(t *testing.T) {
		t.Parallel()
		assertTree(t, "first\nsecond", []*dom.Node{
			dom.Element(dom.TagP, dom.Text("first\nsecond")),
		})
	})
}

func TestConvertMultipleBlocks(t *testing.T) {
	t.Parallel()

	src := "# Title\n\nIntro paragraph.\n\n- item"

	assertTree(t, src, []*dom.Node{
		dom.Element(dom.TagH3, dom.Text("Title")),
		dom.Element(dom.TagP, dom.Text("Intro paragraph.")),
		dom.Element(dom.TagUl, dom.Element(dom.TagLi, dom.Text("item"))),
	})
}

func TestConvertRawHTMLStaysLiteral(t *testing.T) {
	t.Parallel()

	t.Run("inline", func(t *testing.T) {
		t.Parallel()
		assertTree(t, "press <kbd>K</kbd> now", []*dom.Node{
			dom.Element(dom.TagP, dom.Text("press <kbd>K</kbd> now")),
		})
	})

	t.Run("block", func(t *testing.T) {
		t.Parallel()
		got := mustConvert(t, "<div>hello</div>")
		if len(got) != 1 || got[0].Tag != dom.TagP {
			t.Fatalf("HTML block should map to one paragraph, got %v", got)
		}
		if flat := dom.FlattenText(got); !strings.Contains(flat, "<div>hello</div>") {
			t.Errorf("HTML source lost: %q", flat)
		}
	})
}

// Raw source spans must come back verbatim whether they cover several block
// lines or several inline segments.
func TestConvertRawSourceSpans(t *testing.T) {
	t.Parallel()

	t.Run("multi-line code block", func(t *testing.T) {
		t.Parallel()
		assertTree(t, "```\nline one\nline two\nline three\n```", []*dom.Node{
			dom.Element(dom.TagPre,
				dom.Element(dom.TagCode, dom.Text("line one\nline two\nline three\n")),
			),
		})
	})

	t.Run("multi-line inline html", func(t *testing.T) {
		t.Parallel()
		got := mustConvert(t, "a <span\nclass=\"x\"> b")
		if flat := dom.FlattenText(got); !strings.Contains(flat, "<span") ||
			!strings.Contains(flat, "class=\"x\">") {
			t.Errorf("inline HTML source lost: %q", flat)
		}
	})
}

func TestConvertOutputSerializes(t *testing.T) {
	t.Parallel()

	src := "# Doc\n\nText with [a link](https://x.y), `code`, and ~~strikes~~.\n\n" +
		"> quote\n\n```\nblock\n```\n\n- l1\n- l2\n"

	nodes := mustConvert(t, src)

	data, err := dom.Marshal(nodes)
	if err != nil {
		t.Fatalf("converter output failed to serialize: %v", err)
	}

	back, err := dom.Unmarshal(data)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !dom.EqualNodes(nodes, back) {
		t.Error("round trip changed the converted tree")
	}
}

func TestPackageLevelConvert(t *testing.T) {
	t.Parallel()

	nodes, err := Convert([]byte("hello"))
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Tag != dom.TagP {
		t.Errorf("Convert() = %v, want one paragraph", nodes)
	}
}
