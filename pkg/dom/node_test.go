package dom

import "testing"

func TestTagValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  Tag
		want bool
	}{
		{TagP, true},
		{TagA, true},
		{TagBlockquote, true},
		{TagFigcaption, true},
		{Tag("div"), false},
		{Tag("h1"), false},
		{Tag("h2"), false},
		{Tag("span"), false},
		{Tag(""), false},
		{Tag("P"), false},
	}

	for _, tt := range tests {
		if got := tt.tag.Valid(); got != tt.want {
			t.Errorf("Tag(%q).Valid() = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	txt := Text("hello")
	if !txt.IsText() {
		t.Error("Text() should produce a text run")
	}
	if txt.Text != "hello" {
		t.Errorf("Text content = %q, want %q", txt.Text, "hello")
	}

	el := Element(TagP, Text("child"))
	if el.Kind != KindElement {
		t.Error("Element() should produce an element")
	}
	if el.Tag != TagP {
		t.Errorf("tag = %q, want %q", el.Tag, TagP)
	}
	if len(el.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(el.Children))
	}

	attrs := map[string]string{"href": "https://example.com"}
	link := ElementAttrs(TagA, attrs, Text("x"))
	if link.Attrs["href"] != "https://example.com" {
		t.Errorf("href = %q, want example.com URL", link.Attrs["href"])
	}
}

func TestAppendMergesAdjacentText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		add  []*Node
		want []*Node
	}{
		{
			name: "two text runs merge",
			add:  []*Node{Text("foo"), Text(" bar")},
			want: []*Node{Text("foo bar")},
		},
		{
			name: "element splits runs",
			add:  []*Node{Text("a"), Element(TagB, Text("b")), Text("c")},
			want: []*Node{Text("a"), Element(TagB, Text("b")), Text("c")},
		},
		{
			name: "empty text runs dropped",
			add:  []*Node{Text(""), Text("x"), Text("")},
			want: []*Node{Text("x")},
		},
		{
			name: "nil nodes skipped",
			add:  []*Node{nil, Text("x"), nil},
			want: []*Node{Text("x")},
		},
		{
			name: "whitespace-only run survives and merges",
			add:  []*Node{Text("a"), Text("  "), Text("b")},
			want: []*Node{Text("a  b")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []*Node
			got = Append(got, tt.add...)

			if !EqualNodes(got, tt.want) {
				t.Errorf("Append() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := ElementAttrs(TagA, map[string]string{"href": "u"}, Text("x"))
	b := ElementAttrs(TagA, map[string]string{"href": "u"}, Text("x"))
	c := ElementAttrs(TagA, map[string]string{"href": "v"}, Text("x"))

	if !Equal(a, b) {
		t.Error("identical trees should compare equal")
	}
	if Equal(a, c) {
		t.Error("differing attrs should not compare equal")
	}
	if Equal(a, nil) {
		t.Error("node and nil should not compare equal")
	}
	if !Equal(nil, nil) {
		t.Error("nil and nil should compare equal")
	}
	if Equal(Text("x"), Element(TagP)) {
		t.Error("text and element should not compare equal")
	}
}
