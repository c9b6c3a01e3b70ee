package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alterxyz/gotelegraph/pkg/telegraph"
)

func samplePageList() *telegraph.PageList {
	return &telegraph.PageList{
		TotalCount: 2,
		Pages: []telegraph.Page{
			{
				Path:  "First-Page-01-02",
				URL:   "https://telegra.ph/First-Page-01-02",
				Title: "First Page",
				Views: 120,
			},
			{
				Path:  "Second-Page-03-04",
				URL:   "https://telegra.ph/Second-Page-03-04",
				Title: "Second Page",
				Views: 7,
			},
		},
	}
}

func TestPageTableFormat(t *testing.T) {
	t.Parallel()

	table := NewPageTable(NewStyles(false), 120)
	out := table.Format(samplePageList())

	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "VIEWS")
	assert.Contains(t, out, "URL")
	assert.Contains(t, out, "First-Page-01-02")
	assert.Contains(t, out, "https://telegra.ph/Second-Page-03-04")
	assert.Contains(t, out, "2 page(s) total")

	// Header, separator, two rows, footer.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
}

func TestPageTableFormatEmpty(t *testing.T) {
	t.Parallel()

	table := NewPageTable(NewStyles(false), 120)

	assert.Contains(t, table.Format(nil), "no pages")
	assert.Contains(t, table.Format(&telegraph.PageList{}), "no pages")
}

func TestPageTableTruncatesLongTitles(t *testing.T) {
	t.Parallel()

	list := &telegraph.PageList{
		TotalCount: 1,
		Pages: []telegraph.Page{{
			Path:  "P",
			URL:   "https://telegra.ph/P",
			Title: strings.Repeat("long title ", 30),
		}},
	}

	table := NewPageTable(NewStyles(false), 60)
	out := table.Format(list)

	assert.Contains(t, out, "…")
}

func TestNewPageTableDefaultsWidth(t *testing.T) {
	t.Parallel()

	table := NewPageTable(NewStyles(false), 0)
	assert.Equal(t, defaultTermWidth, table.termWidth)
}

func TestFormatPage(t *testing.T) {
	t.Parallel()

	page := &telegraph.Page{
		Path:       "My-Page",
		URL:        "https://telegra.ph/My-Page",
		Title:      "My Page",
		AuthorName: "Author",
		Views:      42,
	}

	out := FormatPage(NewStyles(false), page)

	assert.Contains(t, out, "My Page")
	assert.Contains(t, out, "https://telegra.ph/My-Page")
	assert.Contains(t, out, "Author")
	assert.Contains(t, out, "42")
	assert.NotContains(t, out, "Description", "empty fields are omitted")
}

func TestFormatAccount(t *testing.T) {
	t.Parallel()

	account := &telegraph.Account{
		ShortName:  "Short",
		AuthorName: "Full Author",
		PageCount:  9,
	}

	out := FormatAccount(NewStyles(false), account)

	assert.Contains(t, out, "Short")
	assert.Contains(t, out, "Full Author")
	assert.Contains(t, out, "9")
	assert.NotContains(t, out, "Author URL", "empty fields are omitted")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exact", 5, "exact"},
		{"cut", "too long here", 8, "too lon…"},
		{"width one", "ab", 1, "a"},
		{"multibyte", "héllo wörld", 6, "héllo…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncate(tt.s, tt.width))
		})
	}
}
