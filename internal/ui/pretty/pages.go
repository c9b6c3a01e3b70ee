package pretty

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/alterxyz/gotelegraph/pkg/telegraph"
)

// Table layout constants.
const (
	tablePadding     = 2
	minTitleWidth    = 16
	defaultTermWidth = 100
)

// TermWidth returns the width of the terminal on stdout, or a default when
// stdout is not a terminal.
func TermWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}

// PageTable formats a page list as an aligned table with PATH, TITLE, VIEWS,
// and URL columns, truncating titles to fit the terminal width.
type PageTable struct {
	styles    *Styles
	termWidth int
}

// NewPageTable creates a page table renderer.
func NewPageTable(styles *Styles, termWidth int) *PageTable {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &PageTable{styles: styles, termWidth: termWidth}
}

// Format renders the page list. The total count footer reflects the whole
// account, not just the window in list.
func (t *PageTable) Format(list *telegraph.PageList) string {
	if list == nil || len(list.Pages) == 0 {
		return t.styles.Dim.Render("no pages") + "\n"
	}

	pathWidth := len("PATH")
	urlWidth := len("URL")
	viewsWidth := len("VIEWS")
	for _, p := range list.Pages {
		pathWidth = max(pathWidth, len(p.Path))
		urlWidth = max(urlWidth, len(p.URL))
		viewsWidth = max(viewsWidth, len(strconv.Itoa(p.Views)))
	}

	titleWidth := t.termWidth - pathWidth - viewsWidth - urlWidth - 3*tablePadding
	titleWidth = max(titleWidth, minTitleWidth)

	var sb strings.Builder

	header := fmt.Sprintf("%-*s  %-*s  %*s  %s",
		pathWidth, "PATH", titleWidth, "TITLE", viewsWidth, "VIEWS", "URL")
	sb.WriteString(t.styles.TableHeader.Render(header))
	sb.WriteString("\n")
	sb.WriteString(t.styles.TableSeparator.Render(strings.Repeat("-", min(t.termWidth, len(header)))))
	sb.WriteString("\n")

	for _, p := range list.Pages {
		row := fmt.Sprintf("%-*s  %-*s  %*d  %s",
			pathWidth, p.Path,
			titleWidth, truncate(p.Title, titleWidth),
			viewsWidth, p.Views,
			p.URL)
		sb.WriteString(t.styles.TableRow.Render(row))
		sb.WriteString("\n")
	}

	sb.WriteString(t.styles.Dim.Render(fmt.Sprintf("%d page(s) total", list.TotalCount)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatPage renders a single page's metadata as label/value lines.
func FormatPage(styles *Styles, page *telegraph.Page) string {
	var sb strings.Builder
	writeField(&sb, styles, "Title", page.Title)
	writeField(&sb, styles, "Path", page.Path)
	writeField(&sb, styles, "URL", styles.URL.Render(page.URL))
	if page.AuthorName != "" {
		writeField(&sb, styles, "Author", page.AuthorName)
	}
	if page.Description != "" {
		writeField(&sb, styles, "Description", page.Description)
	}
	writeField(&sb, styles, "Views", strconv.Itoa(page.Views))
	return sb.String()
}

// FormatAccount renders account info as label/value lines.
func FormatAccount(styles *Styles, account *telegraph.Account) string {
	var sb strings.Builder
	writeField(&sb, styles, "Short name", account.ShortName)
	writeField(&sb, styles, "Author name", account.AuthorName)
	if account.AuthorURL != "" {
		writeField(&sb, styles, "Author URL", account.AuthorURL)
	}
	writeField(&sb, styles, "Pages", strconv.Itoa(account.PageCount))
	return sb.String()
}

func writeField(sb *strings.Builder, styles *Styles, label, value string) {
	sb.WriteString(styles.Label.Render(fmt.Sprintf("%-12s", label+":")))
	sb.WriteString(" ")
	sb.WriteString(styles.Value.Render(value))
	sb.WriteString("\n")
}

// truncate shortens s to width runes, ending with an ellipsis when cut.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
