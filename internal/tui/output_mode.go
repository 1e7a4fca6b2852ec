package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/rshade/paginate/internal/pagination"
)

// OutputMode selects how a page is shown.
type OutputMode int

// Output modes.
const (
	// OutputModePlain prints an unstyled table. Used for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints a styled table without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea browser.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// stdoutIsTerminal is replaced in tests.
//
//nolint:gochecknoglobals // Test seam for terminal detection.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DetectOutputMode picks the richest mode the environment supports.
// forcePlain, a non-terminal stdout or NO_COLOR select plain output; ci (or
// the CI environment variable) selects styled output; otherwise the browser
// runs interactively.
func DetectOutputMode(forcePlain, noColor, ci bool) OutputMode {
	if forcePlain || !stdoutIsTerminal() {
		return OutputModePlain
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if ci || os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// RenderPlain writes the current page of s as a tab-aligned table followed by
// the page footer. columns defaults to every field name in the collection.
func RenderPlain(w io.Writer, s *pagination.State, columns []string) error {
	if len(columns) == 0 {
		columns = pagination.Columns(s.Items())
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
	if len(columns) > 0 {
		fmt.Fprintln(tw, strings.ToUpper(strings.Join(columns, "\t")))
	}
	for _, item := range s.FilteredItems() {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = sanitizeCell(item.Display(c))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	if nav := plainNavBar(s); nav != "" {
		fmt.Fprintln(w, nav)
	}
	_, err := fmt.Fprintln(w, FooterText(s))
	return err
}

// RenderStyled writes the current page with lipgloss styling, without
// taking over the terminal.
func RenderStyled(ctx context.Context, w io.Writer, s *pagination.State, columns []string, width int) error {
	if width <= 0 {
		width = defaultWidth
	}
	m := NewBrowseModel(ctx, s, BrowseOptions{Columns: columns})
	m.width = width
	m.height = s.PageSize() + chromeHeight + tableHeaderHeight
	m.rebuildTable()

	_, err := fmt.Fprintln(w, m.renderListView())
	return err
}

func plainNavBar(s *pagination.State) string {
	pages := s.Pages()
	if len(pages) <= 1 {
		return ""
	}
	links := make([]string, len(pages))
	for i, p := range pages {
		if p == s.CurrentPage() {
			links[i] = fmt.Sprintf("[%d]", p)
		} else {
			links[i] = strconv.Itoa(p)
		}
	}
	return strings.Join(links, " ")
}

func sanitizeCell(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
