package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/paginate/internal/pagination"
)

const msgNoItems = "No items to display."

// View renders the current view (Bubble Tea interface).
func (m BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderListView renders the table, nav bar, footer and search input.
func (m BrowseModel) renderListView() string {
	var sections []string

	if len(m.pager.FilteredItems()) == 0 {
		sections = append(sections, InfoStyle.Render(m.emptyMessage()))
	} else {
		sections = append(sections, m.table.View())
	}

	if nav := m.renderNavBar(); nav != "" {
		sections = append(sections, nav)
	}
	sections = append(sections, InfoStyle.Render(FooterText(m.pager)), m.renderStatusBar())

	if m.showSearch {
		sections = append(sections, LabelStyle.Render("Search: ")+m.textInput.View())
	}
	if m.err != nil {
		sections = append(sections, ErrorStyle.Render("Error: "+m.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrowseModel) emptyMessage() string {
	if m.pager.Searching() && len(m.pager.Items()) > 0 {
		return fmt.Sprintf("No items match %q.", m.pager.Query())
	}
	return msgNoItems
}

// renderNavBar draws the page links with the current page highlighted.
func (m BrowseModel) renderNavBar() string {
	pages := m.pager.Pages()
	if len(pages) <= 1 {
		return ""
	}

	current := m.pager.CurrentPage()
	parts := make([]string, 0, len(pages)+2) //nolint:mnd // Prev and next arrows.

	prev := SubtleStyle.Render("‹ prev")
	if current > pagination.FirstPage {
		prev = PageLinkStyle.Render("‹ prev")
	}
	parts = append(parts, prev)

	for _, p := range pages {
		label := strconv.Itoa(p)
		if p == current {
			parts = append(parts, ActivePageStyle.Render(label))
			continue
		}
		parts = append(parts, PageLinkStyle.Render(label))
	}

	next := SubtleStyle.Render("next ›")
	if current < m.pager.PageCount() {
		next = PageLinkStyle.Render("next ›")
	}
	parts = append(parts, next)

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// renderStatusBar shows the sort field, the search state and key hints.
func (m BrowseModel) renderStatusBar() string {
	field, order := m.pager.Sort()
	sortLabel := "none"
	if field != "" {
		sortLabel = field + " " + order
	}

	status := fmt.Sprintf("Sort: %s", sortLabel)
	if m.loading {
		status += " | Reloading..."
	}
	return SubtleStyle.Render(status) + "  " + m.help.ShortHelpView(keys.ShortHelp())
}

// FooterText summarizes the position in the list, e.g.
// "Page 2 of 14 | 1,385 items". While a query is active the total counts
// only matching items and the collection size is added.
func FooterText(s *pagination.State) string {
	p := message.NewPrinter(language.English)

	var text string
	if s.PageCount() == 0 {
		text = p.Sprintf("No pages | %d items", s.Meta().TotalItems)
	} else {
		text = p.Sprintf("Page %d of %d | %d items",
			s.CurrentPage(), s.PageCount(), s.Meta().TotalItems)
	}
	if s.Searching() {
		text += p.Sprintf(" matching %q (of %d)", s.Query(), len(s.Items()))
	}
	return text
}

// renderDetailView shows every field of the selected item.
func (m BrowseModel) renderDetailView() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ITEM DETAIL"))
	content.WriteString("\n\n")

	names := m.selected.Names()
	labelWidth := 0
	for _, n := range names {
		labelWidth = max(labelWidth, len(n))
	}

	for _, f := range m.selected.Fields {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s  ", labelWidth, f.Name)))
		content.WriteString(ValueStyle.Render(f.Display()))
		content.WriteString(SubtleStyle.Render(" (" + f.Kind.String() + ")"))
		content.WriteString("\n")
	}

	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}
