// Package tui implements the interactive list browser and the plain renderer
// used when output is not a terminal.
package tui

import "github.com/charmbracelet/lipgloss"

// Colors.
const (
	colorAccent  = lipgloss.Color("63")
	colorSubtle  = lipgloss.Color("241")
	colorInfo    = lipgloss.Color("39")
	colorError   = lipgloss.Color("196")
	colorActive  = lipgloss.Color("230")
	colorBorder  = lipgloss.Color("240")
	colorHeading = lipgloss.Color("212")
)

// Layout defaults used before the first WindowSizeMsg arrives.
const (
	defaultWidth   = 100
	defaultHeight  = 24
	minHeight      = 3
	minColumnWidth = 8
	borderPadding  = 4
	// chromeHeight is the number of lines below the table: nav bar, footer,
	// status bar and search input.
	chromeHeight = 4
	// tableHeaderHeight is the header row plus its bottom border.
	tableHeaderHeight = 2
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)
	LabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	ValueStyle  = lipgloss.NewStyle()
	InfoStyle   = lipgloss.NewStyle().Foreground(colorInfo)
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(colorBorder)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(colorActive).
				Background(colorAccent)

	// PageLinkStyle renders an inactive page number in the nav bar.
	PageLinkStyle = lipgloss.NewStyle().Padding(0, 1)
	// ActivePageStyle renders the current page number.
	ActivePageStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(colorActive).
			Background(colorAccent)
)
