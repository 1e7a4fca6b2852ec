package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/rshade/paginate/internal/logging"
	"github.com/rshade/paginate/internal/pagination"
)

// ViewState is the screen the browser is showing.
type ViewState int

// View states.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// LoadFunc fetches a fresh collection for a reload.
type LoadFunc func(ctx context.Context) ([]pagination.Item, error)

// CollectionLoadedMsg delivers the result of a LoadFunc.
type CollectionLoadedMsg struct {
	Items []pagination.Item
	Err   error
}

// ErrNoLoader is reported when a reload is requested without a LoadFunc.
var ErrNoLoader = errors.New("reload is not available for this collection")

// BrowseOptions configures a BrowseModel.
type BrowseOptions struct {
	// Columns lists the fields shown in the table. Empty means every field
	// name found in the collection.
	Columns []string
	// Loader is called on reload. Nil disables reload.
	Loader LoadFunc
}

// BrowseModel is the Bubble Tea model for paging through a collection.
// All list state lives in the pagination.State; the model only translates
// key presses into State calls and renders the result.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowseModel struct {
	ctx    context.Context
	state  ViewState
	pager  *pagination.State
	loader LoadFunc

	columns    []string
	table      table.Model
	textInput  textinput.Model
	help       help.Model
	showSearch bool
	selected   pagination.Item
	loading    bool

	width  int
	height int

	err error
}

// NewBrowseModel creates a browser over pager.
func NewBrowseModel(ctx context.Context, pager *pagination.State, opts BrowseOptions) BrowseModel {
	if ctx == nil {
		ctx = context.Background()
	}
	m := BrowseModel{
		ctx:       ctx,
		state:     ViewStateList,
		pager:     pager,
		loader:    opts.Loader,
		columns:   opts.Columns,
		textInput: newTextInput(),
		help:      help.New(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.textInput.SetValue(pager.Query())
	m.rebuildTable()
	return m
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.Prompt = ""
	ti.CharLimit = 256 //nolint:mnd // Query length limit.
	return ti
}

// Init initializes the model (Bubble Tea interface).
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.help.Width = winMsg.Width
		m.rebuildTable()
		return m, nil
	}

	if loaded, ok := msg.(CollectionLoadedMsg); ok {
		return m.handleCollectionLoaded(loaded)
	}

	if m.showSearch {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m BrowseModel) handleCollectionLoaded(msg CollectionLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.err = msg.Err
		logging.FromContext(m.ctx).Warn().
			Str("component", "tui").
			Str("operation", "reload").
			Err(msg.Err).
			Msg("reload failed")
		return m, nil
	}

	m.err = nil
	m.pager.SetCollection(msg.Items)
	m.rebuildTable()

	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("operation", "reload").
		Int("item_count", len(msg.Items)).
		Int("page_count", m.pager.PageCount()).
		Msg("collection replaced")
	return m, nil
}

// handleSearchInput feeds every keystroke to the text input and pushes the
// resulting value into the State, so results follow the query as it is typed.
func (m BrowseModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter, keyEsc:
			m.showSearch = false
			m.textInput.Blur()
			m.table.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if q := m.textInput.Value(); q != m.pager.Query() {
		m.pager.SetQuery(q)
		m.rebuildTable()
	}
	return m, cmd
}

func (m BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m.handleListKeypress(keyMsg)
}

func (m BrowseModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Select):
		rows := m.pager.FilteredItems()
		cursor := m.table.Cursor()
		if cursor >= 0 && cursor < len(rows) {
			m.selected = rows[cursor]
			m.state = ViewStateDetail
		}
		return m, nil
	case key.Matches(keyMsg, keys.Search):
		m.showSearch = true
		m.table.Blur()
		m.textInput.SetValue(m.pager.Query())
		m.textInput.CursorEnd()
		cmd := m.textInput.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.Back):
		if m.pager.Query() != "" {
			m.textInput.SetValue("")
			m.pager.SetQuery("")
			m.rebuildTable()
		}
		return m, nil
	case key.Matches(keyMsg, keys.Next):
		if m.pager.NextPage() {
			m.rebuildTable()
		}
		return m, nil
	case key.Matches(keyMsg, keys.Prev):
		if m.pager.PrevPage() {
			m.rebuildTable()
		}
		return m, nil
	case key.Matches(keyMsg, keys.First):
		m.gotoPage(pagination.FirstPage)
		return m, nil
	case key.Matches(keyMsg, keys.Last):
		m.gotoPage(m.pager.PageCount())
		return m, nil
	case key.Matches(keyMsg, keys.Sort):
		m.cycleSort()
		return m, nil
	case key.Matches(keyMsg, keys.Reload):
		return m.reload()
	}

	if idx, ok := pageLinkIndex(keyMsg.String()); ok && key.Matches(keyMsg, keys.Jump) {
		pages := m.pager.Pages()
		if idx < len(pages) {
			m.gotoPage(pages[idx])
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	return m, cmd
}

func (m BrowseModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Quit):
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyMsg.String() == keyEsc, keyMsg.String() == keyEnter:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}
	return m, nil
}

// gotoPage moves to page, ignoring pages outside [1, PageCount].
func (m *BrowseModel) gotoPage(page int) {
	if page == m.pager.CurrentPage() {
		return
	}
	if err := m.pager.SetPage(page); err != nil {
		logging.FromContext(m.ctx).Debug().
			Str("component", "tui").
			Str("operation", "goto_page").
			Err(err).
			Msg("page change ignored")
		return
	}
	m.rebuildTable()
}

// cycleSort advances through "unsorted", then each visible column ascending.
func (m *BrowseModel) cycleSort() {
	fields := m.visibleColumns()
	if len(fields) == 0 {
		return
	}
	current, _ := m.pager.Sort()

	next := fields[0]
	if idx := lo.IndexOf(fields, current); idx >= 0 {
		next = ""
		if idx+1 < len(fields) {
			next = fields[idx+1]
		}
	}

	if err := m.pager.SetSort(next, pagination.SortOrderAsc); err != nil {
		m.err = err
		return
	}
	m.rebuildTable()
}

func (m BrowseModel) reload() (tea.Model, tea.Cmd) {
	if m.loader == nil {
		m.err = ErrNoLoader
		return m, nil
	}
	m.loading = true
	m.err = nil
	loader := m.loader
	ctx := m.ctx
	return m, func() tea.Msg {
		items, err := loader(ctx)
		return CollectionLoadedMsg{Items: items, Err: err}
	}
}

// visibleColumns returns the configured columns or every field name.
func (m BrowseModel) visibleColumns() []string {
	if len(m.columns) > 0 {
		return m.columns
	}
	return pagination.Columns(m.pager.Items())
}

// rebuildTable reconstructs the table from the State's current page.
func (m *BrowseModel) rebuildTable() {
	m.table = m.buildTable()
}

func (m *BrowseModel) buildTable() table.Model {
	names := m.visibleColumns()

	colWidth := minColumnWidth
	if len(names) > 0 {
		colWidth = max((m.width-borderPadding)/len(names), minColumnWidth)
	}
	columns := lo.Map(names, func(name string, _ int) table.Column {
		return table.Column{Title: name, Width: colWidth}
	})

	items := m.pager.FilteredItems()
	rows := make([]table.Row, len(items))
	for i, item := range items {
		row := make(table.Row, len(names))
		for j, name := range names {
			row[j] = sanitizeCell(item.Display(name))
		}
		rows[i] = row
	}

	height := min(m.pager.PageSize()+tableHeaderHeight, m.height-chromeHeight)
	height = max(height, minHeight+tableHeaderHeight)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(!m.showSearch),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// State returns the pagination state driving the browser.
func (m BrowseModel) State() *pagination.State {
	return m.pager
}

// ViewState returns the current screen.
func (m BrowseModel) ViewState() ViewState {
	return m.state
}

// Selected returns the item shown in the detail view.
func (m BrowseModel) Selected() pagination.Item {
	return m.selected
}

// Searching reports whether the search input has focus.
func (m BrowseModel) Searching() bool {
	return m.showSearch
}

// Err returns the last reload or sort error.
func (m BrowseModel) Err() error {
	return m.err
}
