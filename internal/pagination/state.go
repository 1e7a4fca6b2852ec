package pagination

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// State is the pagination and search state of one paged list.
//
// Inputs are the collection, the query and the current page. Pages,
// SearchedItems and FilteredItems are derived from them on every change and
// are never cached across updates.
type State struct {
	pageSize  int
	navSize   int
	sortField string
	sortOrder string
	matcher   Matcher
	log       *zerolog.Logger

	// source keeps the collection in the order it was supplied; items is
	// source after sorting.
	source []Item
	items  []Item
	query  string

	currentPage int
	searched    []Item
	pageCount   int
	pages       []int
	filtered    []Item
}

// New validates cfg and returns a State holding items, positioned on page 1.
func New(cfg Config, items ...Item) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	s := &State{
		pageSize:    cfg.PageSize,
		navSize:     cfg.NavSize,
		sortField:   cfg.SortField,
		sortOrder:   cfg.SortOrder,
		matcher:     cfg.Matcher,
		log:         cfg.Logger,
		currentPage: FirstPage,
	}
	s.SetCollection(items)
	return s, nil
}

// SetCollection replaces the collection, re-runs the search with the current
// query and recomputes the page window. The current page is left as is, even
// when the new collection has fewer pages.
func (s *State) SetCollection(items []Item) {
	s.source = slices.Clone(items)
	if s.source == nil {
		s.source = []Item{}
	}
	s.items = SortItems(s.source, s.sortField, s.sortOrder)
	s.search()
	s.recompute()

	if s.currentPage > s.pageCount && s.pageCount > 0 {
		s.log.Debug().
			Str("component", "pagination").
			Str("operation", "set_collection").
			Int("current_page", s.currentPage).
			Int("page_count", s.pageCount).
			Msg("current page is past the end of the new collection")
	}
}

// SetQuery replaces the search query, re-runs the search and returns to the
// first page.
func (s *State) SetQuery(query string) {
	s.query = query
	s.search()
	s.currentPage = FirstPage
	s.recompute()
}

// SetCurrentPage moves to page without bounds checking. Pages outside
// [1, PageCount] produce an empty FilteredItems.
func (s *State) SetCurrentPage(page int) {
	s.currentPage = page
	s.recompute()
}

// NextPage advances one page. It reports false and changes nothing when
// already on the last page.
func (s *State) NextPage() bool {
	if s.currentPage >= s.pageCount {
		return false
	}
	s.SetCurrentPage(s.currentPage + 1)
	return true
}

// PrevPage goes back one page. It reports false and changes nothing when
// already on the first page.
func (s *State) PrevPage() bool {
	if s.currentPage <= FirstPage {
		return false
	}
	s.SetCurrentPage(s.currentPage - 1)
	return true
}

// SetPage moves to page, which must lie within [1, PageCount].
// An out-of-range page returns ErrPageOutOfRange and leaves the state unchanged.
func (s *State) SetPage(page int) error {
	if page < FirstPage || page > s.pageCount {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrPageOutOfRange, page, s.pageCount)
	}
	s.SetCurrentPage(page)
	return nil
}

// SetSort orders the collection by field. An empty field restores the
// supplied order. The search is re-run and the current page is kept.
func (s *State) SetSort(field, order string) error {
	if order == "" {
		order = DefaultSortOrder
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	s.sortField = field
	s.sortOrder = order
	s.items = SortItems(s.source, field, order)
	s.search()
	s.recompute()
	return nil
}

// Recompute rebuilds Pages and FilteredItems from the current inputs.
// Calling it repeatedly without changing inputs yields identical results.
func (s *State) Recompute() {
	s.recompute()
}

// search filters the collection with the query and updates the page count.
func (s *State) search() {
	s.searched = lo.Filter(s.items, func(item Item, _ int) bool {
		return s.matcher.Match(item, s.query)
	})
	s.pageCount = PageCount(len(s.effective()), s.pageSize)

	s.log.Debug().
		Str("component", "pagination").
		Str("operation", "search").
		Str("query", s.query).
		Int("collection_size", len(s.items)).
		Int("matched", len(s.searched)).
		Int("page_count", s.pageCount).
		Msg("search complete")
}

// recompute derives the page window and the current page's items.
func (s *State) recompute() {
	s.pages = Window(s.currentPage, s.pageCount, s.navSize)
	s.filtered = Slice(s.effective(), s.currentPage, s.pageSize)
}

// effective returns the searched items while a query is active, otherwise
// the whole collection.
func (s *State) effective() []Item {
	if s.Searching() {
		return s.searched
	}
	return s.items
}

// Searching reports whether a non-empty query is active.
func (s *State) Searching() bool {
	return s.query != ""
}

// Items returns the collection in its current sort order.
func (s *State) Items() []Item { return slices.Clone(s.items) }

// Query returns the active query.
func (s *State) Query() string { return s.query }

// SearchedItems returns the items matching the query, in collection order.
func (s *State) SearchedItems() []Item { return slices.Clone(s.searched) }

// CurrentPage returns the current 1-based page number.
func (s *State) CurrentPage() int { return s.currentPage }

// PageCount returns the number of pages of the effective collection.
func (s *State) PageCount() int { return s.pageCount }

// PageSize returns the number of items per page.
func (s *State) PageSize() int { return s.pageSize }

// NavSize returns the maximum number of page links.
func (s *State) NavSize() int { return s.navSize }

// Sort returns the active sort field and order.
//
//nolint:nonamedreturns // Named returns document the pair.
func (s *State) Sort() (field, order string) { return s.sortField, s.sortOrder }

// Pages returns the page numbers to render as navigation links.
func (s *State) Pages() []int { return slices.Clone(s.pages) }

// FilteredItems returns the items on the current page.
func (s *State) FilteredItems() []Item { return slices.Clone(s.filtered) }
