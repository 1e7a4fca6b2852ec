package pagination_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paginate/internal/pagination"
)

// numbered returns n items with ids "1".."n".
func numbered(n int) []pagination.Item {
	items := make([]pagination.Item, n)
	for i := range items {
		items[i] = pagination.NewItem(pagination.String("id", strconv.Itoa(i+1)))
	}
	return items
}

// fruit returns "apple1".."appleN" with item 10 replaced by "banana".
func fruit(n int) []pagination.Item {
	items := make([]pagination.Item, n)
	for i := range items {
		name := fmt.Sprintf("apple%d", i+1)
		if i+1 == 10 {
			name = "banana"
		}
		items[i] = pagination.NewItem(pagination.String("name", name))
	}
	return items
}

func ids(items []pagination.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Display("id")
	}
	return out
}

func newState(t *testing.T, pageSize, navSize int, items []pagination.Item) *pagination.State {
	t.Helper()
	cfg := pagination.DefaultConfig()
	cfg.PageSize = pageSize
	cfg.NavSize = navSize
	s, err := pagination.New(cfg, items...)
	require.NoError(t, err)
	return s
}

func TestNew_InitialState(t *testing.T) {
	s := newState(t, 10, 5, numbered(25))

	assert.Equal(t, 3, s.PageCount())
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, []int{1, 2, 3}, s.Pages())
	assert.Equal(t, ids(numbered(10)), ids(s.FilteredItems()))
	assert.False(t, s.Searching())
	assert.Len(t, s.SearchedItems(), 25)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*pagination.Config)
		wantErr error
	}{
		{
			name:    "zero page size",
			mutate:  func(c *pagination.Config) { c.PageSize = 0 },
			wantErr: pagination.ErrInvalidPageSize,
		},
		{
			name:    "negative nav size",
			mutate:  func(c *pagination.Config) { c.NavSize = -1 },
			wantErr: pagination.ErrInvalidNavSize,
		},
		{
			name:    "bad sort order",
			mutate:  func(c *pagination.Config) { c.SortOrder = "sideways" },
			wantErr: pagination.ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := pagination.DefaultConfig()
			tt.mutate(&cfg)
			s, err := pagination.New(cfg)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

func TestNew_EmptyCollection(t *testing.T) {
	s := newState(t, 10, 5, nil)

	assert.Equal(t, 0, s.PageCount())
	assert.Equal(t, 1, s.CurrentPage())
	assert.Empty(t, s.Pages())
	assert.Empty(t, s.FilteredItems())
	assert.False(t, s.NextPage())
	assert.False(t, s.PrevPage())
}

func TestSetCurrentPage_LastPage(t *testing.T) {
	s := newState(t, 10, 5, numbered(25))

	s.SetCurrentPage(3)

	assert.Equal(t, []int{1, 2, 3}, s.Pages())
	assert.Equal(t, []string{"21", "22", "23", "24", "25"}, ids(s.FilteredItems()))
}

func TestSetCurrentPage_Unchecked(t *testing.T) {
	s := newState(t, 10, 5, numbered(25))

	s.SetCurrentPage(7)

	assert.Equal(t, 7, s.CurrentPage())
	assert.Empty(t, s.FilteredItems())
	assert.Equal(t, []int{1, 2, 3}, s.Pages())
}

func TestSetCurrentPage_ExtremeValues(t *testing.T) {
	s := newState(t, 10, 5, numbered(25))

	for _, page := range []int{math.MaxInt, math.MaxInt/10 + 2, math.MinInt} {
		assert.NotPanics(t, func() { s.SetCurrentPage(page) })
		assert.Equal(t, page, s.CurrentPage())
		assert.Empty(t, s.FilteredItems())
		assert.Equal(t, []int{1, 2, 3}, s.Pages())
	}

	assert.False(t, s.PrevPage())
	require.Error(t, s.SetPage(math.MaxInt))
}

func TestSetQuery_SingleMatch(t *testing.T) {
	s := newState(t, 10, 5, fruit(50))
	s.SetCurrentPage(4)

	s.SetQuery("banana")

	require.Len(t, s.SearchedItems(), 1)
	assert.Equal(t, "banana", s.SearchedItems()[0].Display("name"))
	assert.Equal(t, 1, s.PageCount())
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, []int{1}, s.Pages())
	require.Len(t, s.FilteredItems(), 1)
	assert.Equal(t, "banana", s.FilteredItems()[0].Display("name"))
	assert.True(t, s.Searching())
}

func TestSetQuery_CaseInsensitive(t *testing.T) {
	s := newState(t, 10, 5, fruit(50))

	s.SetQuery("APPLE")

	assert.Len(t, s.SearchedItems(), 49)
	assert.Equal(t, 5, s.PageCount())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Pages())
}

func TestSetQuery_EmptyMatchesAll(t *testing.T) {
	s := newState(t, 10, 5, fruit(50))
	s.SetQuery("banana")
	s.SetCurrentPage(1)

	s.SetQuery("")

	assert.Len(t, s.SearchedItems(), 50)
	assert.Equal(t, s.Items(), s.SearchedItems())
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 5, s.PageCount())
	assert.False(t, s.Searching())
}

func TestSetQuery_NoMatches(t *testing.T) {
	s := newState(t, 10, 5, fruit(50))

	s.SetQuery("cherry")

	assert.Empty(t, s.SearchedItems())
	assert.Equal(t, 0, s.PageCount())
	assert.Equal(t, 1, s.CurrentPage())
	assert.Empty(t, s.Pages())
	assert.Empty(t, s.FilteredItems())
}

func TestSetQuery_PaginatesSearchedItems(t *testing.T) {
	s := newState(t, 2, 5, []pagination.Item{
		pagination.NewItem(pagination.String("id", "1"), pagination.String("color", "red")),
		pagination.NewItem(pagination.String("id", "2"), pagination.String("color", "blue")),
		pagination.NewItem(pagination.String("id", "3"), pagination.String("color", "red")),
		pagination.NewItem(pagination.String("id", "4"), pagination.String("color", "red")),
		pagination.NewItem(pagination.String("id", "5"), pagination.String("color", "green")),
	})

	s.SetQuery("red")
	assert.Equal(t, 2, s.PageCount())
	assert.Equal(t, []string{"1", "3"}, ids(s.FilteredItems()))

	require.True(t, s.NextPage())
	assert.Equal(t, []string{"4"}, ids(s.FilteredItems()))

	s.SetCurrentPage(1)
	assert.Equal(t, []string{"1", "3"}, ids(s.FilteredItems()), "raw page changes must keep slicing the search results")
}

func TestSetCollection_KeepsCurrentPage(t *testing.T) {
	s := newState(t, 10, 5, numbered(25))
	s.SetCurrentPage(2)

	s.SetCollection(numbered(100))

	assert.Equal(t, 2, s.CurrentPage())
	assert.Equal(t, 10, s.PageCount())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Pages())
	assert.Equal(t, "11", s.FilteredItems()[0].Display("id"))
}

func TestSetCollection_ShrinkLeavesPageUnclamped(t *testing.T) {
	s := newState(t, 10, 5, numbered(100))
	s.SetCurrentPage(8)

	s.SetCollection(numbered(15))

	assert.Equal(t, 8, s.CurrentPage())
	assert.Equal(t, 2, s.PageCount())
	assert.Equal(t, []int{1, 2}, s.Pages())
	assert.Empty(t, s.FilteredItems())
}

func TestSetCollection_ReappliesQuery(t *testing.T) {
	s := newState(t, 10, 5, fruit(20))
	s.SetQuery("banana")

	s.SetCollection(append(fruit(20), pagination.NewItem(pagination.String("name", "Banana split"))))

	assert.Equal(t, "banana", s.Query())
	assert.Len(t, s.SearchedItems(), 2)
	assert.Len(t, s.FilteredItems(), 2)
}

func TestSetCollection_DoesNotAliasInput(t *testing.T) {
	items := numbered(3)
	s := newState(t, 10, 5, items)

	items[0] = pagination.NewItem(pagination.String("id", "changed"))

	assert.Equal(t, "1", s.Items()[0].Display("id"))
}

func TestNextPrevPage(t *testing.T) {
	s := newState(t, 10, 5, numbered(25))

	assert.False(t, s.PrevPage(), "prev on first page is a no-op")
	assert.Equal(t, 1, s.CurrentPage())

	assert.True(t, s.NextPage())
	assert.True(t, s.NextPage())
	assert.Equal(t, 3, s.CurrentPage())

	before := s.FilteredItems()
	assert.False(t, s.NextPage(), "next on last page is a no-op")
	assert.Equal(t, 3, s.CurrentPage())
	assert.Equal(t, before, s.FilteredItems())

	assert.True(t, s.PrevPage())
	assert.Equal(t, 2, s.CurrentPage())
	assert.Equal(t, "11", s.FilteredItems()[0].Display("id"))
}

func TestSetPage(t *testing.T) {
	s := newState(t, 10, 5, numbered(100))

	require.NoError(t, s.SetPage(8))
	assert.Equal(t, 8, s.CurrentPage())
	assert.Equal(t, []int{6, 7, 8, 9, 10}, s.Pages())
	assert.Equal(t, "71", s.FilteredItems()[0].Display("id"))

	for _, page := range []int{0, -3, 11} {
		err := s.SetPage(page)
		require.ErrorIs(t, err, pagination.ErrPageOutOfRange)
		assert.Equal(t, 8, s.CurrentPage(), "state must not change on rejected page %d", page)
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	s := newState(t, 7, 3, fruit(50))
	s.SetQuery("apple")
	s.SetCurrentPage(4)

	pages, items := s.Pages(), s.FilteredItems()
	s.Recompute()
	s.Recompute()

	assert.Equal(t, pages, s.Pages())
	assert.Equal(t, items, s.FilteredItems())
}

// TestFilteredItems_Length checks the page slice length for every page of
// several collection sizes.
func TestFilteredItems_Length(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 25, 99} {
		s := newState(t, 10, 5, numbered(total))
		for page := 1; page <= s.PageCount(); page++ {
			require.NoError(t, s.SetPage(page))
			begin := (page - 1) * 10
			want := min(10, total-begin)
			assert.Len(t, s.FilteredItems(), want, "total=%d page=%d", total, page)
			assert.Equal(t, strconv.Itoa(begin+1), s.FilteredItems()[0].Display("id"))
		}
	}
}

func TestSetSort(t *testing.T) {
	s := newState(t, 2, 5, []pagination.Item{
		pagination.NewItem(pagination.String("id", "1"), pagination.String("name", "cherry")),
		pagination.NewItem(pagination.String("id", "2"), pagination.String("name", "apple")),
		pagination.NewItem(pagination.String("id", "3"), pagination.String("name", "banana")),
	})
	s.SetCurrentPage(2)

	require.NoError(t, s.SetSort("name", pagination.SortOrderAsc))
	assert.Equal(t, 2, s.CurrentPage())
	assert.Equal(t, []string{"2", "3", "1"}, ids(s.Items()))
	assert.Equal(t, []string{"1"}, ids(s.FilteredItems()))

	require.NoError(t, s.SetSort("name", pagination.SortOrderDesc))
	assert.Equal(t, []string{"1", "3", "2"}, ids(s.Items()))

	require.NoError(t, s.SetSort("", ""))
	assert.Equal(t, []string{"1", "2", "3"}, ids(s.Items()))

	require.ErrorIs(t, s.SetSort("name", "up"), pagination.ErrInvalidSortOrder)
}

func TestMeta(t *testing.T) {
	s := newState(t, 10, 5, fruit(50))
	s.SetQuery("apple")
	require.NoError(t, s.SetPage(2))

	meta := s.Meta()

	assert.Equal(t, pagination.Meta{
		CurrentPage:    2,
		PageSize:       10,
		NavSize:        5,
		TotalPages:     5,
		TotalItems:     49,
		CollectionSize: 50,
		Query:          "apple",
		Pages:          []int{1, 2, 3, 4, 5},
		HasPrevious:    true,
		HasNext:        true,
	}, meta)
}

func TestMeta_Empty(t *testing.T) {
	s := newState(t, 10, 5, nil)

	meta := s.Meta()

	assert.Equal(t, 0, meta.TotalItems)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}
