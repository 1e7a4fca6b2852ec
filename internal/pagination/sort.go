package pagination

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "name", "name:desc", "tags:asc".
// An empty string disables sorting.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// SortItems returns a new slice ordered by the display text of field, compared
// with the same Unicode case folding the search uses.
// The sort is stable, and items without the field go last in ascending order.
// An empty field returns an unsorted copy.
func SortItems(items []Item, field, order string) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	if field == "" {
		return sorted
	}

	type sortKey struct {
		item Item
		key  string
		ok   bool
	}
	fold := cases.Fold()
	keys := make([]sortKey, len(sorted))
	for i, it := range sorted {
		f, ok := it.Get(field)
		keys[i] = sortKey{item: it, ok: ok}
		if ok {
			keys[i].key = fold.String(f.Display())
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch {
		case keys[i].ok && !keys[j].ok:
			return true
		case !keys[i].ok:
			return false
		}
		return keys[i].key < keys[j].key
	})

	for i, k := range keys {
		sorted[i] = k.item
	}
	return sorted
}

// Columns returns the union of field names across items, in first-seen order.
func Columns(items []Item) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, it := range items {
		for _, f := range it.Fields {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			cols = append(cols, f.Name)
		}
	}
	return cols
}
