package pagination

// halfDivisor splits the navigation window around the current page.
const halfDivisor = 2

// PageCount returns the number of pages needed to show total items,
// pageSize at a time. A non-positive pageSize yields 0.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return 1 + (total-1)/pageSize
}

// Window returns the page numbers to show as navigation links.
//
// The window holds min(navSize, pageCount) contiguous pages. It starts at 1
// while the current page sits in the first half of the window, follows the
// current page through the middle of the range, and pins to the last page
// once the current page is within half a window of the end.
func Window(current, pageCount, navSize int) []int {
	nav := navSize
	if nav > pageCount {
		nav = pageCount
	}
	if nav <= 0 {
		return []int{}
	}

	mid := nav/halfDivisor + nav%halfDivisor

	var first int
	switch {
	case current <= mid:
		first = 1
	case current < pageCount-mid+1:
		first = current - mid + 1
	default:
		first = pageCount - nav + 1
	}

	pages := make([]int, nav)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}

// Slice returns the items that belong on the given 1-based page.
// Pages before the first or past the end yield an empty slice.
// The result is a copy and never aliases items.
func Slice(items []Item, page, pageSize int) []Item {
	// Compare page numbers before multiplying so huge pages cannot overflow.
	if page < 1 || pageSize <= 0 || len(items) == 0 || page-1 > (len(items)-1)/pageSize {
		return []Item{}
	}

	begin := (page - 1) * pageSize
	end := len(items)
	if pageSize < end-begin {
		end = begin + pageSize
	}

	out := make([]Item, end-begin)
	copy(out, items[begin:end])
	return out
}
