// Package pagination implements the search-and-paginate state machine behind a
// paged list view.
//
// A State holds the full collection, the live search query and the current
// page, and derives from them:
//   - SearchedItems: the items matching the query, in collection order
//   - Pages: the bounded window of page numbers to render as navigation links
//   - FilteredItems: the items to render for the current page
//
// Hosts (the terminal UI, the page command) push input changes through the
// SetCollection, SetQuery and SetCurrentPage mutators and bind user actions to
// NextPage, PrevPage and SetPage. Every mutator recomputes the derived fields
// synchronously before returning, so readers never observe a partial update.
//
// State is not safe for concurrent use; the host serializes calls.
package pagination
