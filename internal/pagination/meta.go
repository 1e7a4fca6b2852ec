package pagination

// Meta summarizes the derived state of a State for display or serialization.
type Meta struct {
	CurrentPage    int    `json:"current_page"    yaml:"current_page"`
	PageSize       int    `json:"page_size"       yaml:"page_size"`
	NavSize        int    `json:"nav_size"        yaml:"nav_size"`
	TotalPages     int    `json:"total_pages"     yaml:"total_pages"`
	TotalItems     int    `json:"total_items"     yaml:"total_items"`
	CollectionSize int    `json:"collection_size" yaml:"collection_size"`
	Query          string `json:"query,omitempty" yaml:"query,omitempty"`
	Pages          []int  `json:"pages"           yaml:"pages"`
	HasPrevious    bool   `json:"has_previous"    yaml:"has_previous"`
	HasNext        bool   `json:"has_next"        yaml:"has_next"`
}

// Meta returns a snapshot of the pagination metadata.
// TotalItems counts the effective collection, so it reflects the active query.
func (s *State) Meta() Meta {
	return Meta{
		CurrentPage:    s.currentPage,
		PageSize:       s.pageSize,
		NavSize:        s.navSize,
		TotalPages:     s.pageCount,
		TotalItems:     len(s.effective()),
		CollectionSize: len(s.items),
		Query:          s.query,
		Pages:          s.Pages(),
		HasPrevious:    s.currentPage > FirstPage,
		HasNext:        s.currentPage < s.pageCount,
	}
}
