package pagination

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Defaults and validation limits.
const (
	DefaultPageSize  = 10
	DefaultNavSize   = 5
	MinPageSize      = 1
	MinNavSize       = 1
	FirstPage        = 1
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPageSize   = errors.New("page-size must be >= 1")
	ErrInvalidNavSize    = errors.New("nav-size must be >= 1")
	ErrPageOutOfRange    = errors.New("page out of range")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
)

// Config holds the construction parameters of a State.
type Config struct {
	// PageSize is the number of items per page.
	PageSize int

	// NavSize is the maximum number of page links shown at once.
	NavSize int

	// SortField orders the collection by a field's display text. Empty keeps
	// collection order.
	SortField string

	// SortOrder is "asc" or "desc".
	SortOrder string

	// Matcher decides which items match the query. Nil selects FieldMatcher.
	Matcher Matcher

	// Logger receives debug events on recomputation. The zero value is
	// replaced by a disabled logger.
	Logger *zerolog.Logger
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		PageSize:  DefaultPageSize,
		NavSize:   DefaultNavSize,
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
		Matcher:   FieldMatcher{},
	}
}

// Validate checks that the sizes are usable and the sort order is known.
func (c Config) Validate() error {
	if c.PageSize < MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.PageSize)
	}
	if c.NavSize < MinNavSize {
		return fmt.Errorf("%w: got %d", ErrInvalidNavSize, c.NavSize)
	}
	if c.SortOrder != "" && c.SortOrder != SortOrderAsc && c.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, c.SortOrder)
	}
	return nil
}

// withDefaults fills the optional fields.
func (c Config) withDefaults() Config {
	if c.Matcher == nil {
		c.Matcher = FieldMatcher{}
	}
	if c.SortOrder == "" {
		c.SortOrder = DefaultSortOrder
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}
