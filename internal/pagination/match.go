package pagination

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher decides whether a single item matches a search query.
type Matcher interface {
	Match(item Item, query string) bool
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(item Item, query string) bool

// Match calls f(item, query).
func (f MatcherFunc) Match(item Item, query string) bool {
	return f(item, query)
}

// FieldMatcher is the default Matcher. It performs a case-insensitive
// substring search across every string and list field of an item:
//   - an empty query matches every item
//   - a string field matches when it contains the query
//   - a list field matches when any element contains the query
//   - other fields never match
//
// An item matches when any of its fields matches.
type FieldMatcher struct{}

// Match implements Matcher.
func (FieldMatcher) Match(item Item, query string) bool {
	if query == "" {
		return true
	}

	fold := cases.Fold()
	needle := fold.String(query)

	for _, f := range item.Fields {
		if matchField(fold, f, needle) {
			return true
		}
	}
	return false
}

func matchField(fold cases.Caser, f Field, needle string) bool {
	switch f.Kind {
	case FieldString:
		return f.Text != "" && strings.Contains(fold.String(f.Text), needle)
	case FieldList:
		for _, v := range f.List {
			if strings.Contains(fold.String(v), needle) {
				return true
			}
		}
		return false
	case FieldOther:
		return false
	default:
		return false
	}
}
