package pagination

import (
	"fmt"
	"strings"
)

// FieldKind tags the variant held by a Field.
type FieldKind int

// Field variants.
const (
	// FieldOther holds a value that is displayed but never searched.
	FieldOther FieldKind = iota
	// FieldString holds a single string.
	FieldString
	// FieldList holds a sequence of strings.
	FieldList
)

// String returns the variant name.
func (k FieldKind) String() string {
	switch k {
	case FieldString:
		return "string"
	case FieldList:
		return "list"
	case FieldOther:
		return "other"
	default:
		return "unknown"
	}
}

// Field is a single named value of an Item.
type Field struct {
	Name string
	Kind FieldKind

	// Text is set for FieldString.
	Text string
	// List is set for FieldList.
	List []string
	// Value is set for FieldOther.
	Value any
}

// String builds a FieldString.
func String(name, value string) Field {
	return Field{Name: name, Kind: FieldString, Text: value}
}

// List builds a FieldList.
func List(name string, values ...string) Field {
	return Field{Name: name, Kind: FieldList, List: append([]string(nil), values...)}
}

// Other builds a FieldOther.
func Other(name string, value any) Field {
	return Field{Name: name, Kind: FieldOther, Value: value}
}

// Display renders the field value as a single line of text.
func (f Field) Display() string {
	switch f.Kind {
	case FieldString:
		return f.Text
	case FieldList:
		return strings.Join(f.List, ", ")
	case FieldOther:
		if f.Value == nil {
			return ""
		}
		return fmt.Sprint(f.Value)
	default:
		return ""
	}
}

// Item is an ordered set of named fields.
// Items are treated as immutable once placed in a collection.
type Item struct {
	Fields []Field
}

// NewItem builds an Item from fields, keeping their order.
func NewItem(fields ...Field) Item {
	return Item{Fields: append([]Field(nil), fields...)}
}

// Get returns the first field with the given name.
func (i Item) Get(name string) (Field, bool) {
	for _, f := range i.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Display returns the display text of the named field, or "" if absent.
func (i Item) Display(name string) string {
	f, ok := i.Get(name)
	if !ok {
		return ""
	}
	return f.Display()
}

// Names returns the field names in order.
func (i Item) Names() []string {
	names := make([]string, len(i.Fields))
	for idx, f := range i.Fields {
		names[idx] = f.Name
	}
	return names
}

// Map converts the item back into a plain map, suitable for JSON or YAML output.
func (i Item) Map() map[string]any {
	out := make(map[string]any, len(i.Fields))
	for _, f := range i.Fields {
		switch f.Kind {
		case FieldString:
			out[f.Name] = f.Text
		case FieldList:
			out[f.Name] = append([]string(nil), f.List...)
		case FieldOther:
			out[f.Name] = f.Value
		}
	}
	return out
}
