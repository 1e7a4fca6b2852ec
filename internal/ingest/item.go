package ingest

import (
	"slices"

	"github.com/samber/lo"

	"github.com/rshade/paginate/internal/pagination"
)

// ItemFromMap converts a decoded record into an Item.
//
// Strings become FieldString, sequences made only of strings become
// FieldList, and everything else (numbers, booleans, nested objects, mixed
// lists, null) becomes FieldOther. Fields are ordered by key so the same
// record always produces the same Item.
func ItemFromMap(record map[string]any) pagination.Item {
	keys := lo.Keys(record)
	slices.Sort(keys)

	fields := make([]pagination.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fieldFromValue(k, record[k]))
	}
	return pagination.Item{Fields: fields}
}

func fieldFromValue(name string, value any) pagination.Field {
	switch v := value.(type) {
	case string:
		return pagination.String(name, v)
	case []string:
		return pagination.List(name, v...)
	case []any:
		if list, ok := stringList(v); ok {
			return pagination.List(name, list...)
		}
		return pagination.Other(name, v)
	default:
		return pagination.Other(name, v)
	}
}

func stringList(values []any) ([]string, bool) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// ItemsFromMaps converts records in order.
func ItemsFromMaps(records []map[string]any) []pagination.Item {
	return lo.Map(records, func(r map[string]any, _ int) pagination.Item {
		return ItemFromMap(r)
	})
}
