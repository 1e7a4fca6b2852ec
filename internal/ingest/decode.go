package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/paginate/internal/logging"
	"github.com/rshade/paginate/internal/pagination"
)

// Format identifies how a collection file is encoded.
type Format string

// Supported formats.
const (
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatYAML   Format = "yaml"
)

// itemsKey is the wrapper key accepted around a JSON or YAML collection.
const itemsKey = "items"

// Decoding errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported collection format")
	ErrNotRecord         = errors.New("collection entry is not an object")
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".ndjson", ".jsonl":
		return FormatNDJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Parse decodes data in the given format into items.
func Parse(ctx context.Context, data []byte, format Format) ([]pagination.Item, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "ingest").
		Str("operation", "parse").
		Str("format", string(format)).
		Int("data_size_bytes", len(data)).
		Msg("parsing collection")

	var (
		records []map[string]any
		err     error
	)
	switch format {
	case FormatJSON, FormatNDJSON:
		records, err = decodeJSONStream(data)
	case FormatYAML:
		records, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		log.Error().
			Str("component", "ingest").
			Err(err).
			Str("format", string(format)).
			Msg("failed to parse collection")
		return nil, err
	}

	log.Debug().
		Str("component", "ingest").
		Int("item_count", len(records)).
		Msg("collection parsed successfully")

	return ItemsFromMaps(records), nil
}

// decodeJSONStream reads one or more JSON values. Each value may be an array
// of objects, an object wrapping such an array under "items", or a single
// object. A plain JSON document and NDJSON are both handled by this.
func decodeJSONStream(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []map[string]any
	for {
		var value any
		err := dec.Decode(&value)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}

		batch, err := recordsFromValue(value)
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}
	return records, nil
}

func decodeYAML(data []byte) ([]map[string]any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	if value == nil {
		return nil, nil
	}
	return recordsFromValue(value)
}

func recordsFromValue(value any) ([]map[string]any, error) {
	if m, ok := value.(map[any]any); ok {
		value = stringKeys(m)
	}
	switch v := value.(type) {
	case []any:
		return recordsFromList(v)
	case map[string]any:
		if wrapped, ok := v[itemsKey].([]any); ok && len(v) == 1 {
			return recordsFromList(wrapped)
		}
		return []map[string]any{v}, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotRecord, value)
	}
}

func recordsFromList(list []any) ([]map[string]any, error) {
	records := make([]map[string]any, 0, len(list))
	for idx, entry := range list {
		if m, isAnyMap := entry.(map[any]any); isAnyMap {
			entry = stringKeys(m)
		}
		record, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is %T", ErrNotRecord, idx, entry)
		}
		records = append(records, record)
	}
	return records, nil
}

// stringKeys converts a YAML mapping with non-string keys, such as `2024: x`,
// into a record keyed by the keys' text.
func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = v
	}
	return out
}
