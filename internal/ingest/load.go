// Package ingest loads item collections from files or standard input.
package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/paginate/internal/logging"
	"github.com/rshade/paginate/internal/pagination"
)

// StdinPath is the path argument that reads from standard input.
const StdinPath = "-"

// Loader reads collections. The zero value reads standard input from os.Stdin.
type Loader struct {
	// Stdin replaces os.Stdin for the "-" path.
	Stdin io.Reader
	// StdinFormat is the format assumed for standard input. Defaults to JSON,
	// which also accepts NDJSON.
	StdinFormat Format
}

// Load reads every path with a zero Loader.
func Load(ctx context.Context, paths ...string) ([]pagination.Item, error) {
	return Loader{}.Load(ctx, paths...)
}

// Load reads every path and concatenates the items in argument order.
//
// Files are read in parallel, bounded by runtime.NumCPU(). The first error
// cancels the remaining reads and is returned.
func (l Loader) Load(ctx context.Context, paths ...string) ([]pagination.Item, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "ingest").
		Str("operation", "load").
		Strs("paths", paths).
		Msg("loading collection")

	results := make([][]pagination.Item, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for idx, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			items, err := l.loadOne(gCtx, path)
			if err != nil {
				return err
			}
			results[idx] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().
			Str("component", "ingest").
			Err(err).
			Msg("failed to load collection")
		return nil, err
	}

	items := slices.Concat(results...)
	if items == nil {
		items = []pagination.Item{}
	}

	log.Debug().
		Str("component", "ingest").
		Int("file_count", len(paths)).
		Int("item_count", len(items)).
		Msg("collection loaded successfully")

	return items, nil
}

func (l Loader) loadOne(ctx context.Context, path string) ([]pagination.Item, error) {
	if path == StdinPath {
		return l.loadStdin(ctx)
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading collection file: %w", err)
	}

	items, err := Parse(ctx, data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func (l Loader) loadStdin(ctx context.Context) ([]pagination.Item, error) {
	r := l.Stdin
	if r == nil {
		r = os.Stdin
	}
	format := l.StdinFormat
	if format == "" {
		format = FormatJSON
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading standard input: %w", err)
	}

	items, err := Parse(ctx, data, format)
	if err != nil {
		return nil, fmt.Errorf("standard input: %w", err)
	}
	return items, nil
}
