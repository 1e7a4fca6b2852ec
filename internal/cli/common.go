package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/paginate/internal/config"
	"github.com/rshade/paginate/internal/ingest"
	"github.com/rshade/paginate/internal/logging"
	"github.com/rshade/paginate/internal/pagination"
	"github.com/rshade/paginate/internal/tui"
)

// listFlags are shared by the browse and page commands. Zero values defer to
// the configuration.
type listFlags struct {
	pageSize    int
	navSize     int
	query       string
	sort        string
	columns     []string
	stdinFormat string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "items per page (default from config, 10)")
	cmd.Flags().IntVar(&f.navSize, "nav-size", 0, "page links shown in the nav bar (default from config, 5)")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "only show items matching this text")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort by field, e.g. name or name:desc")
	cmd.Flags().StringSliceVar(&f.columns, "columns", nil, "fields to show (default: all)")
	cmd.Flags().StringVar(&f.stdinFormat, "stdin-format", string(ingest.FormatJSON),
		"format of standard input: json, ndjson or yaml")
}

// paginationConfig merges the configured defaults with any flags the user set.
func (f *listFlags) paginationConfig(cmd *cobra.Command) (pagination.Config, error) {
	cfg := config.GetGlobalConfig()
	pc, err := cfg.PaginationConfig()
	if err != nil {
		return pagination.Config{}, err
	}

	if cmd.Flags().Changed("page-size") {
		pc.PageSize = f.pageSize
	}
	if cmd.Flags().Changed("nav-size") {
		pc.NavSize = f.navSize
	}
	if cmd.Flags().Changed("sort") {
		field, order, sortErr := pagination.ParseSort(f.sort)
		if sortErr != nil {
			return pagination.Config{}, fmt.Errorf("invalid --sort: %w", sortErr)
		}
		pc.SortField = field
		pc.SortOrder = order
	}

	if err = pc.Validate(); err != nil {
		return pagination.Config{}, err
	}
	return pc, nil
}

// displayColumns returns --columns, or the configured columns.
func (f *listFlags) displayColumns() []string {
	if len(f.columns) > 0 {
		return f.columns
	}
	return config.GetGlobalConfig().Paginate.Columns
}

// loader builds an ingest.Loader reading standard input from cmd.
func (f *listFlags) loader(cmd *cobra.Command) (ingest.Loader, error) {
	format := ingest.Format(f.stdinFormat)
	switch format {
	case ingest.FormatJSON, ingest.FormatNDJSON, ingest.FormatYAML:
	default:
		return ingest.Loader{}, fmt.Errorf("%w: --stdin-format %q", ingest.ErrUnsupportedFormat, f.stdinFormat)
	}
	return ingest.Loader{Stdin: cmd.InOrStdin(), StdinFormat: format}, nil
}

// newState loads the collection named by args (standard input when empty)
// and returns a State positioned on page 1 with the query applied.
func (f *listFlags) newState(cmd *cobra.Command, args []string) (*pagination.State, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	pc, err := f.paginationConfig(cmd)
	if err != nil {
		return nil, err
	}
	pc.Logger = log

	loader, err := f.loader(cmd)
	if err != nil {
		return nil, err
	}

	items, err := loader.Load(ctx, collectionPaths(args)...)
	if err != nil {
		return nil, fmt.Errorf("loading collection: %w", err)
	}

	state, err := pagination.New(pc, items...)
	if err != nil {
		return nil, err
	}
	if f.query != "" {
		state.SetQuery(f.query)
	}

	log.Debug().
		Str("component", "cli").
		Str("operation", "new_state").
		Int("item_count", len(items)).
		Int("page_size", pc.PageSize).
		Int("page_count", state.PageCount()).
		Msg("collection ready")

	return state, nil
}

// collectionPaths maps no arguments to standard input.
func collectionPaths(args []string) []string {
	if len(args) == 0 {
		return []string{ingest.StdinPath}
	}
	return args
}

// reloadFunc re-reads the files in args. Standard input cannot be read twice,
// so collections that include it have no reload.
func reloadFunc(loader ingest.Loader, args []string) tui.LoadFunc {
	if readsStdin(args) {
		return nil
	}
	paths := collectionPaths(args)
	return func(ctx context.Context) ([]pagination.Item, error) {
		return loader.Load(ctx, paths...)
	}
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
