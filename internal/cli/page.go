package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/paginate/internal/config"
	"github.com/rshade/paginate/internal/pagination"
	"github.com/rshade/paginate/internal/tui"
)

// PageOutput is the structured form of one page, used for JSON and YAML output.
type PageOutput struct {
	Meta  pagination.Meta  `json:"meta"  yaml:"meta"`
	Items []map[string]any `json:"items" yaml:"items"`
}

// NewPageCmd creates the non-interactive page command.
func NewPageCmd() *cobra.Command {
	var (
		flags        listFlags
		page         int
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "page [files...]",
		Short: "Print one page of a collection",
		Long: `Prints a single page of the items in the given files.

The search query is applied before paging, so --page counts pages of matching
items. Asking for a page past the last one is an error.`,
		Example: `  # Second page, 20 items per page
  paginate page items.json --page 2 --page-size 20

  # Matching items as YAML, sorted by name descending
  paginate page items.ndjson --query red --sort name:desc --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := config.GetOutputFormat(outputFormat)
			if !config.IsValidFormat(format) {
				return fmt.Errorf("%w: got %q", config.ErrInvalidFormat, format)
			}

			state, err := flags.newState(cmd, args)
			if err != nil {
				return err
			}

			if page != pagination.FirstPage {
				if err = state.SetPage(page); err != nil {
					return fmt.Errorf("invalid --page: %w", err)
				}
			}

			return renderPage(cmd.OutOrStdout(), state, format, flags.displayColumns())
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&page, "page", "p", pagination.FirstPage, "page number to print (1-based)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml (default from config)")

	return cmd
}

func renderPage(w io.Writer, state *pagination.State, format string, columns []string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newPageOutput(state))
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // YAML indent width.
		if err := enc.Encode(newPageOutput(state)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return tui.RenderPlain(w, state, columns)
	}
}

// newPageOutput builds the structured form of the current page.
func newPageOutput(state *pagination.State) PageOutput {
	items := state.FilteredItems()
	out := PageOutput{
		Meta:  state.Meta(),
		Items: make([]map[string]any, len(items)),
	}
	for i, item := range items {
		out.Items[i] = item.Map()
	}
	return out
}
