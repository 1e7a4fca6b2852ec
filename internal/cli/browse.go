package cli

import (
	"fmt"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/paginate/internal/ingest"
	"github.com/rshade/paginate/internal/logging"
	"github.com/rshade/paginate/internal/tui"
)

// NewBrowseCmd creates the interactive browse command.
func NewBrowseCmd() *cobra.Command {
	var (
		flags   listFlags
		plain   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "browse [files...]",
		Short: "Browse a collection interactively",
		Long: `Opens an interactive pager over the items in the given files.

Files may be JSON (an array, or an object with an "items" array), NDJSON or
YAML. With no files, or "-", the collection is read from standard input.
When standard output is not a terminal the current page is printed instead.

Keys:
  /              search (results update as you type)
  esc            clear the search
  n, right, pgdn next page
  p, left, pgup  previous page
  1-9            jump to the Nth page link
  g, G           first / last page
  s              cycle the sort field
  r              reload the files
  enter          show the selected item
  q              quit`,
		Example: `  # Browse a file
  paginate browse items.json

  # Start with a search applied
  paginate browse items.yaml --query apple`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mode := tui.DetectOutputMode(plain, noColor, false)
			logging.FromContext(ctx).Debug().
				Str("component", "cli").
				Str("operation", "browse").
				Str("output_mode", mode.String()).
				Msg("rendering collection")

			// The TUI owns the terminal; only file logging stays on.
			if mode == tui.OutputModeInteractive && logging.LogPathFromContext(ctx) == "" {
				ctx = zerolog.Nop().WithContext(ctx)
				cmd.SetContext(ctx)
			}

			state, err := flags.newState(cmd, args)
			if err != nil {
				return err
			}

			switch mode {
			case tui.OutputModeInteractive:
				loader, loaderErr := flags.loader(cmd)
				if loaderErr != nil {
					return loaderErr
				}
				model := tui.NewBrowseModel(ctx, state, tui.BrowseOptions{
					Columns: flags.displayColumns(),
					Loader:  reloadFunc(loader, args),
				})

				opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
				if readsStdin(args) || !isTerminal(os.Stdin) {
					opts = append(opts, tea.WithInputTTY())
				}
				if _, err = tea.NewProgram(model, opts...).Run(); err != nil {
					return fmt.Errorf("failed to run interactive TUI: %w", err)
				}
				return nil

			case tui.OutputModeStyled:
				return tui.RenderStyled(ctx, cmd.OutOrStdout(), state, flags.displayColumns(), terminalWidth())

			case tui.OutputModePlain:
				return tui.RenderPlain(cmd.OutOrStdout(), state, flags.displayColumns())

			default:
				return tui.RenderPlain(cmd.OutOrStdout(), state, flags.displayColumns())
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print the first page without the interactive UI")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors (implies --plain)")

	return cmd
}

func readsStdin(args []string) bool {
	return slices.Contains(collectionPaths(args), ingest.StdinPath)
}

// terminalWidth returns the width of stdout, or 0 when unknown.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
