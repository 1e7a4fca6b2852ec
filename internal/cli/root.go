package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/paginate/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the paginate CLI.
// It loads configuration, wires up logging and tracing, and registers the
// browse, page and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "paginate",
		Short:         "Page through and search item collections",
		Long:          "paginate: load JSON, NDJSON or YAML collections and browse them one page at a time",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $PAGINATE_HOME/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "directory holding .paginate.yaml (default: search upward from cwd)")
	cmd.AddCommand(NewBrowseCmd(), NewPageCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse a JSON collection interactively
  paginate browse items.json

  # Browse several files, sorted by name, 20 per page
  paginate browse a.yaml b.ndjson --sort name --page-size 20

  # Print page 3 of the items matching "apple" as JSON
  paginate page items.json --query apple --page 3 --output json

  # Read a collection from standard input
  cat items.ndjson | paginate page -

  # Initialize configuration
  paginate config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationSkipValidation: "true"},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
