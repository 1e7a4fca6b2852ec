package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/paginate/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// By default it writes the global $PAGINATE_HOME/config.yaml. With --project it
// writes .paginate.yaml in the current directory instead.
func NewConfigInitCmd() *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Use --project to create a .paginate.yaml overlay in the current directory.
Settings in the overlay replace the matching sections of the global file.`,
		Example: `  # Create global configuration
  paginate config init

  # Create a project overlay
  paginate config init --project

  # Create configuration, overwriting existing
  paginate config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if project {
				return initConfigFile(cmd, filepath.Join(workingDir(), config.ProjectFileName), force)
			}

			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			if err = config.EnsureConfigDir(); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			return initConfigFile(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "create "+config.ProjectFileName+" in the current directory")

	return cmd
}

// initConfigFile writes the default configuration to path.
func initConfigFile(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after files and environment are applied.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if path := cfg.ConfigPath(); path != "" {
				cmd.Printf("# %s\n", path)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2) //nolint:mnd // YAML indent width.
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			return enc.Close()
		},
	}
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the config version, page and nav
sizes, the default sort and the default output format.`,
		Example: `  # Validate current configuration
  paginate config validate

  # Validate and show detailed information
  paginate config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Printf("Configuration is valid\n")
			if verbose {
				cmd.Printf("  Version:        %s\n", cfg.Version)
				cmd.Printf("  Page size:      %d\n", cfg.Paginate.PageSize)
				cmd.Printf("  Nav size:       %d\n", cfg.Paginate.NavSize)
				cmd.Printf("  Output format:  %s\n", cfg.Output.DefaultFormat)
				cmd.Printf("  Log level:      %s\n", cfg.Logging.Level)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}
