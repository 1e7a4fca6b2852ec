package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/paginate/internal/config"
	"github.com/rshade/paginate/internal/logging"
)

// annotationSkipValidation marks commands that must run on an invalid
// configuration, such as config init --force.
const annotationSkipValidation = "paginate/skip-config-validation"

// loadConfig resolves the configuration for this invocation and installs it
// as the global config. An explicit --config file must parse; the default
// file is best-effort.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()
	path, _ := cmd.Flags().GetString("config")
	projectFlag, _ := cmd.Flags().GetString("project-dir")
	projectDir := config.ResolveProjectDir(projectFlag, workingDir())

	var cfg *config.Config
	if path != "" {
		loaded, err := config.LoadWithProjectDir(ctx, path, projectDir)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.NewWithProjectDir(ctx, projectDir)
	}

	config.SetGlobalConfig(cfg)

	if skipsValidation(cmd) {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration %s: %w", cfg.ConfigPath(), err)
	}
	return nil
}

func skipsValidation(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationSkipValidation] == "true" {
			return true
		}
	}
	return false
}

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	if result.UsingFile {
		ctx = logging.ContextWithLogPath(ctx, result.FilePath)
	}
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
