package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rshade/paginate/internal/logging"
)

// ProjectFileName is the per-directory overlay file.
const ProjectFileName = ".paginate.yaml"

// EnvProjectDir names the directory holding the project overlay.
const EnvProjectDir = "PAGINATE_PROJECT_DIR"

// ResolveProjectDir determines the directory holding the project overlay.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. PAGINATE_PROJECT_DIR env var
//  3. walking up from startDir to the first directory containing .paginate.yaml
//
// Returns an absolute path, or "" if no project is found.
func ResolveProjectDir(flagValue, startDir string) string {
	if flagValue != "" {
		return absOrSelf(flagValue)
	}
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return absOrSelf(envDir)
	}
	if startDir == "" {
		return ""
	}

	dir := absOrSelf(startDir)
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func absOrSelf(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

// NewWithProjectDir creates a Config from New and shallow-merges the overlay
// file in projectDir on top. A missing overlay is not an error; a broken one
// is logged and skipped so the global settings still apply.
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()
	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, ProjectFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.FromContext(ctx).Warn().
				Str("component", "config").
				Err(err).
				Str("overlay_path", overlayPath).
				Msg("cannot access project config")
		}
		return cfg
	}

	merged := New()
	if err := ShallowMergeYAML(merged, overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global defaults")
		return cfg
	}

	// Environment still wins over the overlay.
	if err := merged.ApplyEnv(); err != nil {
		return cfg
	}
	return merged
}

// LoadWithProjectDir is NewWithProjectDir for an explicit config file path.
// Errors reading or parsing path are returned.
func LoadWithProjectDir(ctx context.Context, path, projectDir string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if projectDir == "" {
		return cfg, nil
	}

	overlayPath := filepath.Join(projectDir, ProjectFileName)
	if _, statErr := os.Stat(overlayPath); statErr != nil {
		return cfg, nil //nolint:nilerr // Missing overlay keeps the loaded file.
	}
	if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config")
		return cfg, nil
	}
	if err = cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
