package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paginate/internal/config"
	"github.com/rshade/paginate/internal/pagination"
)

// isolate points PAGINATE_HOME at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, k := range []string{
		config.EnvPageSize, config.EnvNavSize, config.EnvLogLevel,
		config.EnvLogFormat, config.EnvOutputFormat, config.EnvProjectDir,
	} {
		t.Setenv(k, "")
	}
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, pagination.DefaultPageSize, cfg.Paginate.PageSize)
	assert.Equal(t, pagination.DefaultNavSize, cfg.Paginate.NavSize)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestNew_MissingFileUsesDefaults(t *testing.T) {
	home := isolate(t)

	cfg := config.New()

	assert.Equal(t, pagination.DefaultPageSize, cfg.Paginate.PageSize)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
}

func TestLoad_File(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.yaml")
	writeFile(t, path, `
version: "1.2.0"
paginate:
  page_size: 25
  nav_size: 7
  sort: name:desc
  columns: [name, tags]
logging:
  level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Paginate.PageSize)
	assert.Equal(t, 7, cfg.Paginate.NavSize)
	assert.Equal(t, []string{"name", "tags"}, cfg.Paginate.Columns)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat, "absent sections keep defaults")
	require.NoError(t, cfg.Validate())

	pc, err := cfg.PaginationConfig()
	require.NoError(t, err)
	assert.Equal(t, "name", pc.SortField)
	assert.Equal(t, pagination.SortOrderDesc, pc.SortOrder)
}

func TestLoad_InvalidYAML(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.yaml")
	writeFile(t, path, "paginate: [unclosed")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvPageSize, "3")
	t.Setenv(config.EnvNavSize, "9")
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvOutputFormat, "json")

	cfg := config.New()

	assert.Equal(t, 3, cfg.Paginate.PageSize)
	assert.Equal(t, 9, cfg.Paginate.NavSize)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
}

func TestApplyEnv_BadNumber(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvPageSize, "ten")

	cfg := config.Default()
	err := cfg.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvPageSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "empty version", mutate: func(c *config.Config) { c.Version = "" }},
		{name: "short version", mutate: func(c *config.Config) { c.Version = "1" }},
		{
			name:    "future major version",
			mutate:  func(c *config.Config) { c.Version = "2.0.0" },
			wantErr: config.ErrUnsupportedVersion,
		},
		{
			name:    "garbage version",
			mutate:  func(c *config.Config) { c.Version = "latest" },
			wantErr: config.ErrUnsupportedVersion,
		},
		{
			name:    "zero page size",
			mutate:  func(c *config.Config) { c.Paginate.PageSize = 0 },
			wantErr: pagination.ErrInvalidPageSize,
		},
		{
			name:    "zero nav size",
			mutate:  func(c *config.Config) { c.Paginate.NavSize = 0 },
			wantErr: pagination.ErrInvalidNavSize,
		},
		{
			name:    "bad sort",
			mutate:  func(c *config.Config) { c.Paginate.Sort = "name:up" },
			wantErr: pagination.ErrInvalidSortOrder,
		},
		{
			name:    "bad format",
			mutate:  func(c *config.Config) { c.Output.DefaultFormat = "xml" },
			wantErr: config.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "nested", "config.yaml")

	cfg := config.Default()
	cfg.Paginate.PageSize = 42
	cfg.SetConfigPath(path)
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Paginate.PageSize)
}

func TestSave_NoPath(t *testing.T) {
	require.Error(t, config.Default().Save())
}

func TestGlobalConfig(t *testing.T) {
	isolate(t)

	first := config.GetGlobalConfig()
	require.NotNil(t, first)
	assert.Same(t, first, config.GetGlobalConfig())

	custom := config.Default()
	custom.Output.DefaultFormat = config.FormatYAML
	config.SetGlobalConfig(custom)

	assert.Equal(t, config.FormatYAML, config.GetOutputFormat(""))
	assert.Equal(t, config.FormatJSON, config.GetOutputFormat(config.FormatJSON))
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	assert.Equal(t, "stderr", lc.ToLoggingConfig().Output)

	lc.File = "/tmp/paginate.log"
	out := lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/paginate.log", out.File)
	assert.Equal(t, "debug", out.Level)
}
