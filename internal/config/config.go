// Package config loads, validates and saves paginate's YAML configuration.
//
// Values are resolved in this order, later sources winning:
//  1. built-in defaults
//  2. the global file ($PAGINATE_HOME/config.yaml, default ~/.paginate/config.yaml)
//  3. a project overlay (./.paginate.yaml), merged one top-level section at a time
//  4. PAGINATE_* environment variables
//  5. command-line flags, applied by the cli package
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/paginate/internal/pagination"
)

// Configuration file versions this build understands.
const (
	CurrentVersion    = "1.0.0"
	versionConstraint = ">= 1.0.0, < 2.0.0"
)

// Output formats accepted by the page command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Environment variable names.
const (
	EnvHome         = "PAGINATE_HOME"
	EnvPageSize     = "PAGINATE_PAGE_SIZE"
	EnvNavSize      = "PAGINATE_NAV_SIZE"
	EnvLogLevel     = "PAGINATE_LOG_LEVEL"
	EnvLogFormat    = "PAGINATE_LOG_FORMAT"
	EnvOutputFormat = "PAGINATE_OUTPUT_FORMAT"
)

// Validation errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidFormat      = errors.New("output format must be one of table, json, yaml")
)

// Config is the root configuration document.
type Config struct {
	Version  string         `yaml:"version"`
	Paginate PaginateConfig `yaml:"paginate"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`

	configPath string
}

// PaginateConfig holds the list defaults.
type PaginateConfig struct {
	PageSize int      `yaml:"page_size"`
	NavSize  int      `yaml:"nav_size"`
	Sort     string   `yaml:"sort,omitempty"`
	Columns  []string `yaml:"columns,omitempty"`
}

// OutputConfig holds output preferences.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Paginate: PaginateConfig{
			PageSize: pagination.DefaultPageSize,
			NavSize:  pagination.DefaultNavSize,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the defaults overlaid with the global config file and the
// environment. A missing or unreadable file leaves the defaults in place.
func New() *Config {
	path, err := DefaultConfigPath()
	if err != nil {
		cfg := Default()
		_ = cfg.ApplyEnv()
		return cfg
	}

	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
		cfg.configPath = path
		_ = cfg.ApplyEnv()
	}
	return cfg
}

// Load reads the file at path on top of the defaults and applies the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PAGINATE_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageSize, err)
		}
		c.Paginate.PageSize = n
	}
	if v := os.Getenv(EnvNavSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNavSize, err)
		}
		c.Paginate.NavSize = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	return nil
}

// Validate checks the version and every field a State or the page command
// would reject later.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	if _, err := c.PaginationConfig(); err != nil {
		return err
	}
	if !IsValidFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.DefaultFormat)
	}
	return nil
}

// PaginationConfig converts the paginate section into a validated
// pagination.Config.
func (c *Config) PaginationConfig() (pagination.Config, error) {
	field, order, err := pagination.ParseSort(c.Paginate.Sort)
	if err != nil {
		return pagination.Config{}, err
	}

	pc := pagination.DefaultConfig()
	pc.PageSize = c.Paginate.PageSize
	pc.NavSize = c.Paginate.NavSize
	pc.SortField = field
	pc.SortOrder = order
	if err = pc.Validate(); err != nil {
		return pagination.Config{}, err
	}
	return pc, nil
}

// IsValidFormat reports whether format is a known output format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(versionConstraint)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, versionConstraint)
	}
	return nil
}

// SetConfigPath sets the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// ConfigPath returns the file this config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Save writes the config to its path, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}
