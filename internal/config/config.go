// Package config loads the run configuration for storysync from an
// optional TOML file layered under environment variables. The pipeline
// never reads configuration ambiently: the loaded value is passed into
// each component's constructor.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/clearlake-labs/storysync-cli/internal/core/domain"
)

const (
	// DefaultMaxResults bounds the single fetched page.
	DefaultMaxResults = 50

	// DefaultOutputDir is where the export file is written.
	DefaultOutputDir = "data"
)

// Config holds everything a run needs. BaseURL, APIToken and Project are
// required; Email is optional (empty selects bearer-token auth).
type Config struct {
	// BaseURL is the tracker instance address, without trailing slash.
	BaseURL string `toml:"base_url"`

	// Email is the account the API token belongs to (cloud instances).
	Email string `toml:"email"`

	// APIToken is the auth credential. Treated as opaque.
	APIToken string `toml:"api_token"`

	// Project is the project key to fetch stories from.
	Project string `toml:"project"`

	// MaxResults bounds the fetched page.
	MaxResults int `toml:"max_results"`

	// OutputDir is the export directory.
	OutputDir string `toml:"output_dir"`
}

// Load builds the configuration: defaults, then the TOML file at path
// (skipped when path is empty and no default file exists), then
// environment variables. Flag overrides are applied by the CLI layer.
func Load(path string) (*Config, error) {
	cfg := &Config{
		MaxResults: DefaultMaxResults,
		OutputDir:  DefaultOutputDir,
	}

	if err := loadFile(cfg, path); err != nil {
		return nil, err
	}
	loadEnv(cfg)

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// DefaultFilePath is the config file consulted when --config is not set.
const DefaultFilePath = "storysync.toml"

// loadFile merges the TOML file into cfg. A missing file is only an
// error when the path was given explicitly.
func loadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFilePath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// loadEnv overrides cfg from environment variables.
func loadEnv(cfg *Config) {
	if v := os.Getenv("JIRA_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("JIRA_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("JIRA_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("JIRA_PROJECT"); v != "" {
		cfg.Project = v
	}
	if v := os.Getenv("STORYSYNC_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxResults = n
		}
	}
	if v := os.Getenv("STORYSYNC_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "base URL (JIRA_BASE_URL)")
	}
	if c.APIToken == "" {
		missing = append(missing, "API token (JIRA_API_TOKEN)")
	}
	if c.Project == "" {
		missing = append(missing, "project key (JIRA_PROJECT)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrConfigIncomplete, strings.Join(missing, ", "))
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("%w: max results must be positive", domain.ErrConfigIncomplete)
	}
	return nil
}
