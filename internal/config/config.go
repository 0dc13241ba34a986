// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultPort is the HTTP port used by `serve` when none is configured.
const DefaultPort = "8080"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Template string `json:"template,omitempty"` // modern, classic or executive
	Input    string `json:"input,omitempty"`    // Path to a JSON/YAML profile file

	Port        string `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for saved drafts

	SummaryLimit         int    `json:"summary_limit,omitempty"`          // Soft limit for the summary counter
	ExportTimeoutSeconds int    `json:"export_timeout_seconds,omitempty"` // PDF export deadline
	ChromePath           string `json:"chrome_path,omitempty"`            // Browser binary for PDF export

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Template != "" {
		if _, err := types.ParseVariant(c.Template); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.SummaryLimit < 0 {
		return fmt.Errorf("config error: 'summary_limit' must be non-negative")
	}
	if c.ExportTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'export_timeout_seconds' must be non-negative")
	}

	if c.Port != "" {
		port, err := strconv.Atoi(c.Port)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("config error: invalid port %q", c.Port)
		}
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Port == "" {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	if result.SummaryLimit == 0 {
		if defaults.SummaryLimit > 0 {
			result.SummaryLimit = defaults.SummaryLimit
		} else {
			result.SummaryLimit = rendering.DefaultSummaryLimit
		}
	}
	if result.ExportTimeoutSeconds == 0 {
		result.ExportTimeoutSeconds = defaults.ExportTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Variant returns the configured template, or the default when unset or invalid.
func (c *Config) Variant() types.Variant {
	v, err := types.ParseVariant(c.Template)
	if err != nil {
		return types.DefaultVariant
	}
	return v
}

// ExportTimeout returns the PDF export deadline. Zero means the exporter default.
func (c *Config) ExportTimeout() time.Duration {
	return time.Duration(c.ExportTimeoutSeconds) * time.Second
}
