// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the server configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or can
// be overridden via environment variables and CLI flags.
type Config struct {
	Port          int    `json:"port,omitempty"`           // HTTP listen port
	UploadDir     string `json:"upload_dir,omitempty"`     // Directory for answer video uploads
	AllowedOrigin string `json:"allowed_origin,omitempty"` // CORS Access-Control-Allow-Origin value
	LogJSON       bool   `json:"log_json,omitempty"`       // Emit JSON-encoded logs
	Debug         bool   `json:"debug,omitempty"`          // Enable debug-level logging
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:          8000,
		UploadDir:     "uploads",
		AllowedOrigin: "*",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.UploadDir == "" {
		return fmt.Errorf("config error: 'upload_dir' must not be empty")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.AllowedOrigin == "" {
		result.AllowedOrigin = defaults.AllowedOrigin
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
