// Package config loads TOML configuration for the papercheck CLI and the
// similarity server. All fields have working defaults; a missing config file
// is not an error unless a path was given explicitly.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Similarity controls the scoring engine.
type Similarity struct {
	Threshold float64 `toml:"threshold"`
	Precision int     `toml:"precision"`
}

// Server controls the HTTP scoring service.
type Server struct {
	Bind                string `toml:"bind"`
	ReadTimeoutSeconds  int    `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `toml:"write_timeout_seconds"`
	MaxRequestBytes     int    `toml:"max_request_bytes"`
}

// History controls the SQLite comparison history.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging controls log output.
type Logging struct {
	JSON bool   `toml:"json"`
	File string `toml:"file"`
}

// Config is the root configuration document.
type Config struct {
	Similarity Similarity `toml:"similarity"`
	Server     Server     `toml:"server"`
	History    History    `toml:"history"`
	Logging    Logging    `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Similarity: Similarity{
			Threshold: 0.7,
			Precision: 4,
		},
		Server: Server{
			Bind:                ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 30,
			MaxRequestBytes:     10 * 1024 * 1024,
		},
		History: History{
			Enabled: false,
			Path:    "papercheck.db",
		},
	}
}

// Load reads the configuration at path, layered over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine would reject.
func (c *Config) Validate() error {
	if c.Similarity.Threshold < 0 || c.Similarity.Threshold > 1 {
		return errors.New("similarity.threshold must be between 0 and 1")
	}
	if c.Similarity.Precision < 0 || c.Similarity.Precision > 10 {
		return errors.New("similarity.precision must be between 0 and 10")
	}
	if c.Server.MaxRequestBytes <= 0 {
		return errors.New("server.max_request_bytes must be positive")
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path is required when history is enabled")
	}
	return nil
}
