// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Format names for export output.
const (
	FormatFiles  = "files"  // one markdown file per conversation
	FormatZip    = "zip"    // single uncompressed ZIP bundle
	FormatMerged = "merged" // single concatenated markdown document
)

// Config represents the complete chatpack configuration.
type Config struct {
	// OutputDir is where export artifacts are written.
	OutputDir string `toml:"output_dir"`

	// Format is the default export format: "files", "zip", or "merged".
	Format string `toml:"format"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Format:    FormatFiles,
	}
}

// =============================================================================
// LOADING
// =============================================================================

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chatpack", "config.toml")
}

// Load reads configuration from path. An empty path means the default
// location; a missing file yields defaults. Environment variables
// CHATPACK_OUTPUT_DIR and CHATPACK_FORMAT override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("CHATPACK_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("CHATPACK_FORMAT"); v != "" {
		cfg.Format = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatFiles, FormatZip, FormatMerged:
	default:
		return fmt.Errorf("invalid format %q (want %q, %q, or %q)",
			c.Format, FormatFiles, FormatZip, FormatMerged)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}
