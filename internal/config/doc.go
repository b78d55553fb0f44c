// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chatpack.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides. Locations (in order of precedence):
//   - path given explicitly on the command line
//   - ~/.chatpack/config.toml
//   - built-in defaults
//
// A missing config file is not an error; defaults apply.
package config
