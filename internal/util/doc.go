// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for chatpack.
//
// This package contains common helper functions used throughout the
// application for string manipulation, filename handling, and file
// operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - PadWidth: display-width aware padding for tabular output
//
// Filename Handling:
//   - SanitizeFilename: portable, idempotent filename sanitization
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
