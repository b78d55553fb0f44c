// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export turns parsed conversation records into named output
// artifacts: per-conversation markdown transcripts, a merged transcript,
// or an uncompressed ZIP bundle of all selected transcripts.
//
// # Key Types
//
//   - Exporter: per-conversation export interface
//   - Options: export configuration (output directory, clock)
//   - Artifact: a named, typed byte buffer ready to be written
//
// # Usage
//
// Render every conversation in an export to individual files:
//
//	artifacts, err := export.Files(convs, nil, nil)
//
// Bundle a selection into a single archive:
//
//	bundle, err := export.Bundle(convs, []int{0, 2}, nil)
//
// Artifacts are assembled entirely in memory; nothing touches the
// filesystem until Write is called, so a failed export never leaves
// partial output behind.
package export
