// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package archive assembles named byte buffers into a minimal uncompressed
// ZIP container, byte-exactly and without an archive library.
//
// The container is the smallest valid single-volume layout: one store-only
// local file record per entry, a central directory referencing the recorded
// local offsets, and an end-of-central-directory record. Any conforming ZIP
// reader can list and extract the entries with correct names, sizes, and
// CRC-32 checksums.
//
// # Key Functions
//
//   - Build: serialize a list of entries into one contiguous archive
//   - Checksum: the zip-standard CRC-32 over raw bytes
package archive
