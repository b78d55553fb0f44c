// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for exported conversation
// archives and the decoding logic that turns raw export bytes into them.
//
// An export file is a JSON array of conversation records. Each record
// carries a mapping: a parent-pointer tree of message nodes keyed by node
// id, with a current_node marking the active leaf. The mapping is treated
// as untrusted, semi-structured data: nodes may be missing, parent links
// may form cycles, and message content comes in several historical shapes.
//
// # Key Types
//
//   - Conversation: one exported conversation record
//   - Node: one entry in a conversation's mapping tree
//   - Message: an authored message carried by a node
//
// # Key Functions
//
//   - ParseExport: decode and shape-check a full export document
//   - ExtractText: flatten any message content shape into plain text
//   - Conversation.CreatedAt: normalize the record's creation timestamp
package model
