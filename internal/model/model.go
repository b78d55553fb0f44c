// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"math"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns the transcript label for the role. Only two labels
// exist: assistant messages are labeled "Assistant", everything else "You".
func (r Role) DisplayName() string {
	if r == RoleAssistant {
		return "Assistant"
	}
	return "You"
}

// IsConversational reports whether messages with this role participate in
// reconstructed chains. Only user and assistant turns do; system and tool
// nodes are walked through but never collected.
func (r Role) IsConversational() bool {
	return r == RoleUser || r == RoleAssistant
}

// =============================================================================
// CONVERSATION TYPES
// =============================================================================

// Conversation is one record of an export document. It owns its mapping
// tree for the duration of an export operation and is never mutated after
// parsing.
type Conversation struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	CreateTime  *float64         `json:"create_time"`
	CurrentNode string           `json:"current_node"`
	Mapping     map[string]*Node `json:"mapping"`
}

// Node is one entry in the mapping tree. Parent is the id of the parent
// node, or empty at the root. Message is nil for structural nodes.
type Node struct {
	ID      string   `json:"id"`
	Parent  string   `json:"parent"`
	Message *Message `json:"message"`
}

// Message is a single authored message. Content is kept as raw JSON because
// export files carry several structurally different content shapes; use
// ExtractText to flatten it.
type Message struct {
	Author  Author          `json:"author"`
	Content json.RawMessage `json:"content"`
}

// Author identifies who wrote a message.
type Author struct {
	Role Role `json:"role"`
}

// =============================================================================
// TIMESTAMP NORMALIZATION
// =============================================================================

// msThreshold separates seconds-valued timestamps from milliseconds-valued
// ones. Export files in the wild carry both units; values cluster far from
// this boundary, so the heuristic is kept as-is rather than refined.
const msThreshold = 1e11

// CreatedAt returns the conversation's creation time. Values below the
// threshold are read as seconds, values above as milliseconds. A missing or
// non-finite timestamp falls back to the supplied clock.
func (c *Conversation) CreatedAt(now func() time.Time) time.Time {
	if c.CreateTime == nil {
		return now()
	}
	v := *c.CreateTime
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return now()
	}
	if v < msThreshold {
		v *= 1000
	}
	return time.UnixMilli(int64(v))
}

// DisplayTitle returns the conversation title or a fixed placeholder.
func (c *Conversation) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return "Untitled Conversation"
}
