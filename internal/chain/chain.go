// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chain reconstructs the linear message sequence of a conversation
// from its parent-pointer mapping tree.
package chain

import (
	"github.com/jeranaias/chatpack/internal/model"
)

// =============================================================================
// CHAIN RECONSTRUCTION
// =============================================================================

// Reconstruct walks a conversation's mapping tree from current_node toward
// the root and returns the user/assistant messages in root-first order.
//
// The mapping is untrusted: the walk tolerates a missing current pointer,
// nodes absent from the mapping, and cyclic parent links. Each node id is
// visited at most once, so traversal is O(number of nodes) worst case and
// always terminates, yielding whatever was collected before the guard
// tripped. Reconstruct never fails.
func Reconstruct(conv *model.Conversation) []*model.Message {
	if conv == nil {
		return nil
	}

	visited := make(map[string]struct{}, len(conv.Mapping))
	var collected []*model.Message

	// Explicit loop rather than recursion: cycle handling stays O(1) per
	// step and the stack stays flat on deep trees.
	cur := conv.CurrentNode
	for cur != "" {
		if _, seen := visited[cur]; seen {
			break
		}
		visited[cur] = struct{}{}

		node, ok := conv.Mapping[cur]
		if !ok || node == nil {
			break
		}
		if node.Message != nil && node.Message.Author.Role.IsConversational() {
			collected = append(collected, node.Message)
		}
		// System/tool/bare nodes are skipped but the walk continues.
		cur = node.Parent
	}

	// The walk gathers leaf-to-root; flip to root-first.
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return collected
}
