// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/jeranaias/chatpack/internal/chain"
	"github.com/jeranaias/chatpack/internal/model"
)

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// blockSeparator leaves two blank lines between transcript entries.
const blockSeparator = "\n\n\n"

// RenderTranscript serializes an ordered message sequence into a markdown
// transcript. Each message becomes a labeled block:
//
//	**You**:
//	<text>
//
// Messages whose extracted text is blank are omitted entirely rather than
// rendered as empty blocks; a sequence with no qualifying messages yields
// the empty string.
func RenderTranscript(msgs []*model.Message) string {
	var blocks []string
	for _, msg := range msgs {
		text := strings.TrimSpace(model.ExtractText(msg))
		if text == "" {
			continue
		}
		label := msg.Author.Role.DisplayName()
		blocks = append(blocks, fmt.Sprintf("**%s**:\n%s", label, text))
	}
	return strings.Join(blocks, blockSeparator)
}

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports a single conversation to a markdown transcript.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export reconstructs the conversation's message chain and renders it as a
// markdown transcript. A conversation with no renderable messages exports
// to an empty document, not an error; only a nil conversation fails.
func (e *MarkdownExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}
	msgs := chain.Reconstruct(conv)
	return []byte(RenderTranscript(msgs)), nil
}

// FileExtension returns the file extension for markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}
