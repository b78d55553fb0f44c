// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
)

func msgWithContent(raw string) *Message {
	return &Message{
		Author:  Author{Role: RoleUser},
		Content: json.RawMessage(raw),
	}
}

// =============================================================================
// CONTENT EXTRACTION TESTS
// =============================================================================

func TestExtractText_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "parts list",
			content: `{"parts":["first","second"]}`,
			want:    "first\n\nsecond",
		},
		{
			name:    "parts list single entry",
			content: `{"parts":["only"]}`,
			want:    "only",
		},
		{
			name:    "parts list stringifies non-strings",
			content: `{"parts":["text",42]}`,
			want:    "text\n\n42",
		},
		{
			name:    "parts list empty",
			content: `{"parts":[]}`,
			want:    "",
		},
		{
			name:    "typed parts keep text only",
			content: `[{"type":"text","text":"hello"},{"type":"image","url":"x.png"},{"type":"text","text":"world"}]`,
			want:    "hello\n\nworld",
		},
		{
			name:    "typed parts nested value",
			content: `[{"type":"text","text":{"value":"nested"}}]`,
			want:    "nested",
		},
		{
			name:    "typed parts nothing textual",
			content: `[{"type":"image","url":"x.png"},{"type":"audio"}]`,
			want:    "",
		},
		{
			name:    "plain text field",
			content: `{"text":"direct"}`,
			want:    "direct",
		},
		{
			name:    "raw string",
			content: `"just a string"`,
			want:    "just a string",
		},
		{
			name:    "unrecognized object",
			content: `{"tool_calls":[{"name":"search"}]}`,
			want:    "",
		},
		{
			name:    "number",
			content: `42`,
			want:    "",
		},
		{
			name:    "null",
			content: `null`,
			want:    "",
		},
		{
			// A payload with both a parts array and a text field must
			// resolve via the parts array: the legacy shape wins.
			name:    "precedence parts over text",
			content: `{"parts":["from parts"],"text":"from text"}`,
			want:    "from parts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractText(msgWithContent(tt.content))
			if got != tt.want {
				t.Errorf("ExtractText(%s) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestExtractText_Total(t *testing.T) {
	// Never panics, never errors: nil message, empty content, and
	// arbitrary structure all degrade to a string.
	if got := ExtractText(nil); got != "" {
		t.Errorf("nil message: got %q", got)
	}
	if got := ExtractText(&Message{}); got != "" {
		t.Errorf("empty content: got %q", got)
	}
	if got := ExtractText(msgWithContent(`{"a":{"b":[{"c":1}]}}`)); got != "" {
		t.Errorf("deep structure: got %q", got)
	}
}
