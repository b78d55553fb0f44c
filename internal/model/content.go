// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"

	"github.com/tidwall/gjson"
)

// =============================================================================
// CONTENT EXTRACTION
// =============================================================================

// partSeparator joins the surviving parts of a multi-part payload.
const partSeparator = "\n\n"

// ExtractText flattens a message's content into plain text. Export files
// carry several historical content shapes; the checks below run in a fixed
// order because a payload can satisfy more than one of them (an object may
// have both a parts array and a text field), and the legacy shape wins.
//
//  1. object with a "parts" array: join the entries, rendering non-string
//     entries as their raw JSON text
//  2. array of typed parts: keep only parts tagged "text", reading the text
//     either directly or from a nested value field; everything else is
//     dropped silently
//  3. object with a string "text" field: that string
//  4. a bare string: the string itself
//  5. anything else: empty text
//
// ExtractText never fails; unrecognized structure degrades to "".
func ExtractText(msg *Message) string {
	if msg == nil || len(msg.Content) == 0 {
		return ""
	}
	content := gjson.ParseBytes(msg.Content)

	if parts := content.Get("parts"); parts.IsArray() {
		return joinParts(parts)
	}
	if content.IsArray() {
		return joinTypedParts(content)
	}
	if text := content.Get("text"); text.Type == gjson.String {
		return text.Str
	}
	if content.Type == gjson.String {
		return content.Str
	}
	return ""
}

// joinParts flattens a legacy parts array. Non-string entries are rendered
// as raw JSON rather than dropped; this shape predates typed parts and its
// entries are expected to be string-like.
func joinParts(parts gjson.Result) string {
	var out []string
	parts.ForEach(func(_, part gjson.Result) bool {
		if part.Type == gjson.String {
			out = append(out, part.Str)
		} else {
			out = append(out, part.Raw)
		}
		return true
	})
	return strings.Join(out, partSeparator)
}

// joinTypedParts flattens a typed-parts array, keeping text parts only.
// The text lives either directly under "text" or nested under "text.value"
// depending on export vintage.
func joinTypedParts(parts gjson.Result) string {
	var out []string
	parts.ForEach(func(_, part gjson.Result) bool {
		if part.Get("type").Str != "text" {
			return true
		}
		text := part.Get("text")
		switch {
		case text.Type == gjson.String:
			out = append(out, text.Str)
		case text.Get("value").Type == gjson.String:
			out = append(out, text.Get("value").Str)
		}
		return true
	})
	return strings.Join(out, partSeparator)
}
