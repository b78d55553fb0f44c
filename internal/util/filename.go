// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// FILENAME SANITIZATION
// =============================================================================

// maxFilenameRunes bounds sanitized names so full artifact filenames stay
// inside common filesystem limits once the timestamp prefix and extension
// are added.
const maxFilenameRunes = 80

// fallbackFilename is used when a title sanitizes down to nothing.
const fallbackFilename = "untitled_conversation"

// SanitizeFilename converts an arbitrary conversation title into a portable
// filename fragment. The input is NFC-normalized, every rune outside
// [0-9A-Za-z_-] and the CJK range U+4E00..U+9FA5 becomes an underscore, and
// the result is truncated to 80 runes.
//
// The operation is idempotent: sanitizing an already-sanitized string
// returns it unchanged.
func SanitizeFilename(title string) string {
	title = norm.NFC.String(title)

	var sb strings.Builder
	sb.Grow(len(title))
	count := 0
	for _, r := range title {
		if count == maxFilenameRunes {
			break
		}
		if allowedFilenameRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
		count++
	}

	if sb.Len() == 0 {
		return fallbackFilename
	}
	return sb.String()
}

// allowedFilenameRune reports whether r may appear in a sanitized filename.
func allowedFilenameRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r == '_' || r == '-':
		return true
	case r >= 0x4E00 && r <= 0x9FA5:
		// Unified CJK ideographs are kept so common Chinese titles
		// survive sanitization.
		return true
	}
	return false
}
