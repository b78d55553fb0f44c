// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// =============================================================================
// PARSE ERRORS
// =============================================================================

var (
	// ErrDecode indicates the input could not be decoded as JSON at all.
	ErrDecode = errors.New("export file is not valid JSON")

	// ErrUnexpectedFormat indicates the input is valid JSON but its
	// top-level value is not an array of conversation records.
	ErrUnexpectedFormat = errors.New("unexpected export format: top-level value is not an array")
)

// =============================================================================
// EXPORT PARSING
// =============================================================================

// ParseExport decodes a full export document. The top-level JSON value must
// be an array of conversation records; any other shape is rejected. Records
// without an id are assigned a generated one so downstream logging and
// selection always have a stable identifier.
//
// On error no partial result is returned.
func ParseExport(data []byte) ([]*Conversation, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if !json.Valid(data) {
		// Decode anyway to surface the parser's own message.
		var probe any
		err := json.Unmarshal(data, &probe)
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrUnexpectedFormat
	}

	var convs []*Conversation
	if err := json.Unmarshal(data, &convs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	out := make([]*Conversation, 0, len(convs))
	for _, conv := range convs {
		if conv == nil {
			continue
		}
		if conv.ID == "" {
			conv.ID = uuid.NewString()
		}
		out = append(out, conv)
	}
	return out, nil
}
