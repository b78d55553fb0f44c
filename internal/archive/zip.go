// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package archive

import (
	"bytes"
)

// =============================================================================
// ENTRY TYPE
// =============================================================================

// Entry is one named file to place in the archive. Entries are transient:
// the builder owns them only for the duration of one Build call.
type Entry struct {
	Name string
	Data []byte
}

// =============================================================================
// ZIP FORMAT CONSTANTS
// =============================================================================

const (
	sigLocalFile  = 0x04034b50
	sigCentralDir = 0x02014b50
	sigEndOfDir   = 0x06054b50

	// Version 2.0: the minimum that supports the store method.
	zipVersion = 20

	// Method 0: stored, no compression.
	methodStore = 0
)

// =============================================================================
// ARCHIVE BUILDER
// =============================================================================

// Build serializes entries into a single uncompressed ZIP archive. The
// output is fully assembled in memory and deterministic for a given entry
// list: fixed version/flag/method/date-time fields, entries in input order.
//
// The layout is two-pass by necessity: central directory records reference
// the byte offset of each local record, which is only known once all prior
// entries have been serialized. Local records are emitted first while the
// running offsets are recorded, then the central directory, then the end
// record.
func Build(entries []Entry) []byte {
	var buf bytes.Buffer
	offsets := make([]uint32, len(entries))
	crcs := make([]uint32, len(entries))

	// Pass 1: local file records, tracking the start offset of each.
	for i, e := range entries {
		offsets[i] = uint32(buf.Len())
		crcs[i] = Checksum(e.Data)

		writeU32(&buf, sigLocalFile)
		writeU16(&buf, zipVersion)   // version needed to extract
		writeU16(&buf, 0)            // general purpose flags
		writeU16(&buf, methodStore)  // compression method
		writeU16(&buf, 0)            // mod time
		writeU16(&buf, 0)            // mod date
		writeU32(&buf, crcs[i])
		writeU32(&buf, uint32(len(e.Data))) // compressed size
		writeU32(&buf, uint32(len(e.Data))) // uncompressed size
		writeU16(&buf, uint16(len(e.Name)))
		writeU16(&buf, 0) // extra field length
		buf.WriteString(e.Name)
		buf.Write(e.Data)
	}

	// Pass 2: central directory referencing the recorded offsets.
	dirStart := uint32(buf.Len())
	for i, e := range entries {
		writeU32(&buf, sigCentralDir)
		writeU16(&buf, zipVersion)  // version made by
		writeU16(&buf, zipVersion)  // version needed to extract
		writeU16(&buf, 0)           // general purpose flags
		writeU16(&buf, methodStore) // compression method
		writeU16(&buf, 0)           // mod time
		writeU16(&buf, 0)           // mod date
		writeU32(&buf, crcs[i])
		writeU32(&buf, uint32(len(e.Data))) // compressed size
		writeU32(&buf, uint32(len(e.Data))) // uncompressed size
		writeU16(&buf, uint16(len(e.Name)))
		writeU16(&buf, 0) // extra field length
		writeU16(&buf, 0) // comment length
		writeU16(&buf, 0) // disk number start
		writeU16(&buf, 0) // internal attributes
		writeU32(&buf, 0) // external attributes
		writeU32(&buf, offsets[i])
		buf.WriteString(e.Name)
	}
	dirSize := uint32(buf.Len()) - dirStart

	// End of central directory.
	writeU32(&buf, sigEndOfDir)
	writeU16(&buf, 0) // disk number
	writeU16(&buf, 0) // disk with central directory
	writeU16(&buf, uint16(len(entries))) // entries on this disk
	writeU16(&buf, uint16(len(entries))) // entries total
	writeU32(&buf, dirSize)
	writeU32(&buf, dirStart)
	writeU16(&buf, 0) // comment length

	return buf.Bytes()
}

// =============================================================================
// LITTLE-ENDIAN HELPERS
// =============================================================================

func writeU16(buf *bytes.Buffer, v uint16) {
	buf.Write([]byte{byte(v), byte(v >> 8)})
}

func writeU32(buf *bytes.Buffer, v uint32) {
	buf.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}
