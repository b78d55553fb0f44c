// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package archive

// =============================================================================
// CRC-32 ENGINE
// =============================================================================

// crcPoly is the reflected CRC-32 polynomial used by the ZIP format
// (ISO 3309 / ITU-T V.42).
const crcPoly = 0xEDB88320

// crcTable is the precomputed 256-entry lookup table for byte-wise CRC-32.
var crcTable [256]uint32

func init() {
	for i := range crcTable {
		crc := uint32(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crcPoly
			} else {
				crc >>= 1
			}
		}
		crcTable[i] = crc
	}
}

// Checksum computes the zip-standard CRC-32 of data: table-driven,
// byte-wise, register initialized to 0xFFFFFFFF and inverted at the end.
func Checksum(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc = crcTable[byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}
