// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

// Decompress decodes a packed stream produced by Compress and returns the
// reconstructed data. Empty input yields empty output. Trailing bits that do
// not fill a whole code are ignored.
//
// The stream carries no header or checksum: input not produced by Compress
// decodes to unspecified data, or fails with ErrCorruptStream when its first
// code cannot be resolved.
func Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	// Every code takes at least initialCodeWidth bits and expands to at least one byte.
	out := make([]byte, 0, len(src)*8/initialCodeWidth)
	return newDecoder().decode(newBitReader(src), out)
}
