// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

// bitReader reads codes back from a stream produced by bitWriter.
// Bits are taken from each byte starting at its least significant bit, and
// every bit read is shifted into the low end of the code, so the first bit
// read becomes the most significant one.
type bitReader struct {
	src []byte
	pos uint64 // index of the next unread bit
}

func newBitReader(src []byte) *bitReader {
	return &bitReader{src: src}
}

// remaining returns the number of unread bits, padding included.
func (r *bitReader) remaining() uint64 {
	return uint64(len(r.src))*8 - r.pos
}

// readCode reads the next width bits. The caller ensures width <= remaining().
func (r *bitReader) readCode(width uint) uint64 {
	var code uint64
	for range width {
		bit := uint64(r.src[r.pos>>3]>>(r.pos&7)) & 1
		code = code<<1 | bit
		r.pos++
	}

	return code
}
