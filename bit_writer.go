// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import (
	"io"
	"math/bits"

	"github.com/pkg/errors"
)

// bitWriterBufferSize is how many packed bytes are held before they are written to the sink.
const bitWriterBufferSize = 4096

// bitWriter packs codes into a contiguous bit stream.
//
// Each code is emitted most significant bit first, and stream bits fill every
// byte from its least significant bit up. Whole bytes are buffered and written
// to the sink; the trailing partial byte is zero-padded by flush.
// Write errors are sticky: once one occurs every later call is a no-op and
// the error is reported by flush.
type bitWriter struct {
	w     io.Writer
	err   error
	bits  uint64 // pending bits, oldest at bit 0
	nbits uint   // number of pending bits; always < 8 between calls
	buf   []byte
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w, buf: make([]byte, 0, bitWriterBufferSize)}
}

// writeCode appends the low width bits of code. width must be in 1..56.
func (w *bitWriter) writeCode(code uint64, width uint) {
	if w.err != nil {
		return
	}

	// Reversing puts the most significant code bit in the lowest position,
	// so it lands first in the byte-filling order.
	w.bits |= (bits.Reverse64(code) >> (64 - width)) << w.nbits
	w.nbits += width

	for w.nbits >= 8 {
		w.buf = append(w.buf, byte(w.bits))
		w.bits >>= 8
		w.nbits -= 8
	}

	if len(w.buf) >= bitWriterBufferSize {
		w.writeBuffered()
	}
}

// flush writes every buffered byte, zero-padding the trailing partial byte.
func (w *bitWriter) flush() error {
	if w.err != nil {
		return w.err
	}

	if w.nbits > 0 {
		w.buf = append(w.buf, byte(w.bits))
		w.bits = 0
		w.nbits = 0
	}

	w.writeBuffered()
	return w.err
}

func (w *bitWriter) writeBuffered() {
	if len(w.buf) == 0 {
		return
	}

	if _, err := w.w.Write(w.buf); err != nil {
		w.err = errors.Wrap(err, "write packed stream")
	}

	w.buf = w.buf[:0]
}
