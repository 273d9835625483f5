// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import (
	"io"

	"github.com/pkg/errors"
)

// Writer is a streaming compressor. Data passed to Write is encoded as it
// arrives; whole packed bytes are written to the underlying writer in chunks.
// Close must be called to emit the last pattern and the padded final byte.
// A Writer is not safe for concurrent use.
type Writer struct {
	bw     *bitWriter
	enc    *encoder
	closed bool
}

// NewWriter returns a Writer compressing into w. opts may be nil (default table size).
func NewWriter(w io.Writer, opts *CompressOptions) (*Writer, error) {
	if w == nil {
		return nil, errors.WithStack(ErrNilWriter)
	}

	limit, err := opts.tableSize()
	if err != nil {
		return nil, err
	}

	bw := newBitWriter(w)
	return &Writer{
		bw:  bw,
		enc: newEncoder(bw, acquireCodeTable(limit)),
	}, nil
}

// Write encodes p. Packed bytes may be held back until a later Write or Close.
func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, errors.WithStack(ErrWriterClosed)
	}

	if z.bw.err != nil {
		return 0, z.bw.err
	}

	z.enc.encode(p)
	if z.bw.err != nil {
		return 0, z.bw.err
	}

	return len(p), nil
}

// Close flushes the pending pattern and the final padded byte. It does not
// close the underlying writer.
func (z *Writer) Close() error {
	if z.closed {
		return errors.WithStack(ErrWriterClosed)
	}

	z.closed = true
	z.enc.finish()
	err := z.bw.flush()

	releaseCodeTable(z.enc.table)
	z.enc.table = nil

	return err
}
