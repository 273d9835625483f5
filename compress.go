// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import (
	"bytes"
	"io"
)

// Compress compresses src and returns the packed stream. opts may be nil
// (default table size). Empty input yields empty output.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := CompressTo(&buf, src, opts); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CompressTo compresses src and writes the packed stream to w.
// Nothing is written for empty input.
func CompressTo(w io.Writer, src []byte, opts *CompressOptions) error {
	zw, err := NewWriter(w, opts)
	if err != nil {
		return err
	}

	if _, err := zw.Write(src); err != nil {
		_ = zw.Close()
		return err
	}

	return zw.Close()
}
