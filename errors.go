// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import "github.com/pkg/errors"

// Sentinel errors for compression and decompression.
// Returned errors may carry extra context; compare with errors.Is.
var (
	// ErrInvalidTableSize is returned when CompressOptions.MaxTableSize is negative.
	ErrInvalidTableSize = errors.New("invalid table size")
	// ErrTableSizeTooLarge is returned when CompressOptions.MaxTableSize exceeds MaxTableSizeLimit.
	ErrTableSizeTooLarge = errors.New("table size exceeds MaxTableSizeLimit")
	// ErrNilWriter is returned when the compression sink is nil.
	ErrNilWriter = errors.New("nil writer")
	// ErrWriterClosed is returned by Writer.Write and Writer.Close after Close.
	ErrWriterClosed = errors.New("writer closed")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrCorruptStream is returned when the first code of a stream is not a
	// seed code, so there is no previous pattern to rebuild it from.
	// Streams produced by this package never trigger it.
	ErrCorruptStream = errors.New("corrupt stream")
)
