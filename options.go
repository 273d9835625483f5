// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import "github.com/pkg/errors"

// CompressOptions configures compression.
type CompressOptions struct {
	// MaxTableSize caps the encoder dictionary, seed entries included
	// (0 = DefaultMaxTableSize). Values up to 256 disable dictionary growth.
	// The decoder table is not capped, so streams whose encoder hit the cap
	// may not decode back to the input.
	MaxTableSize int
}

// DefaultCompressOptions returns options with the default dictionary cap.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{MaxTableSize: DefaultMaxTableSize}
}

// tableSize resolves the configured cap. opts may be nil.
func (o *CompressOptions) tableSize() (int, error) {
	if o == nil || o.MaxTableSize == 0 {
		return DefaultMaxTableSize, nil
	}

	switch {
	case o.MaxTableSize < 0:
		return 0, errors.Wrapf(ErrInvalidTableSize, "MaxTableSize=%d", o.MaxTableSize)
	case o.MaxTableSize > MaxTableSizeLimit:
		return 0, errors.Wrapf(ErrTableSizeTooLarge, "MaxTableSize=%d", o.MaxTableSize)
	}

	return o.MaxTableSize, nil
}

// DecompressOptions configures DecompressFromReader.
type DecompressOptions struct {
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no input limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
