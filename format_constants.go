// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

// Stream and dictionary parameters shared by the encoder and the decoder.

// Seed dictionary: every byte value is bound to its own code.
const (
	seedTableSize = 256 // codes 0..255 are the single-byte patterns
	firstFreeCode = seedTableSize
)

// Code width bounds.
const (
	initialCodeWidth = 9 // addresses the seed entries plus the first free code
)

// Dictionary size limits for the encoder.
const (
	// DefaultMaxTableSize is the encoder dictionary cap used when no size is configured.
	DefaultMaxTableSize = 10_000

	// MaxTableSizeLimit is the largest accepted MaxTableSize. It keeps every
	// encoder code within 31 bits.
	MaxTableSizeLimit = 1 << 30
)
