// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

// codeWidth tracks the bit width of codes on one side of the stream.
// The width starts at initialCodeWidth and only grows: each recorded entry
// bumps a counter that starts at the seed table size, and the width
// increases by one whenever the counter reaches 2^width.
type codeWidth struct {
	width   uint
	entries uint64
}

func newCodeWidth() codeWidth {
	return codeWidth{width: initialCodeWidth, entries: seedTableSize}
}

func (c *codeWidth) current() uint {
	return c.width
}

// recordGrowth counts one more entry and widens codes when the count fills the current width.
func (c *codeWidth) recordGrowth() {
	c.entries++
	if c.entries >= uint64(1)<<c.width {
		c.width++
	}
}
