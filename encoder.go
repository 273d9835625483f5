// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

// codeEmitter receives encoder output one code at a time.
type codeEmitter interface {
	writeCode(code uint64, width uint)
}

// encoder is the greedy longest-match loop. Its state survives between
// encode calls, so input may arrive in pieces.
type encoder struct {
	table *codeTable
	width codeWidth
	out   codeEmitter

	prefix    uint32 // code of the longest matched pattern so far
	hasPrefix bool   // false until the first byte and after finish
}

func newEncoder(out codeEmitter, table *codeTable) *encoder {
	return &encoder{
		table: table,
		width: newCodeWidth(),
		out:   out,
	}
}

func (e *encoder) encode(src []byte) {
	for _, symbol := range src {
		if !e.hasPrefix {
			e.prefix = uint32(symbol)
			e.hasPrefix = true
			continue
		}

		if code, ok := e.table.lookup(e.prefix, symbol); ok {
			e.prefix = code
			continue
		}

		// The code goes out at the width in effect before the new entry is counted.
		e.out.writeCode(uint64(e.prefix), e.width.current())

		if e.table.insert(e.prefix, symbol) {
			e.width.recordGrowth()
		}

		e.prefix = uint32(symbol)
	}
}

// finish emits the pending pattern, if any.
func (e *encoder) finish() {
	if !e.hasPrefix {
		return
	}

	e.out.writeCode(uint64(e.prefix), e.width.current())
	e.hasPrefix = false
}
