// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import "github.com/pkg/errors"

// codeSource supplies packed codes to the decoder.
type codeSource interface {
	remaining() uint64
	readCode(width uint) uint64
}

// decoder rebuilds the input from packed codes, growing its own dictionary
// from what it has already decoded.
//
// Its width counter advances once per decoded code and its table has no cap.
// The encoder advances only on admitted entries, so the two stay in step only
// while the encoder dictionary is below its cap.
type decoder struct {
	table   *patternTable
	width   codeWidth
	pattern []byte // previously decoded pattern
}

func newDecoder() *decoder {
	return &decoder{
		table: newPatternTable(),
		width: newCodeWidth(),
	}
}

// decode reads codes until fewer bits than the current width remain.
// The leftover bits are padding (or a truncated code) and are dropped.
func (d *decoder) decode(in codeSource, out []byte) ([]byte, error) {
	for in.remaining() >= uint64(d.width.current()) {
		code := in.readCode(d.width.current())

		entry, ok := d.table.lookup(code)
		if !ok {
			// A code may be used by the encoder in the same step that defines it;
			// the entry is then the previous pattern plus its own first byte.
			if len(d.pattern) == 0 {
				return out, errors.Wrapf(ErrCorruptStream, "code %d with no previous pattern", code)
			}

			entry = extendPattern(d.pattern, d.pattern[0])
			d.table.bind(code, entry)
		}

		out = append(out, entry...)

		if len(d.pattern) > 0 {
			d.table.add(extendPattern(d.pattern, entry[0]))
		}

		d.pattern = entry
		d.width.recordGrowth()
	}

	return out, nil
}
