// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

// codeTable is the encoder dictionary: pattern -> code.
//
// A pattern longer than one byte is keyed by the code of its prefix and its
// last byte. Every admitted pattern extends one that is already present, so
// this is equivalent to keying by the whole pattern. Single-byte patterns are
// the seed entries and are implicit: the code of byte b is b.
type codeTable struct {
	codes map[uint64]uint32 // (prefix code << 8 | last byte) -> code
	next  uint32            // next code to assign; also the entry count
	limit int               // entry cap, seed entries included
}

func newCodeTable(limit int) *codeTable {
	t := &codeTable{}
	t.reset(limit)
	return t
}

// reset drops every learned pattern and leaves only the seed entries.
func (t *codeTable) reset(limit int) {
	if t.codes == nil {
		t.codes = make(map[uint64]uint32)
	} else {
		clear(t.codes)
	}

	t.next = firstFreeCode
	t.limit = limit
}

func codeTableKey(prefix uint32, symbol byte) uint64 {
	return uint64(prefix)<<8 | uint64(symbol)
}

// lookup returns the code of the pattern formed by the prefix pattern and symbol.
func (t *codeTable) lookup(prefix uint32, symbol byte) (uint32, bool) {
	code, ok := t.codes[codeTableKey(prefix, symbol)]
	return code, ok
}

// insert binds the pattern prefix+symbol to the next sequential code.
// It reports false, leaving the table unchanged, once the table holds limit entries.
func (t *codeTable) insert(prefix uint32, symbol byte) bool {
	if t.len() >= t.limit {
		return false
	}

	t.codes[codeTableKey(prefix, symbol)] = t.next
	t.next++
	return true
}

// len returns the number of entries, seed entries included.
func (t *codeTable) len() int {
	return int(t.next)
}

// patternTable is the decoder dictionary: code -> pattern.
// Insertion is never capped. Codes are not required to be contiguous, so
// a stream that references an arbitrary unknown code can still be bound.
type patternTable struct {
	patterns map[uint64][]byte
	next     uint64 // next sequential code for add
}

func newPatternTable() *patternTable {
	t := &patternTable{
		patterns: make(map[uint64][]byte, seedTableSize),
		next:     firstFreeCode,
	}

	for b := range seedTableSize {
		t.patterns[uint64(b)] = []byte{byte(b)}
	}

	return t
}

func (t *patternTable) lookup(code uint64) ([]byte, bool) {
	p, ok := t.patterns[code]
	return p, ok
}

// bind stores pattern under code, replacing any previous binding.
func (t *patternTable) bind(code uint64, pattern []byte) {
	t.patterns[code] = pattern
}

// add stores pattern under the next sequential code and advances it.
func (t *patternTable) add(pattern []byte) {
	t.patterns[t.next] = pattern
	t.next++
}

// extendPattern returns a new slice holding pattern followed by symbol.
// Stored patterns are shared by reference and must never be appended to in place.
func extendPattern(pattern []byte, symbol byte) []byte {
	out := make([]byte, len(pattern)+1)
	copy(out, pattern)
	out[len(pattern)] = symbol
	return out
}
