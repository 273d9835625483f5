package lzw

import "sync"

// codeTablePool keeps encoder dictionaries between calls so their maps can be reused.
var codeTablePool = sync.Pool{
	New: func() any {
		return &codeTable{}
	},
}

// acquireCodeTable returns a table holding only the seed entries.
func acquireCodeTable(limit int) *codeTable {
	table := codeTablePool.Get().(*codeTable)
	table.reset(limit)
	return table
}

// releaseCodeTable returns a table to the pool.
func releaseCodeTable(table *codeTable) {
	if table == nil {
		return
	}

	// Very large maps are dropped rather than pinned in the pool.
	if len(table.codes) > DefaultMaxTableSize {
		table.codes = nil
	}

	codeTablePool.Put(table)
}
