// Package tt implements a fixed-size transposition table, grounded on
// the teacher engine's internal/transpositiontable package but
// simplified to a plain struct-per-slot, always-replace table rather
// than its bit-packed 16-byte entry layout.
package tt

import (
	. "github.com/aharrow/plychess/internal/types"
)

// Bound records which side of the search window a stored value is
// known to be exact about, mirroring alpha-beta's three outcomes (spec
// §4.5).
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition-table slot.
type Entry struct {
	Key   Key
	Move  Move
	Value Value
	Depth int
	Bound Bound
}

// Table is a fixed-size, power-of-two-indexed transposition table.
// Lookups mask the Zobrist key down to the table's index space and
// always replace whatever was there - no aging or depth-preferred
// replacement, which the teacher's table does have but which the
// search's single-threaded, single-generation-per-search use here does
// not need (see DESIGN.md).
type Table struct {
	entries []Entry
	mask    uint64
}

// New creates a table sized to the nearest power of two at or below
// sizeMB megabytes.
func New(sizeMB int) *Table {
	const entrySize = 40 // conservative slot cost, avoids unsafe.Sizeof
	count := (sizeMB * 1024 * 1024) / entrySize
	if count < 1024 {
		count = 1024
	}
	size := 1
	for size*2 <= count {
		size *= 2
	}
	return &Table{
		entries: make([]Entry, size),
		mask:    uint64(size - 1),
	}
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the entry stored for key and whether it was present.
func (t *Table) Probe(key Key) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.Key != key {
		return Entry{}, false
	}
	return e, true
}

// Store records an entry for key, always replacing whatever was
// previously at that slot.
func (t *Table) Store(key Key, m Move, value Value, depth int, bound Bound) {
	t.entries[t.index(key)] = Entry{Key: key, Move: m, Value: value, Depth: depth, Bound: bound}
}

// Clear empties the table, used by UCI's "ucinewgame" (spec §5).
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len returns the table's slot count.
func (t *Table) Len() int { return len(t.entries) }
