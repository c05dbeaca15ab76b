// Package moveslice gives the move generator and move orderer a thin,
// named wrapper around []Move instead of passing raw slices around,
// matching the style (if not the full method set) of the teacher
// engine's internal/moveslice package.
package moveslice

import (
	"sort"
	"strings"

	. "github.com/aharrow/plychess/internal/types"
)

// MoveSlice is an ordered list of moves.
type MoveSlice []Move

// New creates an empty MoveSlice with the given capacity.
func New(capacity int) MoveSlice {
	return make(MoveSlice, 0, capacity)
}

// PushBack appends m to the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// Len returns the number of moves.
func (ms MoveSlice) Len() int { return len(ms) }

// Clone returns an independent copy.
func (ms MoveSlice) Clone() MoveSlice {
	out := make(MoveSlice, len(ms))
	copy(out, ms)
	return out
}

// SortBySortValue stable-sorts the slice by descending sort value. In
// the move-ordering pipeline (spec §4.3) it runs before the TT and PV
// moves are pulled to the front.
func (ms MoveSlice) SortBySortValue() {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].SortValue() > ms[j].SortValue()
	})
}

// MoveToFront moves the first occurrence of m (compared by MoveOf, so
// any previously attached sort value is ignored) to the front of the
// slice, shifting the rest down by one. Used to splice the PV and TT
// moves to the head of the list (spec §4.3 steps 1-2).
func (ms MoveSlice) MoveToFront(m Move) {
	if m == MoveNone {
		return
	}
	target := m.MoveOf()
	for i, cand := range ms {
		if cand.MoveOf() == target {
			copy(ms[1:i+1], ms[0:i])
			ms[0] = cand
			return
		}
	}
}

// Contains reports whether m (compared by MoveOf) is present.
func (ms MoveSlice) Contains(m Move) bool {
	target := m.MoveOf()
	for _, cand := range ms {
		if cand.MoveOf() == target {
			return true
		}
	}
	return false
}

// StringUCI renders the slice as a space-separated UCI move list, as
// used in an "info ... pv" line.
func (ms MoveSlice) StringUCI() string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.StringUCI()
	}
	return strings.Join(parts, " ")
}
