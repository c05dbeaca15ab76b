package types

import (
	"strconv"
	"strings"

	"github.com/aharrow/plychess/internal/util"
)

// Value is a centipawn-scaled evaluation or search score.
type Value int32

// Search and evaluation bounds. ValueInf is wider than any real score so
// it is safe to use as a window edge; mate scores are packed just below
// it, discounted by ply so shallower mates sort higher (spec §4.5).
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInf       Value = 32000
	ValueNone      Value = -ValueInf - 1
	ValueMate      Value = 31000
	ValueMateInMax Value = ValueMate - MaxPly
)

// IsMateScore reports whether v represents a forced mate of some depth.
func (v Value) IsMateScore() bool {
	a := util.Abs(int(v))
	return a >= int(ValueMateInMax) && a <= int(ValueMate)
}

// String renders v the way a UCI "info score" field would: "cp <n>" or
// "mate <n>".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsMateScore():
		b.WriteString("mate ")
		pliesToMate := int(ValueMate) - util.Abs(int(v))
		movesToMate := (pliesToMate + 1) / 2
		if v < 0 {
			movesToMate = -movesToMate
		}
		b.WriteString(strconv.Itoa(movesToMate))
	case v == ValueNone:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// MateIn builds the search-internal score for a mate found ply plies
// from the current node (the deeper the mate, the smaller the score).
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn builds the search-internal score for being mated ply plies
// from the current node.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}
