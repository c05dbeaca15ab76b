package search

import (
	"time"

	. "github.com/aharrow/plychess/internal/types"
)

// Limits mirrors the parameters a UCI "go" command can carry (spec
// §5), grounded on the teacher's internal/search/limits.go.
type Limits struct {
	WTime, BTime time.Duration
	WInc, BInc   time.Duration
	MoveTime     time.Duration
	Depth        int
	Nodes        uint64
	Infinite     bool
}

// TimeBudget estimates how long the engine should spend thinking for
// side, given the limits and the game's move-count-independent
// time-control heuristic: the increment plus a tenth of the remaining
// clock (that tenth at most 15 seconds), capped so a sudden low-time
// scramble never stalls.
func (l Limits) TimeBudget(side Color) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if l.Infinite || (l.WTime == 0 && l.BTime == 0) {
		return 0
	}
	remaining, inc := l.WTime, l.WInc
	if side == Black {
		remaining, inc = l.BTime, l.BInc
	}
	budget := remaining / 10
	if budget > 15*time.Second {
		budget = 15 * time.Second
	}
	budget += inc
	if budget > remaining-100*time.Millisecond {
		budget = remaining - 100*time.Millisecond
	}
	if budget < 10*time.Millisecond {
		budget = 10 * time.Millisecond
	}
	return budget
}
