// Package moveorder scores and sorts the moves the move generator
// produces so that alpha-beta search examines the most promising moves
// first: the principal-variation move, the transposition-table move,
// killer moves, captures by static-exchange value (MVV-LVA with an SEE
// tiebreak), then quiet moves by history heuristic, grounded on the
// teacher engine's internal/history package and its move-sorting pass
// in internal/movegen.
package moveorder

import (
	"github.com/aharrow/plychess/internal/board"
	"github.com/aharrow/plychess/internal/eval"
	"github.com/aharrow/plychess/internal/moveslice"
	. "github.com/aharrow/plychess/internal/types"
)

const killersPerPly = 2

// History accumulates a "this move has been good before" signal across
// a search, indexed by side, from-square and to-square, plus one
// counter-move slot per (from, to) pair - the same shape as the
// teacher's History type, generalised to this engine's Move encoding.
type History struct {
	counts       [ColorLength][SquareCount][SquareCount]int64
	counterMoves [SquareCount][SquareCount]Move
	killers      [MaxPly][killersPerPly]Move
}

// NewHistory returns an empty history table.
func NewHistory() *History {
	return &History{}
}

// Update rewards a quiet move that caused a beta cutoff at the given
// depth and records it as a killer for ply.
func (h *History) Update(side Color, m Move, depth int, ply int, prev Move) {
	from, to := m.From(), m.To()
	h.counts[side][from][to] += int64(depth) * int64(depth)
	if h.killers[ply][0].MoveOf() != m.MoveOf() {
		h.killers[ply][1] = h.killers[ply][0]
		h.killers[ply][0] = m.MoveOf()
	}
	if prev != MoveNone {
		h.counterMoves[prev.From()][prev.To()] = m.MoveOf()
	}
}

// Order scores every move in ms in place and sorts it, most promising
// first. pvMove and ttMove (either may be MoveNone) are pulled to the
// very front in that order; everything else is scored by capture value
// or history count.
func Order(b board.Board, ms moveslice.MoveSlice, h *History, ply int, pvMove, ttMove, prevMove Move) {
	side := b.Side()
	for i, m := range ms {
		ms[i] = m.WithSortValue(score(b, side, m, h, ply, prevMove))
	}
	ms.SortBySortValue()
	ms.MoveToFront(ttMove)
	ms.MoveToFront(pvMove)
}

func score(b board.Board, side Color, m Move, h *History, ply int, prevMove Move) int32 {
	const (
		captureBase  = 1_000_000
		killerBase   = 900_000
		counterBonus = 1
	)

	flag := m.Flag()
	if flag.IsCapture() {
		victim := b.PieceAt(m.To())
		attacker := b.PieceAt(m.From())
		victimValue := victim.KindOf().Value()
		if flag == FlagEnPassant {
			victimValue = Pawn.Value()
		}
		see := eval.SEE(&b, m)
		return int32(captureBase + victimValue*16 - attacker.KindOf().Value() + see)
	}
	if flag.IsPromotion() {
		return int32(captureBase + flag.PromotedTo().Value())
	}
	if ply < MaxPly {
		if h.killers[ply][0].MoveOf() == m.MoveOf() {
			return killerBase + 1
		}
		if h.killers[ply][1].MoveOf() == m.MoveOf() {
			return killerBase
		}
	}
	bonus := int32(0)
	if prevMove != MoveNone && h.counterMoves[prevMove.From()][prevMove.To()] == m.MoveOf() {
		bonus = counterBonus
	}
	return int32(h.counts[side][m.From()][m.To()]) + bonus
}
