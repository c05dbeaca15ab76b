// Package movegen generates legal moves directly, without the
// generate-pseudo-legal-then-filter two-pass the teacher engine uses.
// A king-position analysis pass (checkers, double check, pin rays) runs
// once per position and the per-piece generators consult it to emit
// only legal moves, grounded on the king-position-analysis approach of
// the engine this specification was distilled from (see DESIGN.md).
package movegen

import (
	"github.com/aharrow/plychess/internal/attacks"
	"github.com/aharrow/plychess/internal/board"
	. "github.com/aharrow/plychess/internal/types"
)

// analysis summarises, for the side to move, everything the per-piece
// generators need to emit only legal moves: which squares are giving
// check, whether it is double check (only king moves are legal), the
// set of squares a non-king move must land on to resolve check, and,
// per square, the ray a pinned piece on that square is still allowed
// to move along.
type analysis struct {
	checkers    Bitboard
	doubleCheck bool
	checkMask   Bitboard // BbAll when not in check
	pinMask     [SquareCount]Bitboard
}

func analyze(b *board.Board, side Color) analysis {
	var a analysis
	for sq := range a.pinMask {
		a.pinMask[sq] = BbAll
	}

	king := b.KingSquare(side)
	opp := side.Flip()
	occ := b.Occupied()

	a.checkers |= attacks.KnightAttacks(king) & b.PiecesBb(opp, Knight)
	a.checkers |= attacks.PawnAttacks(side, king) & b.PiecesBb(opp, Pawn)
	if a.checkers.PopCount() > 1 {
		a.doubleCheck = true
	}

	diagonalRay := attacks.Of(Bishop, king, BbZero)
	orthogonalRay := attacks.Of(Rook, king, BbZero)

	diagSliders := (b.PiecesBb(opp, Bishop) | b.PiecesBb(opp, Queen)) & diagonalRay
	orthoSliders := (b.PiecesBb(opp, Rook) | b.PiecesBb(opp, Queen)) & orthogonalRay

	for sliders := diagSliders | orthoSliders; sliders != BbZero; {
		sq := sliders.PopLsb()

		between := attacks.RayBetween(king, sq)
		blockers := between & occ
		switch blockers.PopCount() {
		case 0:
			if a.checkers != BbZero {
				a.doubleCheck = true
			}
			a.checkers = a.checkers.Set(sq)
		case 1:
			blockerSq := blockers.Lsb()
			if b.ColorBb(side).Has(blockerSq) {
				a.pinMask[blockerSq] = between | sq.Bb()
			}
		}
	}

	switch a.checkers.PopCount() {
	case 0:
		a.checkMask = BbAll
	case 1:
		checkerSq := a.checkers.Lsb()
		a.checkMask = a.checkers | attacks.RayBetween(king, checkerSq)
	default:
		a.checkMask = BbZero
		a.doubleCheck = true
	}

	return a
}
