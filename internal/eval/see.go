package eval

import (
	"github.com/aharrow/plychess/internal/board"
	. "github.com/aharrow/plychess/internal/types"
)

// SEE performs a static exchange evaluation of capture m: it walks the
// sequence of recaptures on m.To(), least-valuable-attacker first, and
// returns the net material gain for the side making m, bounded to
// [-value(attacker), value(victim)] (spec §8). A quiet move scores
// zero. An en-passant capture, whose captured pawn is not on the
// destination square, takes a pawn as its victim; from there every
// capture, en passant and promotions included, goes through the same
// swap below.
func SEE(b *board.Board, m Move) int {
	to := m.To()
	from := m.From()

	var victimValue int
	switch {
	case m.Flag() == FlagEnPassant:
		victimValue = Pawn.Value()
	case b.PieceAt(to).IsNone():
		return 0
	default:
		victimValue = b.PieceAt(to).KindOf().Value()
	}

	attackerKind := b.PieceAt(from).KindOf()
	if m.Flag().IsPromotion() {
		attackerKind = m.Flag().PromotedTo()
	}

	occ := b.Occupied().Clear(from)
	side := b.PieceAt(from).ColorOf().Flip()

	gains := []int{victimValue}
	attackerValue := attackerKind.Value()

	for {
		attackers := b.AttackersTo(to, occ) & occ
		attackers &= colorOccupancy(b, side, occ)
		if attackers == BbZero {
			break
		}
		nextSq, nextKind := leastValuableAttacker(b, attackers, side)
		if nextSq == SqNone {
			break
		}
		gains = append(gains, attackerValue-gains[len(gains)-1])
		attackerValue = nextKind.Value()
		occ = occ.Clear(nextSq)
		side = side.Flip()
	}

	for i := len(gains) - 2; i >= 0; i-- {
		if -gains[i+1] < gains[i] {
			gains[i] = -gains[i+1]
		}
	}
	return gains[0]
}

// colorOccupancy approximates board.Board.ColorBb under a shrunken
// occupancy by masking the live colour bitboard with what is still on
// the board - pieces are only ever removed during the SEE swap, never
// added, so no piece changes colour mid-walk.
func colorOccupancy(b *board.Board, c Color, occ Bitboard) Bitboard {
	return b.ColorBb(c) & occ
}

func leastValuableAttacker(b *board.Board, attackers Bitboard, side Color) (Square, PieceKind) {
	for pt := Pawn; pt <= King; pt++ {
		bb := attackers & b.PiecesBb(side, pt)
		if bb != BbZero {
			return bb.Lsb(), pt
		}
	}
	return SqNone, NoPieceKind
}
