package eval

import (
	"github.com/aharrow/plychess/internal/attacks"
	"github.com/aharrow/plychess/internal/board"
	. "github.com/aharrow/plychess/internal/types"
)

const (
	knightOutpostBonus  = 20
	spaceScale          = 16
	hangingPieceDivisor = 3
	forkDivisor         = 4 // matches 3/4 of the least valuable forked piece's value
	pinPressureDivisor  = 8
)

// knightOutposts counts colour c's knights standing on ranks 4-6 as seen
// from c's side, defended by a friendly pawn, on a square no enemy pawn can ever drive
// them from.
func knightOutposts(b *board.Board, c Color) int32 {
	opp := c.Flip()
	ownPawns := b.PiecesBb(c, Pawn)
	oppPawns := b.PiecesBb(opp, Pawn)

	count := 0
	for knights := b.PiecesBb(c, Knight); knights != BbZero; {
		sq := knights.PopLsb()
		if !inOutpostRanks(sq, c) {
			continue
		}
		if attacks.PawnAttacks(opp, sq)&ownPawns == BbZero {
			continue
		}
		if oppPawns&flankAheadMask(sq, c) != BbZero {
			continue
		}
		count++
	}
	return int32(count * knightOutpostBonus)
}

func inOutpostRanks(sq Square, c Color) bool {
	r := sq.RankOf()
	if c == Black {
		r = Rank(7 - int(r))
	}
	return r >= Rank4 && r <= Rank6
}

// space scores the squares colour c controls in its own half of the
// centre: a safe square (not attacked by an enemy pawn) counts for
// more the more pieces c still has on the board and the fewer files c
// has already opened. Midgame-only.
func space(b *board.Board, c Color) int32 {
	opp := c.Flip()
	ownPawns := b.PiecesBb(c, Pawn)
	area := spaceArea(c) &^ ownPawns

	count := 0
	for bb := area; bb != BbZero; {
		sq := bb.PopLsb()
		if attacks.PawnAttacks(c, sq)&b.PiecesBb(opp, Pawn) == BbZero {
			count++
		}
	}

	openFiles := 0
	for f := FileA; f <= FileH; f++ {
		if ownPawns&f.Bb() == BbZero {
			openFiles++
		}
	}
	weight := b.ColorBb(c).PopCount() + 1 - 2*openFiles
	if weight < 1 {
		weight = 1
	}
	return int32(count*weight*weight) / spaceScale
}

func spaceArea(c Color) Bitboard {
	files := FileC.Bb() | FileD.Bb() | FileE.Bb() | FileF.Bb()
	if c == White {
		return files & (Rank2.Bb() | Rank3.Bb() | Rank4.Bb())
	}
	return files & (Rank7.Bb() | Rank6.Bb() | Rank5.Bb())
}

// hangingPieces penalises colour c's pieces that an enemy piece could
// win material by capturing, using static exchange evaluation against
// the least valuable attacker rather than a plain attacked/defended
// count.
func hangingPieces(b *board.Board, c Color) int32 {
	opp := c.Flip()
	occ := b.Occupied()

	score := int32(0)
	for pt := Pawn; pt < King; pt++ {
		for pieces := b.PiecesBb(c, pt); pieces != BbZero; {
			sq := pieces.PopLsb()
			attackers := b.AttackersTo(sq, occ) & b.ColorBb(opp)
			if attackers == BbZero {
				continue
			}
			attackerSq, _ := leastValuableAttacker(b, attackers, opp)
			if attackerSq == SqNone {
				continue
			}
			loss := SEE(b, NewMove(attackerSq, sq, FlagCapture))
			if loss > 0 {
				score -= int32(loss) / hangingPieceDivisor
			}
		}
	}
	return score
}

// forkBonus rewards a colour c pawn or knight that attacks two or more
// enemy pieces at once, weighted by the least valuable piece forked.
func forkBonus(b *board.Board, c Color) int32 {
	opp := c.Flip()
	oppOcc := b.ColorBb(opp)

	score := int32(0)
	for pawns := b.PiecesBb(c, Pawn); pawns != BbZero; {
		sq := pawns.PopLsb()
		targets := attacks.PawnAttacks(c, sq) & oppOcc
		score += forkValue(b, targets)
	}
	for knights := b.PiecesBb(c, Knight); knights != BbZero; {
		sq := knights.PopLsb()
		targets := attacks.KnightAttacks(sq) & oppOcc
		score += forkValue(b, targets)
	}
	return score
}

func forkValue(b *board.Board, targets Bitboard) int32 {
	if targets.PopCount() < 2 {
		return 0
	}
	least := -1
	for bb := targets; bb != BbZero; {
		sq := bb.PopLsb()
		v := b.PieceAt(sq).KindOf().Value()
		if least < 0 || v < least {
			least = v
		}
	}
	return int32(least * 3 / forkDivisor)
}

// pinPressure penalises colour c for each of its own pieces absolutely
// pinned to its king by an enemy slider: a pinned piece cannot move
// without exposing check, so the side holding the pin has effective
// pressure on it. Uses the same ray-between, single-blocker pin test as
// the move generator's legality pass, duplicated here to keep this
// package free of a dependency on movegen.
func pinPressure(b *board.Board, c Color) int32 {
	opp := c.Flip()
	king := b.KingSquare(c)
	occ := b.Occupied()
	own := b.ColorBb(c)

	diagSliders := (b.PiecesBb(opp, Bishop) | b.PiecesBb(opp, Queen)) & attacks.Of(Bishop, king, BbZero)
	orthoSliders := (b.PiecesBb(opp, Rook) | b.PiecesBb(opp, Queen)) & attacks.Of(Rook, king, BbZero)

	score := int32(0)
	for sliders := diagSliders | orthoSliders; sliders != BbZero; {
		sq := sliders.PopLsb()
		between := attacks.RayBetween(king, sq)
		blockers := between & occ
		if blockers.PopCount() != 1 {
			continue
		}
		pinned := blockers.Lsb()
		if !own.Has(pinned) {
			continue
		}
		score -= int32(b.PieceAt(pinned).KindOf().Value()) / pinPressureDivisor
	}
	return score
}

// mopUp rewards driving the losing side's king to the edge of the
// board and the winning side's king towards it, active only once one
// side holds more rooks and queens than the other. Endgame-only.
func mopUp(b *board.Board) int32 {
	majors := b.KindBb(Rook) | b.KindBb(Queen)
	whiteMajors := (majors & b.ColorBb(White)).PopCount()
	blackMajors := (majors & b.ColorBb(Black)).PopCount()

	switch {
	case whiteMajors > blackMajors:
		return int32(mopUpScore(b.KingSquare(Black), b.KingSquare(White)))
	case blackMajors > whiteMajors:
		return -int32(mopUpScore(b.KingSquare(White), b.KingSquare(Black)))
	default:
		return 0
	}
}

func mopUpScore(weakKing, strongKing Square) int {
	return 4*distanceToCenter(weakKing) + 2*(14-chebyshevDistance(weakKing, strongKing))
}

// distanceToCenter returns the king-move distance from sq to the
// nearest of the four centre squares.
func distanceToCenter(sq Square) int {
	fd := minInt(absInt(int(sq.FileOf())-3), absInt(int(sq.FileOf())-4))
	rd := minInt(absInt(int(sq.RankOf())-3), absInt(int(sq.RankOf())-4))
	if fd > rd {
		return fd
	}
	return rd
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
