// Package eval provides the static position evaluator: a phased
// (midgame/endgame) blend of material, piece-square tables, mobility,
// bishop/knight/rook pair terms, a hashed pawn-structure sub-score,
// king safety, space, knight outposts, piece-safety via static exchange
// evaluation, fork detection, pin pressure, mop-up and a cannot-castle
// penalty - grounded on the teacher engine's internal/evaluator package
// for the overall shape and the material/PSQT/mobility/pair terms, and
// supplemented, for the terms the teacher's evaluator does not have,
// from the evaluation subcategories of the engine this specification
// was distilled from.
package eval

import (
	"github.com/aharrow/plychess/internal/attacks"
	"github.com/aharrow/plychess/internal/board"
	. "github.com/aharrow/plychess/internal/types"
)

const (
	bishopPairBonus   = 30
	rookPairPenalty   = 16
	knightPairPenalty = 8
	mobilityWeight    = 2
)

// Phase returns the game-phase value of b, GamePhaseMax at the start of
// the game and 0 once every non-pawn, non-king piece has left the
// board.
func Phase(b *board.Board) int {
	phase := 0
	for _, pt := range [4]PieceKind{Knight, Bishop, Rook, Queen} {
		phase += pt.GamePhaseValue() * b.KindBb(pt).PopCount()
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// Evaluate returns a score in centipawns from the perspective of the
// side to move: positive means that side is better. The position is
// scored under a midgame term set and an endgame term set and the two
// are linearly interpolated by phase: space, king safety, king
// openness and the cannot-castle penalty only ever contribute to the
// midgame side; mop-up and a passed pawn's distance to both kings only
// ever contribute to the endgame side.
func Evaluate(b *board.Board) int {
	phase := Phase(b)

	whiteMg, whiteEg := evaluateSide(b, White)
	blackMg, blackEg := evaluateSide(b, Black)
	pawnMg, pawnEg := pawnStructure(b)

	mg := whiteMg - blackMg + pawnMg
	eg := whiteEg - blackEg + pawnEg + mopUp(b)

	score := int(interpolate(mg, eg, phase))
	if b.Side() == Black {
		score = -score
	}
	return score
}

// evaluateSide returns colour c's midgame and endgame subtotals, not
// yet interpolated and not including the pawn-structure or mop-up
// terms, which are scored once for the whole position rather than once
// per side.
func evaluateSide(b *board.Board, c Color) (mg, eg int32) {
	occ := b.Occupied()
	own := b.ColorBb(c)

	for pt := Pawn; pt <= King; pt++ {
		pieces := b.PiecesBb(c, pt)
		material := int32(pieces.PopCount() * pt.Value())
		mg += material
		eg += material
		for bb := pieces; bb != BbZero; {
			sq := bb.PopLsb()
			pmg, peg := pstValues(pt, c, sq)
			mg += pmg
			eg += peg
			if pt != Pawn && pt != King {
				mobility := int32((attacks.Of(pt, sq, occ) &^ own).PopCount() * mobilityWeight)
				mg += mobility
				eg += mobility
			}
		}
	}

	if b.PiecesBb(c, Bishop).PopCount() >= 2 {
		mg += bishopPairBonus
		eg += bishopPairBonus
	}
	if b.PiecesBb(c, Rook).PopCount() >= 2 {
		mg -= rookPairPenalty
		eg -= rookPairPenalty
	}
	if b.PiecesBb(c, Knight).PopCount() >= 2 {
		mg -= knightPairPenalty
		eg -= knightPairPenalty
	}

	outposts := knightOutposts(b, c)
	mg += outposts
	eg += outposts

	hanging := hangingPieces(b, c)
	mg += hanging
	eg += hanging

	fork := forkBonus(b, c)
	mg += fork
	eg += fork

	pin := pinPressure(b, c)
	mg += pin
	eg += pin

	mg += space(b, c)
	mg += kingSafety(b, c)
	mg += kingOpenness(b, c)
	mg += cannotCastlePenalty(b, c)

	return mg, eg
}

// chebyshevDistance returns the king-move distance between a and b.
func chebyshevDistance(a, b Square) int {
	fd := int(a.FileOf()) - int(b.FileOf())
	if fd < 0 {
		fd = -fd
	}
	rd := int(a.RankOf()) - int(b.RankOf())
	if rd < 0 {
		rd = -rd
	}
	if fd > rd {
		return fd
	}
	return rd
}

// flankAheadMask returns the two files adjacent to sq's file (never
// sq's own file, since a pawn only ever captures diagonally), masked to
// the ranks ahead of sq from colour c's point of view - the squares an
// enemy pawn would have to occupy, now or after advancing, to ever
// threaten sq.
func flankAheadMask(sq Square, c Color) Bitboard {
	file := sq.FileOf()
	var files Bitboard
	for _, f := range [2]File{file - 1, file + 1} {
		if f.IsValid() {
			files |= f.Bb()
		}
	}
	var ranksAhead Bitboard
	if c == White {
		for r := sq.RankOf() + 1; r.IsValid(); r++ {
			ranksAhead |= r.Bb()
		}
	} else {
		for r := sq.RankOf() - 1; r.IsValid(); r-- {
			ranksAhead |= r.Bb()
		}
	}
	return files & ranksAhead
}
