package eval

import (
	"github.com/aharrow/plychess/internal/attacks"
	"github.com/aharrow/plychess/internal/board"
	. "github.com/aharrow/plychess/internal/types"
)

const (
	kingOpennessWeight          = 3
	cannotCastlePenaltyPerRight = 5
)

// kingSafetyTable turns a capped attacker-weight sum into a centipawn
// penalty; the curve rises slowly at first and steeply once several
// attackers pile up in the same neighbourhood, since a king facing
// three attackers is far more than three times as unsafe as one facing
// a single attacker.
var kingSafetyTable = [100]int32{
	0, 0, 1, 2, 3, 5, 7, 9, 12, 15, 18, 22, 26, 30, 35, 39, 44, 50, 56, 62,
	68, 75, 82, 85, 89, 97, 105, 113, 122, 131, 140, 150, 169, 180, 191, 202, 213, 225, 237, 248,
	260, 272, 283, 295, 307, 319, 330, 342, 354, 366, 377, 389, 401, 412, 424, 436, 448, 459, 471, 483,
	494, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
}

// kingSafety scores the attacker pressure on colour c's king
// neighbourhood: every enemy piece attacking a square around the king
// contributes a weight (pawns, knights and bishops count for 2, rooks
// for 3, queens for 5), and the total is run through a nonlinear table rather
// than scored linearly.
func kingSafety(b *board.Board, c Color) int32 {
	opp := c.Flip()
	occ := b.Occupied()
	king := b.KingSquare(c)

	weight := 0
	for ring := attacks.KingAttacks(king); ring != BbZero; {
		sq := ring.PopLsb()
		attackers := b.AttackersTo(sq, occ) & b.ColorBb(opp)
		weight += 2 * (attackers & b.KindBb(Pawn)).PopCount()
		weight += 2 * (attackers & b.KindBb(Knight)).PopCount()
		weight += 2 * (attackers & b.KindBb(Bishop)).PopCount()
		weight += 3 * (attackers & b.KindBb(Rook)).PopCount()
		weight += 5 * (attackers & b.KindBb(Queen)).PopCount()
	}
	if weight >= len(kingSafetyTable) {
		weight = len(kingSafetyTable) - 1
	}
	return -kingSafetyTable[weight]
}

// kingOpenness penalises a king standing on squares a queen could reach
// far across the board: the mobility of a phantom queen placed on the
// king's own square - the fewer the blockers, the more exposed the king.
func kingOpenness(b *board.Board, c Color) int32 {
	king := b.KingSquare(c)
	mobility := (attacks.Of(Queen, king, b.Occupied()) &^ b.ColorBb(c)).PopCount()
	return -int32(kingOpennessWeight * mobility)
}

// cannotCastlePenalty charges a flat penalty for each castling right
// colour c no longer holds, reflecting the lost flexibility of never
// having tucked the king away.
func cannotCastlePenalty(b *board.Board, c Color) int32 {
	penalty := int32(0)
	if !b.Castling().Has(KingsideRight(c)) {
		penalty += cannotCastlePenaltyPerRight
	}
	if !b.Castling().Has(QueensideRight(c)) {
		penalty += cannotCastlePenaltyPerRight
	}
	return -penalty
}
