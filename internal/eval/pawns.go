package eval

import (
	"github.com/aharrow/plychess/internal/board"
	. "github.com/aharrow/plychess/internal/types"
)

const (
	doubledPawnPenalty         = 12
	isolatedPawnPenalty        = 10
	passedPawnBase             = 15
	kingShieldBonus            = 8
	passedDistanceToKingWeight = 4
)

// pawnCacheSize is a power of two so the key can be masked rather than
// modulo'd, the same sizing trick tt.Table uses for the transposition
// table.
const pawnCacheSize = 1 << 14

type pawnEntry struct {
	key    uint32
	mg, eg int32
}

// pawnCache is a fixed-size, always-replace cache of pawn-structure
// sub-scores keyed by Board.PawnKey, so a recurring pawn skeleton
// (common across many nodes of a search tree) is only analysed once.
var pawnCache [pawnCacheSize]pawnEntry

// pawnStructure returns the White-minus-Black midgame and endgame
// pawn-structure sub-score: doubled and isolated pawns, passed pawns
// and their distance to both kings, and each king's pawn shield.
func pawnStructure(b *board.Board) (mg, eg int32) {
	key := b.PawnKey()
	idx := key & (pawnCacheSize - 1)
	if e := pawnCache[idx]; e.key == key {
		return e.mg, e.eg
	}
	mg, eg = computePawnStructure(b)
	pawnCache[idx] = pawnEntry{key: key, mg: mg, eg: eg}
	return mg, eg
}

func computePawnStructure(b *board.Board) (mg, eg int32) {
	for _, c := range [2]Color{White, Black} {
		sign := int32(1)
		if c == Black {
			sign = -1
		}
		sideMg, sideEg := pawnStructureForSide(b, c)
		mg += sign * sideMg
		eg += sign * sideEg
	}
	return mg, eg
}

func pawnStructureForSide(b *board.Board, c Color) (mg, eg int32) {
	own := b.PiecesBb(c, Pawn)
	opp := b.PiecesBb(c.Flip(), Pawn)
	king := b.KingSquare(c)
	oppKing := b.KingSquare(c.Flip())

	for f := FileA; f <= FileH; f++ {
		count := (own & f.Bb()).PopCount()
		if count >= 2 {
			penalty := int32(doubledPawnPenalty * (count - 1))
			mg -= penalty
			eg -= penalty
		}
	}

	for pawns := own; pawns != BbZero; {
		sq := pawns.PopLsb()
		if isIsolated(sq, own) {
			mg -= isolatedPawnPenalty
			eg -= isolatedPawnPenalty
		}
		if opp&passedPawnMask(sq, c) == BbZero {
			advancement := int(sq.RankOf())
			if c == Black {
				advancement = 7 - advancement
			}
			bonus := int32(passedPawnBase + advancement*advancement)
			mg += bonus
			eg += bonus
			eg += passedPawnDistanceToKing(sq, king, oppKing)
		}
	}

	file := king.FileOf()
	for _, f := range [3]File{file - 1, file, file + 1} {
		if f.IsValid() && own&f.Bb() != BbZero {
			mg += kingShieldBonus
		}
	}

	return mg, eg
}

func isIsolated(sq Square, own Bitboard) bool {
	file := sq.FileOf()
	for _, f := range [2]File{file - 1, file + 1} {
		if f.IsValid() && own&f.Bb() != BbZero {
			return false
		}
	}
	return true
}

// passedPawnMask covers sq's own file and its two neighbours, from one
// rank ahead of sq (in colour c's direction of travel) to the edge of
// the board - the squares an opposing pawn anywhere in which would
// block or capture sq before it promotes.
func passedPawnMask(sq Square, c Color) Bitboard {
	file := sq.FileOf()
	var files Bitboard
	for _, f := range [3]File{file - 1, file, file + 1} {
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

// passedPawnDistanceToKing rewards a passed pawn that its own king can
// reach sooner than the enemy king can. Endgame-only.
func passedPawnDistanceToKing(pawn, ownKing, enemyKing Square) int32 {
	own := chebyshevDistance(pawn, ownKing)
	enemy := chebyshevDistance(pawn, enemyKing)
	return int32(passedDistanceToKingWeight * (enemy - own))
}
