package attacks

import (
	"fmt"

	. "github.com/aharrow/plychess/internal/types"
)

// Of returns the attack bitboard of a piece of kind pt standing on sq
// given the current board occupancy. For Knight and King the occupancy
// is ignored (pseudo attacks are precomputed); for Bishop, Rook and
// Queen the fancy-magic tables are consulted. Pawn is not supported -
// use PawnAttacks, since a pawn's attacks depend on colour, not just
// occupancy.
func Of(pt PieceKind, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return pseudoKnight[sq]
	case King:
		return pseudoKing[sq]
	case Bishop:
		m := &bishopMagics[sq]
		return m.attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.attacks[m.index(occupied)]
	case Queen:
		bm := &bishopMagics[sq]
		rm := &rookMagics[sq]
		return bm.attacks[bm.index(occupied)] | rm.attacks[rm.index(occupied)]
	default:
		panic(fmt.Sprintf("attacks.Of: unsupported piece kind %v", pt))
	}
}

// KnightAttacks returns the knight attack mask for sq, ignoring
// occupancy.
func KnightAttacks(sq Square) Bitboard { return pseudoKnight[sq] }

// KingAttacks returns the king attack mask for sq, ignoring occupancy.
func KingAttacks(sq Square) Bitboard { return pseudoKing[sq] }

// PawnAttacks returns the squares a colour-c pawn on sq attacks
// diagonally.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnCapture[c][sq] }

// PawnSinglePush returns the square a colour-c pawn on sq reaches with a
// single push, or BbZero if sq is on the promotion rank.
func PawnSinglePush(c Color, sq Square) Bitboard { return pawnPush1[c][sq] }

// PawnDoublePush returns the square a colour-c pawn on sq reaches with a
// double push, or BbZero if sq is not on that colour's start rank.
func PawnDoublePush(c Color, sq Square) Bitboard { return pawnPush2[c][sq] }

// RayBetween returns the squares strictly between a and b if they share
// a rank, file or diagonal, else BbZero. Used by check-evasion
// interposition and pin-ray computation (spec §4.3).
func RayBetween(a, b Square) Bitboard {
	if a == b {
		return BbZero
	}
	if occ := Of(Rook, a, BbZero); occ.Has(b) {
		return Of(Rook, a, b.Bb()) & Of(Rook, b, a.Bb())
	}
	if occ := Of(Bishop, a, BbZero); occ.Has(b) {
		return Of(Bishop, a, b.Bb()) & Of(Bishop, b, a.Bb())
	}
	return BbZero
}

// LineThrough returns the full rank/file/diagonal through a and b
// (including both endpoints and both ray ends), or BbZero if they do
// not share one. The move generator does not call it; its pin masks
// are built from RayBetween.
func LineThrough(a, b Square) Bitboard {
	if a == b {
		return BbZero
	}
	if Of(Rook, a, BbZero).Has(b) {
		return (Of(Rook, a, BbZero) & Of(Rook, b, BbZero)) | a.Bb() | b.Bb()
	}
	if Of(Bishop, a, BbZero).Has(b) {
		return (Of(Bishop, a, BbZero) & Of(Bishop, b, BbZero)) | a.Bb() | b.Bb()
	}
	return BbZero
}
