package board

import (
	"fmt"

	. "github.com/aharrow/plychess/internal/types"
)

// Validate checks the §3 invariants that can turn a corrupt Board into
// a silent wrong answer instead of a loud crash: disjoint piece
// bitboards, occupancy consistency, exactly one king per side, and
// en-passant geometry. It is called from FromFEN and, in debug builds,
// from Apply (spec §7 InternalInvariantViolation). From FromFEN a
// failure is returned as a parse error, since a FEN producing an
// invalid board is malformed input; from Apply it is fatal: the move
// generator promised a legal move.
func (b *Board) Validate() error {
	var union Bitboard
	for pt := Pawn; pt <= Queen; pt++ {
		if b.byKind[pt]&union != BbZero {
			return fmt.Errorf("board: invariant violated: piece kind %v overlaps another kind", pt)
		}
		union |= b.byKind[pt]
	}
	if b.kingSq[White] == b.kingSq[Black] {
		return fmt.Errorf("board: invariant violated: both kings on %s", b.kingSq[White])
	}
	for _, c := range [ColorLength]Color{White, Black} {
		if !b.kingSq[c].IsValid() {
			return fmt.Errorf("board: invariant violated: missing %s king", c)
		}
		if !b.byColor[c].Has(b.kingSq[c]) {
			return fmt.Errorf("board: invariant violated: %s king square not in colour occupancy", c)
		}
	}

	if b.byColor[White]&b.byColor[Black] != BbZero {
		return fmt.Errorf("board: invariant violated: white/black occupancy overlap")
	}
	wantOccupied := union | b.kingSq[White].Bb() | b.kingSq[Black].Bb()
	if b.byColor[White]|b.byColor[Black] != wantOccupied {
		return fmt.Errorf("board: invariant violated: colour union does not equal piece union")
	}
	if b.occupied != wantOccupied {
		return fmt.Errorf("board: invariant violated: total occupancy inconsistent")
	}

	if b.epSquare != SqNone {
		mover := b.side.Flip() // the side that made the double push
		pushRank := Rank5
		startRank := Rank7
		if mover == White {
			pushRank = Rank4
			startRank = Rank2
		}
		pawnSq := SquareOf(b.epSquare.FileOf(), pushRank)
		originSq := SquareOf(b.epSquare.FileOf(), startRank)
		if !b.PiecesBb(mover, Pawn).Has(pawnSq) {
			return fmt.Errorf("board: invariant violated: en-passant target %s has no pawn behind it", b.epSquare)
		}
		if b.squares[originSq] != PieceNone {
			return fmt.Errorf("board: invariant violated: en-passant target %s origin square occupied", b.epSquare)
		}
	}

	if b.key != b.computeZobristFromScratch() {
		return fmt.Errorf("board: invariant violated: zobrist key does not match recomputed hash")
	}
	if b.pawnKey != b.computePawnKeyFromScratch() {
		return fmt.Errorf("board: invariant violated: pawn/king hash does not match recomputed hash")
	}
	return nil
}
