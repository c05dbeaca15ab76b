package board

import (
	. "github.com/aharrow/plychess/internal/types"
)

// zobrist holds the process-wide random words used to build a position's
// incremental hash: one per (colour, kind, square), one for side to
// move, one per castling-rights state, and one per en-passant file
// (spec §3 "incremental XOR of all contributing random words").
//
// The generator is a xorshift64star PRNG, grounded on the teacher's
// internal/position/random.go (itself lifted from Stockfish), seeded
// deterministically so the same binary always derives the same keys -
// reproducibility matters more here than unpredictability.
type zobristTables struct {
	pieceSquare [ColorLength][PieceKindLength][SquareCount]Key
	sideToMove  Key
	castling    [16]Key
	epFile      [8]Key
}

var zobrist zobristTables

type xorshift struct{ s uint64 }

func (r *xorshift) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	rng := xorshift{s: 1070372}
	for c := Color(0); c < ColorLength; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := Square(0); sq < SquareCount; sq++ {
				zobrist.pieceSquare[c][pt][sq] = Key(rng.next())
			}
		}
	}
	zobrist.sideToMove = Key(rng.next())
	for i := range zobrist.castling {
		zobrist.castling[i] = Key(rng.next())
	}
	for i := range zobrist.epFile {
		zobrist.epFile[i] = Key(rng.next())
	}
}

// pawnKingZobristTables holds a second, narrower set of random words for
// the evaluator's auxiliary pawn-structure hash: only pawns and kings
// ever feed into a pawn-structure analysis, and 32 bits is enough to
// key a cache that only needs to distinguish pawn skeletons, not full
// positions.
type pawnKingZobristTables struct {
	pawn [ColorLength][SquareCount]uint32
	king [ColorLength][SquareCount]uint32
}

var pawnKingZobrist pawnKingZobristTables

func init() {
	rng := xorshift{s: 20140423}
	for c := Color(0); c < ColorLength; c++ {
		for sq := Square(0); sq < SquareCount; sq++ {
			pawnKingZobrist.pawn[c][sq] = uint32(rng.next())
			pawnKingZobrist.king[c][sq] = uint32(rng.next())
		}
	}
}

func pieceKey(p Piece, sq Square) Key {
	return zobrist.pieceSquare[p.ColorOf()][p.KindOf()][sq]
}

func castlingKey(cr CastlingRights) Key {
	return zobrist.castling[cr]
}

func epKey(sq Square) Key {
	if sq == SqNone {
		return 0
	}
	return zobrist.epFile[sq.FileOf()]
}
