package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/board"
	"github.com/aharrow/plychess/internal/movegen"
	. "github.com/aharrow/plychess/internal/types"
)

func perft(t *testing.T, b board.Board, depth int) uint64 {
	t.Helper()
	if depth == 0 {
		return 1
	}
	moves := movegen.Generate(b)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for _, m := range moves {
		nodes += perft(t, board.Apply(b, m), depth-1)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)

	assert.EqualValues(t, 20, perft(t, b, 1))
	assert.EqualValues(t, 400, perft(t, b, 2))
	assert.EqualValues(t, 8902, perft(t, b, 3))
}

func TestPerftKiwipete(t *testing.T) {
	b, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	assert.EqualValues(t, 48, perft(t, b, 1))
	assert.EqualValues(t, 2039, perft(t, b, 2))
}

func TestPerftEnPassantPin(t *testing.T) {
	// White king on f5, white pawn on e5, black pawn just played d7-d5:
	// exd6 en passant would clear both pawns from the fifth rank and
	// expose the white king to the black rook on a5.
	b, err := board.FromFEN("4k3/8/8/r2pPK2/8/8/8/8 w - d6 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(b)
	for _, m := range moves {
		assert.NotEqual(t, FlagEnPassant, m.Flag(), "pinned en-passant capture must not be generated")
	}
}

func TestPerftCastlingBlockedByAttack(t *testing.T) {
	// White king on e1 wants to castle kingside but f1 is attacked by a
	// black bishop on a6, so the castle must not be generated.
	b, err := board.FromFEN("4k3/8/b7/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(b)
	for _, m := range moves {
		assert.False(t, m.Flag().IsCastle(), "castling through an attacked square must not be generated")
	}
}

func TestCheckmateHasNoMoves(t *testing.T) {
	// Fool's mate final position, white to move and mated.
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	moves := movegen.Generate(b)
	assert.Equal(t, 0, moves.Len())
}

func TestPerftSuiteConcurrent(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	results, err := movegen.PerftSuite(fens, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.EqualValues(t, 400, results[0])
	assert.EqualValues(t, 2039, results[1])
}
