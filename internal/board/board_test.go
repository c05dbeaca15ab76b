package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/board"
	. "github.com/aharrow/plychess/internal/types"
)

func TestFromFENRoundTrip(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := board.FromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, board.ToFEN(b))
	}
}

func TestFromFENInvalid(t *testing.T) {
	_, err := board.FromFEN("not a fen")
	assert.Error(t, err)

	_, err = board.FromFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err, "a board with no kings must be rejected")
}

func TestZobristChangesOnMove(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)
	before := b.Zobrist()

	m := NewMove(SquareOf(FileE, Rank2), SquareOf(FileE, Rank4), FlagDoublePawnPush)
	next := board.Apply(b, m)

	assert.NotEqual(t, before, next.Zobrist())
	assert.Equal(t, before, b.Zobrist(), "Apply must not mutate the original board")
}

func TestApplyDoesNotMutateOriginal(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)
	snapshot := board.ToFEN(b)

	m := NewMove(SquareOf(FileE, Rank2), SquareOf(FileE, Rank4), FlagDoublePawnPush)
	_ = board.Apply(b, m)

	assert.Equal(t, snapshot, board.ToFEN(b))
}

func TestIsAttackedOnIgnoresVacatedSquare(t *testing.T) {
	// White king on e1, black rook on e8 (black king on h8): the rook
	// attacks along the e-file through every empty square, including e1
	// itself once the king is removed from occupancy.
	b, err := board.FromFEN("4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	king := b.KingSquare(White)
	occWithoutKing := b.Occupied().Clear(king)
	assert.True(t, b.IsAttackedOn(king, Black, occWithoutKing))
}
