package sanutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/board"
	"github.com/aharrow/plychess/internal/sanutil"
	. "github.com/aharrow/plychess/internal/types"
)

func TestMoveRendersPawnPush(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)
	m := NewMove(SquareOf(FileE, Rank2), SquareOf(FileE, Rank4), FlagDoublePawnPush)
	assert.Equal(t, "e4", sanutil.Move(b, m))
}

func TestMoveRendersCastle(t *testing.T) {
	b, err := board.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	m := NewMove(SquareOf(FileE, Rank1), SquareOf(FileG, Rank1), FlagCastleKing)
	assert.Equal(t, "O-O", sanutil.Move(b, m))
}

func TestMoveRendersCheckmateSuffix(t *testing.T) {
	b, err := board.FromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)
	m := NewMove(SquareOf(FileA, Rank1), SquareOf(FileA, Rank8), FlagQuiet)
	assert.Equal(t, "Ra8#", sanutil.Move(b, m))
}
