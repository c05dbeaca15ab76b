package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/board"
	"github.com/aharrow/plychess/internal/eval"
	. "github.com/aharrow/plychess/internal/types"
)

func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)
	assert.Zero(t, eval.Evaluate(&b))
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	// This placement is its own mirror image under a rank flip plus a
	// colour swap, so the position must evaluate to exactly 0 from
	// either side's perspective.
	white, err := board.FromFEN("1n2k3/p6p/8/8/8/8/P6P/1N2K3 w - - 0 1")
	require.NoError(t, err)
	black, err := board.FromFEN("1n2k3/p6p/8/8/8/8/P6P/1N2K3 b - - 0 1")
	require.NoError(t, err)

	assert.Zero(t, eval.Evaluate(&white))
	assert.Zero(t, eval.Evaluate(&black))
}

func TestPhaseIsMaxAtStartAndZeroWithNoMinorsOrMajors(t *testing.T) {
	start, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)
	assert.Equal(t, GamePhaseMax, eval.Phase(&start))

	bare, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Zero(t, eval.Phase(&bare))
}

func TestSEEBounds(t *testing.T) {
	// White rook on d1 takes a black pawn on d5, undefended: SEE must
	// equal the full pawn value (no recapture possible).
	b, err := board.FromFEN("4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)
	m := NewMove(SquareOf(FileD, Rank1), SquareOf(FileD, Rank5), FlagCapture)
	assert.Equal(t, Pawn.Value(), eval.SEE(&b, m))
}

func TestSEELosingCaptureIsNegative(t *testing.T) {
	// White rook on d1 takes a black pawn on d5, defended by a black
	// rook on d8: the exchange loses the rook for a pawn.
	b, err := board.FromFEN("3rk3/8/8/3p4/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)
	m := NewMove(SquareOf(FileD, Rank1), SquareOf(FileD, Rank5), FlagCapture)
	see := eval.SEE(&b, m)
	assert.Less(t, see, 0)
	assert.GreaterOrEqual(t, see, -Rook.Value())
}
