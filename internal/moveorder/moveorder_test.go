package moveorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/board"
	"github.com/aharrow/plychess/internal/movegen"
	"github.com/aharrow/plychess/internal/moveorder"
	. "github.com/aharrow/plychess/internal/types"
)

func TestOrderPutsTTMoveFirst(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)
	moves := movegen.Generate(b)
	require.Greater(t, moves.Len(), 1)

	ttMove := moves[len(moves)-1]
	h := moveorder.NewHistory()
	moveorder.Order(b, moves, h, 0, MoveNone, ttMove, MoveNone)

	assert.Equal(t, ttMove.MoveOf(), moves[0].MoveOf())
}

func TestOrderPVMoveBeatsTTMove(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)
	moves := movegen.Generate(b)
	require.Greater(t, moves.Len(), 2)

	ttMove := moves[len(moves)-1]
	pvMove := moves[len(moves)-2]
	h := moveorder.NewHistory()
	moveorder.Order(b, moves, h, 0, pvMove, ttMove, MoveNone)

	assert.Equal(t, pvMove.MoveOf(), moves[0].MoveOf())
}

func TestOrderRanksCapturesAboveQuietMoves(t *testing.T) {
	// White pawn on e5 can capture a black pawn on d6, or play a quiet
	// knight move; the capture must sort first with no PV/TT hint.
	b, err := board.FromFEN("4k3/8/3p4/4P3/8/8/8/4K1N1 w - - 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(b)
	h := moveorder.NewHistory()
	moveorder.Order(b, moves, h, 0, MoveNone, MoveNone, MoveNone)

	assert.True(t, moves[0].Flag().IsCapture(), "best-ordered move should be the only capture available")
}
