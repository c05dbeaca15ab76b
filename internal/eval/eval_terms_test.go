package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/board"
	"github.com/aharrow/plychess/internal/eval"
)

func TestEvaluateDoubledPawnsAreWorseThanSplit(t *testing.T) {
	doubled, err := board.FromFEN("4k3/8/8/8/8/P7/P7/4K3 w - - 0 1")
	require.NoError(t, err)
	split, err := board.FromFEN("4k3/8/8/8/8/7P/P7/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Less(t, eval.Evaluate(&doubled), eval.Evaluate(&split))
}

func TestEvaluateIsolatedPawnIsWorseThanSupported(t *testing.T) {
	isolated, err := board.FromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	supported, err := board.FromFEN("4k3/8/8/8/8/3P4/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Less(t, eval.Evaluate(&isolated), eval.Evaluate(&supported))
}

func TestEvaluatePassedPawnOutscoresBlockaded(t *testing.T) {
	passed, err := board.FromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	blockaded, err := board.FromFEN("4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(&passed), eval.Evaluate(&blockaded))
}

func TestEvaluateKnightOutpostBeatsExposedKnight(t *testing.T) {
	// The e4 pawn's attack pattern covers d5, so the d5 knight is a
	// pawn-defended outpost no black pawn can ever challenge.
	outpost, err := board.FromFEN("4k3/8/8/3N4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	exposed, err := board.FromFEN("4k3/8/8/3N4/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(&outpost), eval.Evaluate(&exposed))
}

func TestEvaluatePenalisesHangingPiece(t *testing.T) {
	// The bishop on d4 attacks f2 along the diagonal, so the undefended
	// black knight there is hanging - good for White, the side to move.
	blackHanging, err := board.FromFEN("4k3/8/8/8/3B4/8/5n2/4K3 w - - 0 1")
	require.NoError(t, err)
	blackSafe, err := board.FromFEN("4k3/8/8/8/3B4/8/2n5/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(&blackHanging), eval.Evaluate(&blackSafe))
}

func TestEvaluatePenalisesExposedKingNearEnemyQueen(t *testing.T) {
	// The black queen on d3 bears on d1, d2, e2 and f1 around the white
	// king without standing where the king could capture it.
	exposed, err := board.FromFEN("4k3/8/8/8/8/3q4/8/4K3 w - - 0 1")
	require.NoError(t, err)
	distant, err := board.FromFEN("q3k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Less(t, eval.Evaluate(&exposed), eval.Evaluate(&distant))
}

func TestEvaluateRewardsCastlingRights(t *testing.T) {
	canCastle, err := board.FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	cannotCastle, err := board.FromFEN("4k3/8/8/8/8/8/8/R3K2R w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(&canCastle), eval.Evaluate(&cannotCastle))
}

func TestEvaluateMopUpFavoursCentralisedStrongerKing(t *testing.T) {
	centralised, err := board.FromFEN("7k/8/8/3QK3/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	cornered, err := board.FromFEN("7k/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(&centralised), eval.Evaluate(&cornered))
}
