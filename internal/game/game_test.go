package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/game"
	. "github.com/aharrow/plychess/internal/types"
)

func TestNewGameStartsActive(t *testing.T) {
	s := game.New()
	assert.Equal(t, game.Active, s.Result)
	assert.Equal(t, 0, s.HalfMoveClock)
	assert.Equal(t, 1, s.FullMoveNumber)
	assert.False(t, s.IsDrawByRule())
}

func TestHalfMoveClockResetsOnPawnMoveAndCapture(t *testing.T) {
	s := game.New()
	m := NewMove(SquareOf(FileE, Rank2), SquareOf(FileE, Rank4), FlagDoublePawnPush)
	s = game.Apply(s, m)
	assert.Equal(t, 0, s.HalfMoveClock)

	knightMove := NewMove(SquareOf(FileG, Rank1), SquareOf(FileF, Rank3), FlagQuiet)
	s2 := game.Apply(s, knightMove)
	assert.Equal(t, 1, s2.HalfMoveClock)
}

func TestFullMoveNumberAdvancesAfterBlack(t *testing.T) {
	s := game.New()
	s = game.Apply(s, NewMove(SquareOf(FileE, Rank2), SquareOf(FileE, Rank4), FlagDoublePawnPush))
	assert.Equal(t, 1, s.FullMoveNumber)
	s = game.Apply(s, NewMove(SquareOf(FileE, Rank7), SquareOf(FileE, Rank5), FlagDoublePawnPush))
	assert.Equal(t, 2, s.FullMoveNumber)
}

func TestApplyDoesNotShareHistoryBackingArray(t *testing.T) {
	base := game.New()
	base = game.Apply(base, NewMove(SquareOf(FileE, Rank2), SquareOf(FileE, Rank4), FlagDoublePawnPush))

	branchA := game.Apply(base, NewMove(SquareOf(FileE, Rank7), SquareOf(FileE, Rank5), FlagDoublePawnPush))
	branchB := game.Apply(base, NewMove(SquareOf(FileD, Rank7), SquareOf(FileD, Rank5), FlagDoublePawnPush))

	assert.Equal(t, 1, branchA.RepetitionCount())
	assert.Equal(t, 1, branchB.RepetitionCount())
}

func TestThreefoldRepetition(t *testing.T) {
	s, err := game.FromFEN("8/8/8/8/8/8/6k1/6K1 w - - 0 1")
	require.NoError(t, err)

	shuttle := func(st game.State) game.State {
		st = game.Apply(st, NewMove(SquareOf(FileG, Rank1), SquareOf(FileF, Rank1), FlagQuiet))
		st = game.Apply(st, NewMove(SquareOf(FileG, Rank2), SquareOf(FileF, Rank2), FlagQuiet))
		st = game.Apply(st, NewMove(SquareOf(FileF, Rank1), SquareOf(FileG, Rank1), FlagQuiet))
		st = game.Apply(st, NewMove(SquareOf(FileF, Rank2), SquareOf(FileG, Rank2), FlagQuiet))
		return st
	}

	assert.False(t, s.IsThreefoldRepetition())
	s = shuttle(s)
	assert.False(t, s.IsThreefoldRepetition())
	s = shuttle(s)
	assert.True(t, s.IsThreefoldRepetition())
	assert.True(t, s.IsDrawByRule())
}
