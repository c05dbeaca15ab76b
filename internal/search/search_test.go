package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/game"
	"github.com/aharrow/plychess/internal/search"
	. "github.com/aharrow/plychess/internal/types"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move, back-rank mate with Ra8# available.
	st, err := game.FromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := search.New(1)
	result := s.Run(context.Background(), st, search.Limits{Depth: 3})

	require.NotEqual(t, MoveNone, result.BestMove)
	assert.Equal(t, SquareOf(FileA, Rank1), result.BestMove.From())
	assert.Equal(t, SquareOf(FileA, Rank8), result.BestMove.To())
	assert.True(t, result.Score.IsMateScore())
}

func TestSearchReturnsLegalMoveUnderTightDepth(t *testing.T) {
	st := game.New()
	s := search.New(1)
	result := s.Run(context.Background(), st, search.Limits{Depth: 1})
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	st := game.New()
	s := search.New(1)
	_ = s.Run(context.Background(), st, search.Limits{Depth: 2})

	_, hadEntry := s.TT.Probe(st.Board.Zobrist())
	require.True(t, hadEntry, "a completed search must store the root position")

	s.NewGame()
	_, ok := s.TT.Probe(st.Board.Zobrist())
	assert.False(t, ok)
}
