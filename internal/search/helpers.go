package search

import (
	"github.com/aharrow/plychess/internal/eval"
	"github.com/aharrow/plychess/internal/game"
	"github.com/aharrow/plychess/internal/movegen"
	"github.com/aharrow/plychess/internal/moveslice"
	. "github.com/aharrow/plychess/internal/types"
)

func generateLegal(st game.State) moveslice.MoveSlice {
	return movegen.Generate(st.Board)
}

func staticEval(st game.State) int {
	return eval.Evaluate(&st.Board)
}

func pvBest(pv *moveslice.MoveSlice) Move {
	if pv.Len() == 0 {
		return MoveNone
	}
	return (*pv)[0]
}
