// Package search implements iterative-deepening alpha-beta search with
// a transposition table, quiescence search, and check, promotion and
// pawn-to-seventh-rank extensions, grounded on the teacher engine's internal/search package
// (its iterative-deepening driver and time-control shape) and
// supplemented, for extension and reduction specifics the teacher does
// not implement, from the engine this specification was distilled
// from.
package search

import (
	"context"
	"time"

	"github.com/aharrow/plychess/internal/game"
	"github.com/aharrow/plychess/internal/moveorder"
	"github.com/aharrow/plychess/internal/moveslice"
	"github.com/aharrow/plychess/internal/perfstat"
	"github.com/aharrow/plychess/internal/tt"
	. "github.com/aharrow/plychess/internal/types"
)

const (
	maxExtensionPly = 12
	lmrMinDepth     = 3
	lmrMinMoveIndex = 3
)

// Result is what one completed or interrupted search returns.
type Result struct {
	BestMove Move
	Score    Value
	Depth    int
	PV       moveslice.MoveSlice
	Nodes    uint64
}

// Info is sent once per completed iteration, for the UCI layer to
// render as an "info" line (spec §5).
type Info struct {
	Depth int
	Score Value
	Nodes uint64
	Time  time.Duration
	PV    moveslice.MoveSlice
}

// Search holds the state carried across one engine's lifetime: its
// transposition table and move-ordering history persist across
// searches, reset only on "ucinewgame".
type Search struct {
	TT      *tt.Table
	History *moveorder.History
	Stats   perfstat.Counters

	nodes     uint64
	startTime time.Time
	deadline  time.Time
	infoFn    func(Info)
}

// New creates a search with a transposition table of the given size in
// megabytes.
func New(ttSizeMB int) *Search {
	return &Search{
		TT:      tt.New(ttSizeMB),
		History: moveorder.NewHistory(),
	}
}

// NewGame resets cross-search state (spec §5 "ucinewgame").
func (s *Search) NewGame() {
	s.TT.Clear()
	s.History = moveorder.NewHistory()
	s.Stats.Reset()
}

// OnInfo registers a callback invoked after each completed iteration.
func (s *Search) OnInfo(fn func(Info)) { s.infoFn = fn }

// Run performs iterative deepening from state until ctx is cancelled,
// the limits' time budget or node count is exhausted, or the limits'
// fixed depth is reached. It always returns the best move found by the
// deepest completed iteration, falling back to the first legal move if
// even depth 1 did not complete (spec §4.5 "a cooperative time check
// ... must never return before producing at least one legal move").
func (s *Search) Run(ctx context.Context, st game.State, limits Limits) Result {
	s.nodes = 0
	s.Stats.Reset()
	s.startTime = time.Now()

	budget := limits.TimeBudget(st.Board.Side())
	if budget > 0 {
		s.deadline = s.startTime.Add(budget)
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, s.deadline)
		defer cancel()
	}

	root := movesOf(st)
	if root.Len() == 0 {
		return Result{}
	}
	best := Result{BestMove: root[0]}

	maxDepth := limits.Depth
	if maxDepth == 0 {
		maxDepth = MaxPly
	}

	for depth := 1; depth <= maxDepth; depth++ {
		pv := moveslice.New(depth)
		score, completed := s.searchRoot(ctx, st, depth, &pv)
		if !completed {
			break
		}
		best = Result{BestMove: pv[0], Score: score, Depth: depth, PV: pv, Nodes: s.nodes}
		if s.infoFn != nil {
			s.infoFn(Info{Depth: depth, Score: score, Nodes: s.nodes, Time: time.Since(s.startTime), PV: pv})
		}
		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			break
		}
		if score.IsMateScore() {
			break
		}
	}
	return best
}

func (s *Search) searchRoot(ctx context.Context, st game.State, depth int, pv *moveslice.MoveSlice) (Value, bool) {
	moves := movesOf(st)
	moveorder.Order(st.Board, moves, s.History, 0, pvBest(pv), s.ttMove(st), MoveNone)

	alpha, beta := -ValueInf, ValueInf
	var bestMove Move
	bestScore := -ValueInf

	for i, m := range moves {
		if ctx.Err() != nil {
			return 0, false
		}
		child := game.Apply(st, m)
		score := -s.negamax(ctx, child, depth-1, 1, -beta, -alpha, m)
		if ctx.Err() != nil {
			return 0, false
		}
		if score > bestScore || i == 0 {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if bestMove == MoveNone {
		return 0, false
	}
	*pv = append((*pv)[:0], bestMove)
	s.TT.Store(st.Board.Zobrist(), bestMove, bestScore, depth, tt.BoundExact)
	return bestScore, true
}

// negamax searches one node, returning the value from the side-to-move
// perspective.
func (s *Search) negamax(ctx context.Context, st game.State, depth, ply int, alpha, beta Value, prevMove Move) Value {
	s.nodes++
	s.Stats.IncNodes()
	if s.nodes&1023 == 0 && ctx.Err() != nil {
		return 0
	}

	if st.IsDrawByRule() {
		return ValueDraw
	}

	inCheck := st.InCheck()
	if inCheck && ply < maxExtensionPly {
		depth++
		s.Stats.IncCheckExtensions()
	}
	if depth <= 0 {
		return s.quiescence(ctx, st, alpha, beta)
	}

	alphaOrig := alpha
	key := st.Board.Zobrist()
	var ttMove Move
	if entry, ok := s.TT.Probe(key); ok {
		s.Stats.IncTTHit()
		ttMove = entry.Move
		if entry.Depth >= depth {
			switch entry.Bound {
			case tt.BoundExact:
				return entry.Value
			case tt.BoundLower:
				if entry.Value > alpha {
					alpha = entry.Value
				}
			case tt.BoundUpper:
				if entry.Value < beta {
					beta = entry.Value
				}
			}
			if alpha >= beta {
				s.Stats.IncTTCuts()
				return entry.Value
			}
		}
	} else {
		s.Stats.IncTTMiss()
	}

	moves := movesOf(st)
	if moves.Len() == 0 {
		if inCheck {
			return MatedIn(ply)
		}
		return ValueDraw
	}
	moveorder.Order(st.Board, moves, s.History, ply, MoveNone, ttMove, prevMove)

	bestScore := -ValueInf
	var bestMove Move

	for i, m := range moves {
		child := game.Apply(st, m)

		extend := 0
		mover := st.Board.PieceAt(m.From())
		toRank := m.To().RankOf()
		if ply < maxExtensionPly && (m.Flag().IsPromotion() || (mover.KindOf() == Pawn &&
			((mover.ColorOf() == White && toRank == Rank7) || (mover.ColorOf() == Black && toRank == Rank2)))) {
			extend = 1
		}

		reduce := 0
		if extend == 0 && depth >= lmrMinDepth && i >= lmrMinMoveIndex && !inCheck &&
			!m.Flag().IsCapture() && !m.Flag().IsPromotion() && !child.InCheck() {
			reduce = 1
			s.Stats.IncLmrReductions()
		}

		score := -s.negamax(ctx, child, depth-1+extend-reduce, ply+1, -beta, -alpha, m)
		if reduce > 0 && score > alpha {
			s.Stats.IncLmrResearches()
			score = -s.negamax(ctx, child, depth-1+extend, ply+1, -beta, -alpha, m)
		}
		if ctx.Err() != nil {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.Stats.IncBetaCut(i == 0)
			if !m.Flag().IsCapture() {
				s.History.Update(st.Board.Side(), m, depth, ply, prevMove)
			}
			break
		}
	}

	bound := tt.BoundExact
	switch {
	case bestScore <= alphaOrig:
		bound = tt.BoundUpper
	case bestScore >= beta:
		bound = tt.BoundLower
	}
	s.TT.Store(key, bestMove, bestScore, depth, bound)

	return bestScore
}

// quiescence extends search through captures and promotions until the
// position is quiet, to avoid the horizon effect at the leaf of the main
// search (spec §4.5). Quiet moves that give check are not searched here.
func (s *Search) quiescence(ctx context.Context, st game.State, alpha, beta Value) Value {
	s.nodes++
	s.Stats.IncNodes()
	s.Stats.IncQNodes()
	if s.nodes&1023 == 0 && ctx.Err() != nil {
		return 0
	}

	standPat := Value(staticEval(st))
	if standPat >= beta {
		s.Stats.IncStandpatCuts()
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movesOf(st)
	for _, m := range moves {
		if !m.Flag().IsCapture() && !m.Flag().IsPromotion() {
			continue
		}
		child := game.Apply(st, m)
		score := -s.quiescence(ctx, child, -beta, -alpha)
		if ctx.Err() != nil {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (s *Search) ttMove(st game.State) Move {
	if e, ok := s.TT.Probe(st.Board.Zobrist()); ok {
		return e.Move
	}
	return MoveNone
}

func movesOf(st game.State) moveslice.MoveSlice {
	return generateLegal(st)
}
