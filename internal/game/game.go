// Package game wraps an immutable board.Board with the match-level
// bookkeeping spec §3 calls "Game state": half-move clock, full-move
// number, prior positions for repetition detection, and a result tag.
// It is a separate package from board because the Board itself has no
// notion of match history (spec §4.1 keeps Board a pure position
// value); this package is the thing the UCI layer and the search carry
// around instead.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aharrow/plychess/internal/board"
	. "github.com/aharrow/plychess/internal/types"
)

// Result is the match outcome of a State.
type Result int

const (
	Active Result = iota
	Draw
	WhiteWins
	BlackWins
)

// State is an immutable value: Apply returns a new State, exactly like
// board.Apply returns a new Board (spec §9 "Undo via persistence"
// applies at this level too - the search stack just keeps the parent
// State on its own stack frame).
type State struct {
	Board          board.Board
	HalfMoveClock  int
	FullMoveNumber int
	Result         Result

	// history is the Zobrist key of every position from the game root
	// up to and including Board, used for three-fold repetition
	// detection (spec §4.5, §8 scenario 6). Apply copies it into a fresh
	// slice rather than appending in place - see the comment there.
	history []Key
}

// New returns the state of a fresh game from the standard starting
// position.
func New() State {
	s, err := FromFEN(board.StartFEN)
	if err != nil {
		panic("game: start FEN must always parse: " + err.Error())
	}
	return s
}

// FromFEN parses a full FEN string, including the half-move clock and
// full-move number if present (spec §6 FEN format); both default to
// their standard values if omitted.
func FromFEN(fen string) (State, error) {
	fields := strings.Fields(fen)
	b, err := board.FromFEN(fen)
	if err != nil {
		return State{}, err
	}
	s := State{
		Board:          b,
		HalfMoveClock:  0,
		FullMoveNumber: 1,
		history:        []Key{b.Zobrist()},
	}
	if len(fields) >= 5 {
		if n, e := strconv.Atoi(fields[4]); e == nil {
			s.HalfMoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, e := strconv.Atoi(fields[5]); e == nil && n > 0 {
			s.FullMoveNumber = n
		}
	}
	return s, nil
}

// Apply plays move m, assumed legal, returning the successor state. The
// half-move clock resets on a pawn move or a capture (spec §3) and the
// full-move number advances after Black moves.
func Apply(s State, m Move) State {
	mover := s.Board.PieceAt(m.From())
	next := s
	next.Board = board.Apply(s.Board, m)

	if mover.KindOf() == Pawn || m.Flag().IsCapture() {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}
	if s.Board.Side() == Black {
		next.FullMoveNumber++
	}

	// Append without mutating s's backing array: history is read-only
	// once shared, so a sibling branch exploring a different move from
	// the same state must not see this branch's position appended to
	// its history. Copying into a freshly allocated slice, rather than
	// appending in place, guarantees that no two states share a backing
	// array.
	hist := make([]Key, len(s.history)+1)
	copy(hist, s.history)
	hist[len(s.history)] = next.Board.Zobrist()
	next.history = hist

	next.Result = Active
	return next
}

// InCheck reports whether the side to move is in check.
func (s State) InCheck() bool {
	b := &s.Board
	opp := b.Side().Flip()
	return b.IsAttacked(b.KingSquare(b.Side()), opp)
}

// RepetitionCount returns how many times the current position (by
// Zobrist key) has occurred in this game's history, including the
// current occurrence.
func (s State) RepetitionCount() int {
	key := s.Board.Zobrist()
	n := 0
	for _, k := range s.history {
		if k == key {
			n++
		}
	}
	return n
}

// IsThreefoldRepetition reports whether the current position has
// occurred three or more times (spec §4.5, §8 scenario 6).
func (s State) IsThreefoldRepetition() bool {
	return s.RepetitionCount() >= 3
}

// IsFiftyMoveRule reports whether the half-move clock has reached the
// 50-move-rule threshold (100 half-moves).
func (s State) IsFiftyMoveRule() bool {
	return s.HalfMoveClock >= 100
}

// IsDrawByRule reports whether the position is an automatic draw by
// repetition or the fifty-move rule, independent of whether any legal
// move exists.
func (s State) IsDrawByRule() bool {
	return s.IsThreefoldRepetition() || s.IsFiftyMoveRule()
}

// FEN renders the full FEN string, including half-move clock and
// full-move number.
func (s State) FEN() string {
	base := strings.TrimSuffix(board.ToFEN(s.Board), " 0 1")
	return fmt.Sprintf("%s %d %d", base, s.HalfMoveClock, s.FullMoveNumber)
}
