// Package uci implements the thin UCI protocol loop spec §5 calls for:
// parse a command line, drive the engine, print a response line. It
// reads stdin on one golang.org/x/sync/errgroup goroutine and handles
// every command there; "go" runs the search to completion on that same
// goroutine, so a "stop" sent mid-search is read only after the search
// has returned on its own depth, node or time limit. Grounded on the
// teacher's internal/uci package structure.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aharrow/plychess/internal/game"
	"github.com/aharrow/plychess/internal/movegen"
	"github.com/aharrow/plychess/internal/moveslice"
	"github.com/aharrow/plychess/internal/sanutil"
	"github.com/aharrow/plychess/internal/search"
	. "github.com/aharrow/plychess/internal/types"
)

const (
	engineName   = "plychess"
	engineAuthor = "plychess contributors"
)

// Engine drives one UCI session over the given reader/writer.
type Engine struct {
	out io.Writer

	search *search.Search
	state  game.State

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates an Engine writing UCI output to out, with a search using
// a transposition table of ttSizeMB megabytes.
func New(out io.Writer, ttSizeMB int) *Engine {
	return &Engine{
		out:    out,
		search: search.New(ttSizeMB),
		state:  game.New(),
	}
}

// Loop reads commands from in until "quit" or EOF, dispatching each to
// Command on a single goroutine; a search started by "go" blocks further
// reading until it returns. Loop returns once the loop ends, so the
// caller (cmd/plychess) can defer cleanup after it.
func (e *Engine) Loop(ctx context.Context, in io.Reader) error {
	g, ctx := errgroup.WithContext(ctx)
	scanner := bufio.NewScanner(in)

	g.Go(func() error {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !e.Command(ctx, line) {
				return nil
			}
		}
		return scanner.Err()
	})

	return g.Wait()
}

// Command handles one input line, returning false when the session
// should end ("quit").
func (e *Engine) Command(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "uci":
		e.printf("id name %s\n", engineName)
		e.printf("id author %s\n", engineAuthor)
		e.printf("uciok\n")
	case "isready":
		e.printf("readyok\n")
	case "ucinewgame":
		e.search.NewGame()
		e.state = game.New()
	case "position":
		e.handlePosition(fields[1:])
	case "go":
		e.handleGo(ctx, fields[1:])
	case "stop":
		e.stopSearch()
	case "quit":
		e.stopSearch()
		return false
	default:
		// unknown commands are silently ignored, per the UCI spec
	}
	return true
}

func (e *Engine) handlePosition(fields []string) {
	if len(fields) == 0 {
		return
	}
	var st game.State
	var rest []string

	switch fields[0] {
	case "startpos":
		st = game.New()
		rest = fields[1:]
	case "fen":
		idx := indexOf(fields, "moves")
		end := len(fields)
		if idx >= 0 {
			end = idx
		}
		fen := strings.Join(fields[1:end], " ")
		parsed, err := game.FromFEN(fen)
		if err != nil {
			return
		}
		st = parsed
		if idx >= 0 {
			rest = fields[idx:]
		}
	default:
		return
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, uciMove := range rest[1:] {
			m, ok := parseUCIMove(st, uciMove)
			if !ok {
				break
			}
			st = game.Apply(st, m)
		}
	}
	e.state = st
}

func (e *Engine) handleGo(ctx context.Context, fields []string) {
	limits := parseLimits(fields)

	e.mu.Lock()
	searchCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.mu.Unlock()

	e.search.OnInfo(func(info search.Info) {
		e.printInfo(info)
	})

	st := e.state
	result := e.search.Run(searchCtx, st, limits)

	e.mu.Lock()
	e.cancel = nil
	e.mu.Unlock()

	if result.BestMove == MoveNone {
		e.printf("bestmove 0000\n")
		return
	}
	e.printf("bestmove %s\n", result.BestMove.StringUCI())
}

func (e *Engine) stopSearch() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
	}
}

func (e *Engine) printInfo(info search.Info) {
	nps := uint64(0)
	if info.Time > 0 {
		nps = uint64(float64(info.Nodes) / info.Time.Seconds())
	}
	e.printf("info depth %d score %s nodes %d nps %d time %d pv %s\n",
		info.Depth, info.Score.String(), info.Nodes, nps, info.Time.Milliseconds(), info.PV.StringUCI())
}

func (e *Engine) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}

func indexOf(fields []string, target string) int {
	for i, f := range fields {
		if f == target {
			return i
		}
	}
	return -1
}

func generateLegalFor(st game.State) moveslice.MoveSlice {
	return movegen.Generate(st.Board)
}

func parseUCIMove(st game.State, uciMove string) (Move, bool) {
	for _, m := range generateLegalFor(st) {
		if m.StringUCI() == uciMove {
			return m, true
		}
	}
	return MoveNone, false
}

func parseLimits(fields []string) search.Limits {
	var l search.Limits
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "infinite":
			l.Infinite = true
		case "depth":
			i++
			if i < len(fields) {
				l.Depth, _ = strconv.Atoi(fields[i])
			}
		case "nodes":
			i++
			if i < len(fields) {
				n, _ := strconv.ParseUint(fields[i], 10, 64)
				l.Nodes = n
			}
		case "movetime":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				l.MoveTime = time.Duration(ms) * time.Millisecond
			}
		case "wtime":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				l.WTime = time.Duration(ms) * time.Millisecond
			}
		case "btime":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				l.BTime = time.Duration(ms) * time.Millisecond
			}
		case "winc":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				l.WInc = time.Duration(ms) * time.Millisecond
			}
		case "binc":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				l.BInc = time.Duration(ms) * time.Millisecond
			}
		}
	}
	return l
}

// sanLine renders moves, played from st, in SAN as a human-readable PV
// (spec §1's "diagnostic interface"). Nothing in this package calls it;
// the "info" and "bestmove" lines always use UCI notation.
func sanLine(st game.State, moves []Move) string {
	var sb strings.Builder
	cur := st
	for i, m := range moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sanutil.Move(cur.Board, m))
		cur = game.Apply(cur, m)
	}
	return sb.String()
}
