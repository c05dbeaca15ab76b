package movegen

import (
	"sync"

	"github.com/aharrow/plychess/internal/board"
)

// PerftSuite runs Perft(depth) over every FEN in fens concurrently, one
// goroutine per position, grounded on the teacher's own fan-out style in
// internal/search rather than a dedicated pool: each position is an
// independent, short-lived unit of work, so a pool's queuing and worker
// lifecycle management buys nothing over a plain WaitGroup.
func PerftSuite(fens []string, depth int) ([]uint64, error) {
	results := make([]uint64, len(fens))
	errs := make([]error, len(fens))

	var wg sync.WaitGroup
	for i, fen := range fens {
		i, fen := i, fen
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := board.FromFEN(fen)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = Perft(b, depth)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Perft counts the leaf nodes reachable from b at the given depth, used
// both by PerftSuite and directly by tests.
func Perft(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := Generate(b)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(board.Apply(b, m), depth-1)
	}
	return nodes
}
