// Package perfstat collects search counters that are not essential to a
// functioning search but are useful for tuning move ordering, extensions
// and reductions, grounded on the teacher's internal/search/statistics.go
// (trimmed to the counters this engine's search actually updates).
package perfstat

import (
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// Counters is an atomically-updated set of search statistics, safe to
// read from a UCI "info" callback while the search goroutine is still
// running.
type Counters struct {
	Nodes       uint64
	TTHit       uint64
	TTMiss      uint64
	TTCuts      uint64
	BetaCuts    uint64
	BetaCuts1st uint64

	CheckExtensions uint64
	LmrReductions   uint64
	LmrResearches   uint64

	QNodes       uint64
	StandpatCuts uint64
}

func (c *Counters) IncNodes()           { atomic.AddUint64(&c.Nodes, 1) }
func (c *Counters) IncQNodes()          { atomic.AddUint64(&c.QNodes, 1) }
func (c *Counters) IncTTHit()           { atomic.AddUint64(&c.TTHit, 1) }
func (c *Counters) IncTTMiss()          { atomic.AddUint64(&c.TTMiss, 1) }
func (c *Counters) IncTTCuts()          { atomic.AddUint64(&c.TTCuts, 1) }
func (c *Counters) IncStandpatCuts()    { atomic.AddUint64(&c.StandpatCuts, 1) }
func (c *Counters) IncCheckExtensions() { atomic.AddUint64(&c.CheckExtensions, 1) }
func (c *Counters) IncLmrResearches()   { atomic.AddUint64(&c.LmrResearches, 1) }
func (c *Counters) IncLmrReductions()   { atomic.AddUint64(&c.LmrReductions, 1) }

// IncBetaCut records a fail-high, distinguishing whether the cutting move
// was the first move tried at this node - a high BetaCuts1st/BetaCuts
// ratio is the usual sign of well-ordered moves.
func (c *Counters) IncBetaCut(firstMove bool) {
	atomic.AddUint64(&c.BetaCuts, 1)
	if firstMove {
		atomic.AddUint64(&c.BetaCuts1st, 1)
	}
}

// Reset zeroes all counters for the start of a new search.
func (c *Counters) Reset() { *c = Counters{} }

// Snapshot returns a copy of the counters safe to read without racing
// the search goroutine's atomic increments.
func (c *Counters) Snapshot() Counters {
	return Counters{
		Nodes:           atomic.LoadUint64(&c.Nodes),
		TTHit:           atomic.LoadUint64(&c.TTHit),
		TTMiss:          atomic.LoadUint64(&c.TTMiss),
		TTCuts:          atomic.LoadUint64(&c.TTCuts),
		BetaCuts:        atomic.LoadUint64(&c.BetaCuts),
		BetaCuts1st:     atomic.LoadUint64(&c.BetaCuts1st),
		CheckExtensions: atomic.LoadUint64(&c.CheckExtensions),
		LmrReductions:   atomic.LoadUint64(&c.LmrReductions),
		LmrResearches:   atomic.LoadUint64(&c.LmrResearches),
		QNodes:          atomic.LoadUint64(&c.QNodes),
		StandpatCuts:    atomic.LoadUint64(&c.StandpatCuts),
	}
}

func (c Counters) String() string {
	return out.Sprintf("%+v", c)
}
