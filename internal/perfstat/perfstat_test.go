package perfstat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aharrow/plychess/internal/perfstat"
)

func TestCountersAccumulate(t *testing.T) {
	var c perfstat.Counters
	c.IncNodes()
	c.IncNodes()
	c.IncTTHit()
	c.IncBetaCut(true)
	c.IncBetaCut(false)

	snap := c.Snapshot()
	assert.EqualValues(t, 2, snap.Nodes)
	assert.EqualValues(t, 1, snap.TTHit)
	assert.EqualValues(t, 2, snap.BetaCuts)
	assert.EqualValues(t, 1, snap.BetaCuts1st)
}

func TestResetZeroesCounters(t *testing.T) {
	var c perfstat.Counters
	c.IncNodes()
	c.Reset()
	assert.Zero(t, c.Snapshot().Nodes)
}
