package tt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aharrow/plychess/internal/tt"
	. "github.com/aharrow/plychess/internal/types"
)

func TestSizeRoundsToPowerOfTwo(t *testing.T) {
	table := tt.New(1)
	n := table.Len()
	assert.Equal(t, n&(n-1), 0, "table size must be a power of two")
	assert.GreaterOrEqual(t, n, 1024)
}

func TestStoreThenProbe(t *testing.T) {
	table := tt.New(1)
	key := Key(12345)
	m := NewMove(SquareOf(FileE, Rank2), SquareOf(FileE, Rank4), FlagDoublePawnPush)

	_, ok := table.Probe(key)
	assert.False(t, ok)

	table.Store(key, m, Value(42), 5, tt.BoundExact)
	entry, ok := table.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, m, entry.Move)
	assert.EqualValues(t, 42, entry.Value)
	assert.Equal(t, 5, entry.Depth)
	assert.Equal(t, tt.BoundExact, entry.Bound)
}

func TestProbeMissOnKeyCollisionIndex(t *testing.T) {
	table := tt.New(1)
	mask := uint64(table.Len() - 1)
	key := Key(7)
	collidingKey := Key(uint64(key) + mask + 1) // same index, different key

	table.Store(key, MoveNone, 0, 1, tt.BoundExact)
	_, ok := table.Probe(collidingKey)
	assert.False(t, ok, "a different key mapping to the same slot must not be returned as a hit")
}

func TestClearEmptiesTable(t *testing.T) {
	table := tt.New(1)
	key := Key(99)
	table.Store(key, MoveNone, 0, 1, tt.BoundExact)
	table.Clear()
	_, ok := table.Probe(key)
	assert.False(t, ok)
}
