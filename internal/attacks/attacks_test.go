package attacks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aharrow/plychess/internal/attacks"
	. "github.com/aharrow/plychess/internal/types"
)

func TestRookAttacksStoppedByBlocker(t *testing.T) {
	rook := SquareOf(FileA, Rank1)
	blocker := SquareOf(FileA, Rank4)
	attackedEmpty := attacks.Of(Rook, rook, BbZero)
	assert.True(t, attackedEmpty.Has(SquareOf(FileA, Rank8)), "an unblocked rook sees the whole file")

	occ := blocker.Bb()
	attackedBlocked := attacks.Of(Rook, rook, occ)
	assert.True(t, attackedBlocked.Has(blocker), "a rook attacks the square a blocker sits on")
	assert.False(t, attackedBlocked.Has(SquareOf(FileA, Rank5)), "a rook's ray stops at the first blocker")
}

func TestBishopAttacksDiagonal(t *testing.T) {
	bishop := SquareOf(FileC, Rank1)
	attacked := attacks.Of(Bishop, bishop, BbZero)
	assert.True(t, attacked.Has(SquareOf(FileA, Rank3)))
	assert.True(t, attacked.Has(SquareOf(FileH, Rank6)))
	assert.False(t, attacked.Has(SquareOf(FileA, Rank1)))
}

func TestKnightAttacksFromCorner(t *testing.T) {
	attacked := attacks.KnightAttacks(SquareOf(FileA, Rank1))
	assert.Equal(t, 2, attacked.PopCount())
	assert.True(t, attacked.Has(SquareOf(FileB, Rank3)))
	assert.True(t, attacked.Has(SquareOf(FileC, Rank2)))
}

func TestRayBetweenIsExclusive(t *testing.T) {
	a := SquareOf(FileA, Rank1)
	b := SquareOf(FileA, Rank4)
	between := attacks.RayBetween(a, b)
	assert.False(t, between.Has(a))
	assert.False(t, between.Has(b))
	assert.True(t, between.Has(SquareOf(FileA, Rank2)))
	assert.True(t, between.Has(SquareOf(FileA, Rank3)))
}
