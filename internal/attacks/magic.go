// Package attacks holds the engine's move-data tables: precomputed
// knight, king and pawn attack/push masks, and fancy-magic-bitboard
// lookup tables for bishop and rook (and, combined, queen) attacks.
// Everything here is process-wide and immutable after init (spec §4.2,
// §9 "Global mutable state").
//
// The magic-bitboard machinery is grounded on the teacher engine's
// internal/types/magic.go, itself taken from Stockfish's "fancy magics"
// approach: https://www.chessprogramming.org/Magic_Bitboards. Magic
// numbers are found at process-init time with a small xorshift PRNG
// rather than baked in as constants - spec §9 explicitly permits this.
package attacks

import (
	. "github.com/aharrow/plychess/internal/types"
)

// magic holds the per-square data needed to index into a slider's
// precomputed attack table: mask the relevant occupancy, multiply by
// the magic constant, shift down to an index.
type magic struct {
	mask    Bitboard
	number  Bitboard
	shift   uint
	attacks []Bitboard
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	return uint(occ >> m.shift)
}

var (
	bishopTable  [0x1480]Bitboard
	rookTable    [0x19000]Bitboard
	bishopMagics [SquareCount]magic
	rookMagics   [SquareCount]magic

	pseudoKnight [SquareCount]Bitboard
	pseudoKing   [SquareCount]Bitboard
	pawnPush1    [ColorLength][SquareCount]Bitboard
	pawnPush2    [ColorLength][SquareCount]Bitboard
	pawnCapture  [ColorLength][SquareCount]Bitboard

	rookDirs   = [4]Direction{North, South, East, West}
	bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
)

func init() {
	initLeapers()
	initPawns()
	initMagics(bishopTable[:], &bishopMagics, &bishopDirs)
	initMagics(rookTable[:], &rookMagics, &rookDirs)
}

func initLeapers() {
	knightDeltas := []func(Square) Square{
		func(sq Square) Square { return step2(sq, North, East) },
		func(sq Square) Square { return step2(sq, North, West) },
		func(sq Square) Square { return step2(sq, South, East) },
		func(sq Square) Square { return step2(sq, South, West) },
		func(sq Square) Square { return step2(sq, East, North) },
		func(sq Square) Square { return step2(sq, East, South) },
		func(sq Square) Square { return step2(sq, West, North) },
		func(sq Square) Square { return step2(sq, West, South) },
	}
	kingDirs := [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

	for sq := Square(0); sq < SquareCount; sq++ {
		var kb Bitboard
		for _, d := range kingDirs {
			if t := sq.To(d); t.IsValid() {
				kb = kb.Set(t)
			}
		}
		pseudoKing[sq] = kb

		var nb Bitboard
		for _, f := range knightDeltas {
			if t := f(sq); t.IsValid() {
				nb = nb.Set(t)
			}
		}
		pseudoKnight[sq] = nb
	}
}

// step2 moves two single steps, discarding the result if the first step
// already left the board (prevents a knight delta from wrapping files).
func step2(sq Square, first, second Direction) Square {
	mid := sq.To(first)
	if !mid.IsValid() {
		return SqNone
	}
	return mid.To(second)
}

func initPawns() {
	for sq := Square(0); sq < SquareCount; sq++ {
		for _, c := range [ColorLength]Color{White, Black} {
			push := c.PawnPushDirection()
			if t := sq.To(push); t.IsValid() {
				pawnPush1[c][sq] = t.Bb()
				if sq.RankOf() == PawnStartRank(c) {
					if t2 := t.To(push); t2.IsValid() {
						pawnPush2[c][sq] = t2.Bb()
					}
				}
			}
			var caps Bitboard
			left, right := Northwest, Northeast
			if c == Black {
				left, right = Southwest, Southeast
			}
			if t := sq.To(left); t.IsValid() {
				caps = caps.Set(t)
			}
			if t := sq.To(right); t.IsValid() {
				caps = caps.Set(t)
			}
			pawnCapture[c][sq] = caps
		}
	}
}

// slidingAttack computes, by brute-force ray walking, the attack set of
// a slider on sq given the directions and the current occupancy. Used
// only at init time to build the magic attack tables and reference data
// for magic verification - never on the search hot path.
func slidingAttack(dirs *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attacks = attacks.Set(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attacks
}

// initMagics fills in table (a flat slice shared by all 64 squares) and
// magics, the fancy-magic-bitboard metadata for each square, for the
// slider whose move directions are given by dirs.
func initMagics(table []Bitboard, magics *[SquareCount]magic, dirs *[4]Direction) {
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt, size := 0, 0

	for sq := Square(0); sq < SquareCount; sq++ {
		edges = ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) | ((FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(dirs, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == 0 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		b = BbZero
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == BbZero {
				break
			}
		}

		rng := newPrng(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.number = 0; ((m.number*m.mask)>>56).PopCount() < 6; {
				m.number = Bitboard(rng.sparse())
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// prng is a xorshift64star generator, used only to pick magic-bitboard
// candidates at init time. Not cryptographic, not used anywhere else.
type prng struct{ s uint64 }

func newPrng(seed uint64) *prng { return &prng{s: seed} }

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse returns a value with roughly 1/8th of its bits set, which
// converges to a valid magic much faster than a uniform random value.
func (r *prng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}
