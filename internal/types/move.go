package types

import (
	"strings"
)

// MoveFlag is the 4-bit tag distinguishing the sixteen kinds of move
// spec §3 enumerates. Promotion piece kind is folded into the flag
// itself (8-11 quiet promotions, 12-15 capture promotions) rather than
// carried as a separate field. Move ordering does not sort on the flag
// value; internal/moveorder scores each move separately.
type MoveFlag uint8

const (
	FlagQuiet          MoveFlag = 0
	FlagDoublePawnPush MoveFlag = 1
	FlagCastleKing     MoveFlag = 2
	FlagCastleQueen    MoveFlag = 3
	FlagCapture        MoveFlag = 4
	FlagEnPassant      MoveFlag = 5
	flagPromoN         MoveFlag = 8
	flagPromoB         MoveFlag = 9
	flagPromoR         MoveFlag = 10
	flagPromoQ         MoveFlag = 11
	flagPromoCapN      MoveFlag = 12
	flagPromoCapB      MoveFlag = 13
	flagPromoCapR      MoveFlag = 14
	flagPromoCapQ      MoveFlag = 15
)

// PromotionFlag returns the quiet- or capture-promotion flag for
// promoting to pt (Knight..Queen).
func PromotionFlag(pt PieceKind, capture bool) MoveFlag {
	base := flagPromoN
	if capture {
		base = flagPromoCapN
	}
	return base + MoveFlag(pt-Knight)
}

// IsCapture reports whether the flag denotes any capturing move,
// including en-passant and capture-promotions.
func (f MoveFlag) IsCapture() bool {
	return f == FlagCapture || f == FlagEnPassant || f >= flagPromoCapN
}

// IsPromotion reports whether the flag denotes a promotion of either
// kind.
func (f MoveFlag) IsPromotion() bool {
	return f >= flagPromoN
}

// PromotedTo returns the piece kind promoted to; only meaningful when
// IsPromotion is true.
func (f MoveFlag) PromotedTo() PieceKind {
	if f >= flagPromoCapN {
		return Knight + PieceKind(f-flagPromoCapN)
	}
	return Knight + PieceKind(f-flagPromoN)
}

// IsCastle reports whether the flag denotes castling, either side.
func (f MoveFlag) IsCastle() bool {
	return f == FlagCastleKing || f == FlagCastleQueen
}

// Move packs a from-square, to-square, 4-bit flag and 16-bit ordering
// value into a single machine word:
//
//	bit:  31............16 15..12 11.....6 5......0
//	      sort value       flags  from     to
//
// The low 16 bits (from/to/flags) are the move's identity; MoveOf masks
// off the sort value so two moves compare equal regardless of how
// they were scored for ordering (spec §3 "Move").
type Move uint32

const (
	toShift    = 0
	fromShift  = 6
	flagShift  = 12
	valueShift = 16

	toMask    Move = 0x3F
	fromMask  Move = 0x3F << fromShift
	flagMask  Move = 0xF << flagShift
	identMask Move = 0xFFFF
)

// MoveNone is the zero value: no move.
const MoveNone Move = 0

// NewMove encodes a move with no ordering value set.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(flag)<<flagShift
}

// From returns the origin square.
func (m Move) From() Square { return Square((m & fromMask) >> fromShift) }

// To returns the destination square.
func (m Move) To() Square { return Square((m & toMask) >> toShift) }

// Flag returns the move's kind tag.
func (m Move) Flag() MoveFlag { return MoveFlag((m & flagMask) >> flagShift) }

// MoveOf strips the ordering value, leaving only from/to/flag.
func (m Move) MoveOf() Move { return m & identMask }

// SortValue returns the ordering value previously stored with
// WithSortValue, or -0x8000 (the lowest value) if none was set.
func (m Move) SortValue() int32 {
	return int32((m&^identMask)>>valueShift) - 0x8000
}

// WithSortValue returns m with its high 16 bits set to encode v,
// clamped to a signed 16-bit range - used by the move-ordering
// pipeline (spec §4.3) to carry a sort key alongside the move itself
// without a parallel slice.
func (m Move) WithSortValue(v int32) Move {
	if v > 0x7FFF {
		v = 0x7FFF
	}
	if v < -0x8000 {
		v = -0x8000
	}
	return m.MoveOf() | Move(v+0x8000)<<valueShift
}

// IsValid reports whether m has distinct, valid squares. MoveNone is
// never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// StringUCI renders m in UCI's <from><to>[promo] notation.
func (m Move) StringUCI() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Flag().IsPromotion() {
		b.WriteByte(promoChar(m.Flag().PromotedTo()))
	}
	return b.String()
}

func promoChar(pt PieceKind) byte {
	switch pt {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	default:
		return '?'
	}
}

func (m Move) String() string {
	return m.StringUCI()
}
