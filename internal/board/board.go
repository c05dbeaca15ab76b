// Package board implements the immutable position value described in
// spec §3/§4.1: a Board is constructed once from a FEN string and never
// mutated afterwards. Every move produces a fresh Board value; the
// caller (move generator or search stack) keeps the old value around
// for as long as it needs it and simply lets it go out of scope to
// "undo" - there is no explicit UndoMove (spec §9 "Undo via
// persistence"). This departs from the teacher engine's Position type,
// which mutates in place and keeps an explicit undo-history stack; see
// DESIGN.md for the rationale.
package board

import (
	"fmt"

	"github.com/aharrow/plychess/internal/assert"
	attacksPkg "github.com/aharrow/plychess/internal/attacks"
	. "github.com/aharrow/plychess/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is a complete, self-contained chess position. All fields taken
// together determine the position uniquely (up to repetition, which is
// a GameState concern, not a Board one).
type Board struct {
	squares  [SquareCount]Piece
	byColor  [ColorLength]Bitboard
	byKind   [PieceKindLength]Bitboard // combined-colour; King entry unused, see kingSq
	occupied Bitboard
	kingSq   [ColorLength]Square
	side     Color
	castling CastlingRights
	epSquare Square
	key      Key
	pawnKey  uint32 // pawns + kings only, consulted by the evaluator's pawn-structure cache
}

// Side returns the side to move.
func (b *Board) Side() Color { return b.side }

// Castling returns the current castling rights.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassant returns the en-passant target square, or SqNone.
func (b *Board) EnPassant() Square { return b.epSquare }

// KingSquare returns the square of colour c's king.
func (b *Board) KingSquare(c Color) Square { return b.kingSq[c] }

// Occupied returns the union of every piece on the board.
func (b *Board) Occupied() Bitboard { return b.occupied }

// ColorBb returns every square occupied by colour c.
func (b *Board) ColorBb(c Color) Bitboard { return b.byColor[c] }

// KindBb returns every square occupied by a piece of kind pt, both
// colours combined.
func (b *Board) KindBb(pt PieceKind) Bitboard {
	if pt == King {
		return b.kingSq[White].Bb() | b.kingSq[Black].Bb()
	}
	return b.byKind[pt]
}

// PiecesBb returns every square occupied by a colour-c piece of kind
// pt.
func (b *Board) PiecesBb(c Color, pt PieceKind) Bitboard {
	return b.KindBb(pt) & b.byColor[c]
}

// PieceAt returns the piece occupying sq, or PieceNone.
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// Zobrist returns the position's cached hash (spec §4.1 "zobrist(Board)
// -> u64").
func (b *Board) Zobrist() Key { return b.key }

// PawnKey returns the auxiliary 32-bit hash of just the pawns and king
// squares, kept separate from the main Zobrist key so the evaluator can
// cache pawn-structure analysis across positions that share the same
// pawn skeleton.
func (b *Board) PawnKey() uint32 { return b.pawnKey }

// IsAttacked reports whether sq is attacked by colour by, given the
// current occupancy. Used by in-check tests; castling-transit legality
// is tested with IsAttackedOn (spec §4.3).
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.attackersTo(sq, b.occupied)&b.byColor[by] != BbZero
}

// IsAttackedOn reports whether sq is attacked by colour by under the
// given occupancy rather than the board's own - the move generator
// uses this to test king destination squares with the king itself
// removed from occupancy, so a slider's attack is not blocked by the
// very king square it is trying to move away from (spec §4.3).
func (b *Board) IsAttackedOn(sq Square, by Color, occupied Bitboard) bool {
	return b.attackersTo(sq, occupied)&b.byColor[by] != BbZero
}

// attackersTo returns every square, of any colour, whose occupant
// attacks sq under the given occupancy - the occupancy is a parameter
// (rather than always b.occupied) so callers can probe "what would
// attack this square if a blocker were removed", as the en-passant
// discovered-check check and the king's own-square x-ray exclusion both
// require (spec §4.3).
// AttackersTo is the exported form of attackersTo, used by static
// exchange evaluation (spec §8) to walk a capture sequence under a
// shrinking occupancy.
func (b *Board) AttackersTo(sq Square, occupied Bitboard) Bitboard {
	return b.attackersTo(sq, occupied)
}

func (b *Board) attackersTo(sq Square, occupied Bitboard) Bitboard {
	var attackers Bitboard
	attackers |= attacksPkg.KnightAttacks(sq) & b.KindBb(Knight)
	attackers |= attacksPkg.KingAttacks(sq) & (b.kingSq[White].Bb() | b.kingSq[Black].Bb())
	attackers |= attacksPkg.Of(Bishop, sq, occupied) & (b.KindBb(Bishop) | b.KindBb(Queen))
	attackers |= attacksPkg.Of(Rook, sq, occupied) & (b.KindBb(Rook) | b.KindBb(Queen))
	attackers |= attacksPkg.PawnAttacks(White, sq) & b.PiecesBb(Black, Pawn)
	attackers |= attacksPkg.PawnAttacks(Black, sq) & b.PiecesBb(White, Pawn)
	return attackers
}

func (b *Board) put(p Piece, sq Square) {
	b.squares[sq] = p
	b.key ^= pieceKey(p, sq)
	switch p.KindOf() {
	case King:
		b.kingSq[p.ColorOf()] = sq
		b.pawnKey ^= pawnKingZobrist.king[p.ColorOf()][sq]
	case Pawn:
		b.byKind[Pawn] = b.byKind[Pawn].Set(sq)
		b.pawnKey ^= pawnKingZobrist.pawn[p.ColorOf()][sq]
	default:
		b.byKind[p.KindOf()] = b.byKind[p.KindOf()].Set(sq)
	}
	b.byColor[p.ColorOf()] = b.byColor[p.ColorOf()].Set(sq)
	b.occupied = b.occupied.Set(sq)
}

func (b *Board) remove(sq Square) Piece {
	p := b.squares[sq]
	if p.IsNone() {
		return p
	}
	b.squares[sq] = PieceNone
	b.key ^= pieceKey(p, sq)
	switch p.KindOf() {
	case King:
		b.pawnKey ^= pawnKingZobrist.king[p.ColorOf()][sq]
	case Pawn:
		b.byKind[Pawn] = b.byKind[Pawn].Clear(sq)
		b.pawnKey ^= pawnKingZobrist.pawn[p.ColorOf()][sq]
	default:
		b.byKind[p.KindOf()] = b.byKind[p.KindOf()].Clear(sq)
	}
	b.byColor[p.ColorOf()] = b.byColor[p.ColorOf()].Clear(sq)
	b.occupied = b.occupied.Clear(sq)
	return p
}

func (b *Board) move(from, to Square) {
	p := b.remove(from)
	b.put(p, to)
}

// cornerRight maps a rook's home square to the castling right it
// guards; moving a piece onto or off of that square clears the right
// (spec §4.1 "driven by the from- and to-squares only").
var cornerRight = map[Square]CastlingRights{
	MakeSquare("a1"): WhiteOOO,
	MakeSquare("h1"): WhiteOO,
	MakeSquare("a8"): BlackOOO,
	MakeSquare("h8"): BlackOO,
}

func (b *Board) updateCastlingRights(from, to Square, mover Piece) {
	old := b.castling
	next := old
	if mover.KindOf() == King {
		if mover.ColorOf() == White {
			next = next.Remove(CastlingWhite)
		} else {
			next = next.Remove(CastlingBlack)
		}
	}
	if r, ok := cornerRight[from]; ok {
		next = next.Remove(r)
	}
	if r, ok := cornerRight[to]; ok {
		next = next.Remove(r)
	}
	if next != old {
		b.key ^= castlingKey(old)
		b.key ^= castlingKey(next)
		b.castling = next
	}
}

func (b *Board) setEnPassant(sq Square) {
	if b.epSquare != SqNone {
		b.key ^= epKey(b.epSquare)
	}
	b.epSquare = sq
	if sq != SqNone {
		b.key ^= epKey(sq)
	}
}

// castleSquares gives the king and rook from/to squares for castling
// flag f by colour c.
func castleSquares(c Color, f MoveFlag) (kingFrom, kingTo, rookFrom, rookTo Square) {
	rank := "1"
	if c == Black {
		rank = "8"
	}
	kingFrom = MakeSquare("e" + rank)
	if f == FlagCastleKing {
		kingTo = MakeSquare("g" + rank)
		rookFrom = MakeSquare("h" + rank)
		rookTo = MakeSquare("f" + rank)
	} else {
		kingTo = MakeSquare("c" + rank)
		rookFrom = MakeSquare("a" + rank)
		rookTo = MakeSquare("d" + rank)
	}
	return
}

// Apply returns the successor position reached by playing m, which is
// assumed legal (spec §4.1): the caller is the move generator or a
// verified UCI input. b itself is never modified.
func Apply(b Board, m Move) Board {
	next := b
	from, to, flag := m.From(), m.To(), m.Flag()
	mover := next.squares[from]

	next.setEnPassant(SqNone)

	switch {
	case flag.IsCastle():
		kf, kt, rf, rt := castleSquares(mover.ColorOf(), flag)
		next.move(kf, kt)
		next.move(rf, rt)
	case flag == FlagEnPassant:
		capturedSq := SquareOf(to.FileOf(), from.RankOf())
		next.remove(capturedSq)
		next.move(from, to)
	case flag.IsPromotion():
		if flag.IsCapture() {
			next.remove(to)
		}
		next.remove(from)
		next.put(MakePiece(mover.ColorOf(), flag.PromotedTo()), to)
	default:
		if flag.IsCapture() {
			next.remove(to)
		}
		next.move(from, to)
		if flag == FlagDoublePawnPush {
			epSq := SquareOf(from.FileOf(), (from.RankOf()+to.RankOf())/2)
			next.setEnPassant(epSq)
		}
	}

	next.updateCastlingRights(from, to, mover)

	next.key ^= zobrist.sideToMove
	next.side = next.side.Flip()

	assert.Assert(next.Validate() == nil, "Apply produced an invalid board from %s playing %s", b.squares[from], m)

	// The O(1) king and occupancy checks stay on in every build.
	if next.kingSq[White] == next.kingSq[Black] ||
		next.byColor[White]&next.byColor[Black] != BbZero ||
		next.byColor[White]|next.byColor[Black] != next.occupied ||
		!next.byColor[White].Has(next.kingSq[White]) ||
		!next.byColor[Black].Has(next.kingSq[Black]) {
		panic(fmt.Sprintf("board: invariant violated after Apply playing %s", m))
	}

	return next
}

// FromFEN parses the four essential FEN fields (placement, side,
// castling, en-passant) and ignores or consumes the half-move/full-move
// counters if present, returning a ParseError on malformed input (spec
// §4.1, §7).
func FromFEN(fen string) (Board, error) {
	var b Board
	b.epSquare = SqNone

	fields := splitFields(fen)
	if len(fields) < 4 {
		return Board{}, fmt.Errorf("board: malformed FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	if err := b.placeFromFEN(fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return Board{}, fmt.Errorf("board: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling = b.castling.Add(WhiteOO)
			case 'Q':
				b.castling = b.castling.Add(WhiteOOO)
			case 'k':
				b.castling = b.castling.Add(BlackOO)
			case 'q':
				b.castling = b.castling.Add(BlackOOO)
			default:
				return Board{}, fmt.Errorf("board: malformed FEN %q: bad castling char %q", fen, ch)
			}
		}
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return Board{}, fmt.Errorf("board: malformed FEN %q: bad en-passant square %q", fen, fields[3])
		}
		b.epSquare = sq
	}

	b.key = b.computeZobristFromScratch()
	b.pawnKey = b.computePawnKeyFromScratch()
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

func (b *Board) computeZobristFromScratch() Key {
	var k Key
	for sq := Square(0); sq < SquareCount; sq++ {
		if p := b.squares[sq]; !p.IsNone() {
			k ^= pieceKey(p, sq)
		}
	}
	if b.side == Black {
		k ^= zobrist.sideToMove
	}
	k ^= castlingKey(b.castling)
	k ^= epKey(b.epSquare)
	return k
}

func (b *Board) computePawnKeyFromScratch() uint32 {
	var k uint32
	for sq := Square(0); sq < SquareCount; sq++ {
		p := b.squares[sq]
		switch p.KindOf() {
		case Pawn:
			k ^= pawnKingZobrist.pawn[p.ColorOf()][sq]
		case King:
			k ^= pawnKingZobrist.king[p.ColorOf()][sq]
		}
	}
	return k
}

func (b *Board) placeFromFEN(placement string) error {
	rank := Rank8
	file := FileA
	for _, ch := range placement {
		switch {
		case ch == '/':
			if file != FileH+1 {
				return fmt.Errorf("board: malformed FEN placement %q: rank ended early", placement)
			}
			rank--
			file = FileA
		case ch >= '1' && ch <= '8':
			file += File(ch - '0')
		default:
			pt, color, ok := pieceFromFEN(ch)
			if !ok {
				return fmt.Errorf("board: malformed FEN placement %q: bad piece char %q", placement, ch)
			}
			if !file.IsValid() || !rank.IsValid() {
				return fmt.Errorf("board: malformed FEN placement %q: out of bounds", placement)
			}
			b.put(MakePiece(color, pt), SquareOf(file, rank))
			file++
		}
	}
	return nil
}

func pieceFromFEN(ch rune) (PieceKind, Color, bool) {
	color := White
	c := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		c = ch - 'a' + 'A'
	}
	switch c {
	case 'P':
		return Pawn, color, true
	case 'N':
		return Knight, color, true
	case 'B':
		return Bishop, color, true
	case 'R':
		return Rook, color, true
	case 'Q':
		return Queen, color, true
	case 'K':
		return King, color, true
	default:
		return NoPieceKind, color, false
	}
}

// ToFEN renders b as a canonical FEN placement/side/castling/en-passant
// string (spec §4.1 "to_fen"). Half-move clock and full-move number are
// GameState concerns (spec §3), so ToFEN always emits "0 1" for them;
// game.State.FEN replaces them with the real counters.
func ToFEN(b Board) string {
	var s []byte
	for rank := Rank8; ; rank-- {
		empty := 0
		for file := FileA; file <= FileH; file++ {
			p := b.squares[SquareOf(file, rank)]
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				s = append(s, byte('0'+empty))
				empty = 0
			}
			s = append(s, p.Char())
		}
		if empty > 0 {
			s = append(s, byte('0'+empty))
		}
		if rank == Rank1 {
			break
		}
		s = append(s, '/')
	}
	s = append(s, ' ')
	s = append(s, []byte(b.side.String())...)
	s = append(s, ' ')
	s = append(s, []byte(b.castling.String())...)
	s = append(s, ' ')
	s = append(s, []byte(b.epSquare.String())...)
	s = append(s, " 0 1"...)
	return string(s)
}

func splitFields(s string) []string {
	var fields []string
	start := -1
	for i, ch := range s {
		if ch == ' ' {
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}
