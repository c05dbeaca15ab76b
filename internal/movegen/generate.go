package movegen

import (
	"github.com/aharrow/plychess/internal/attacks"
	"github.com/aharrow/plychess/internal/board"
	"github.com/aharrow/plychess/internal/moveslice"
	. "github.com/aharrow/plychess/internal/types"
)

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// Generate returns every legal move available to the side to move in
// b. It never produces a move that leaves that side's own king in
// check (spec §4.3).
func Generate(b board.Board) moveslice.MoveSlice {
	side := b.Side()
	opp := side.Flip()
	a := analyze(&b, side)

	moves := moveslice.New(48)

	generateKingMoves(&b, side, opp, &moves)
	if a.doubleCheck {
		return moves
	}
	if a.checkers == BbZero {
		generateCastling(&b, side, opp, &moves)
	}
	generatePawnMoves(&b, side, opp, a, &moves)
	generateSliderOrLeaper(&b, side, opp, Knight, a, &moves)
	generateSliderOrLeaper(&b, side, opp, Bishop, a, &moves)
	generateSliderOrLeaper(&b, side, opp, Rook, a, &moves)
	generateSliderOrLeaper(&b, side, opp, Queen, a, &moves)

	return moves
}

func generateKingMoves(b *board.Board, side, opp Color, moves *moveslice.MoveSlice) {
	king := b.KingSquare(side)
	occWithoutKing := b.Occupied().Clear(king)
	destinations := attacks.KingAttacks(king) &^ b.ColorBb(side)

	for destinations != BbZero {
		to := destinations.PopLsb()
		if b.IsAttackedOn(to, opp, occWithoutKing) {
			continue
		}
		flag := FlagQuiet
		if b.ColorBb(opp).Has(to) {
			flag = FlagCapture
		}
		moves.PushBack(NewMove(king, to, flag))
	}
}

func generateCastling(b *board.Board, side, opp Color, moves *moveslice.MoveSlice) {
	rank := Rank1
	if side == Black {
		rank = Rank8
	}
	king := SquareOf(FileE, rank)
	occ := b.Occupied()

	if b.Castling().Has(KingsideRight(side)) {
		f := SquareOf(FileF, rank)
		g := SquareOf(FileG, rank)
		if !occ.Has(f) && !occ.Has(g) &&
			!b.IsAttackedOn(f, opp, occ) && !b.IsAttackedOn(g, opp, occ) {
			moves.PushBack(NewMove(king, g, FlagCastleKing))
		}
	}
	if b.Castling().Has(QueensideRight(side)) {
		d := SquareOf(FileD, rank)
		c := SquareOf(FileC, rank)
		bFile := SquareOf(FileB, rank)
		if !occ.Has(d) && !occ.Has(c) && !occ.Has(bFile) &&
			!b.IsAttackedOn(d, opp, occ) && !b.IsAttackedOn(c, opp, occ) {
			moves.PushBack(NewMove(king, c, FlagCastleQueen))
		}
	}
}

func generateSliderOrLeaper(b *board.Board, side, opp Color, pt PieceKind, a analysis, moves *moveslice.MoveSlice) {
	occ := b.Occupied()
	pieces := b.PiecesBb(side, pt)
	for pieces != BbZero {
		from := pieces.PopLsb()
		destinations := attacks.Of(pt, from, occ) &^ b.ColorBb(side)
		destinations &= a.checkMask
		destinations &= a.pinMask[from]
		for destinations != BbZero {
			to := destinations.PopLsb()
			flag := FlagQuiet
			if b.ColorBb(opp).Has(to) {
				flag = FlagCapture
			}
			moves.PushBack(NewMove(from, to, flag))
		}
	}
}

func generatePawnMoves(b *board.Board, side, opp Color, a analysis, moves *moveslice.MoveSlice) {
	occ := b.Occupied()
	pawns := b.PiecesBb(side, Pawn)
	king := b.KingSquare(side)

	for pawns != BbZero {
		from := pawns.PopLsb()
		pin := a.pinMask[from]

		singleTo := attacks.PawnSinglePush(side, from) &^ occ
		if singleTo != BbZero {
			to := singleTo.Lsb()
			if a.checkMask.Has(to) && pin.Has(to) {
				addPawnAdvance(moves, side, from, to, FlagQuiet)
			}
			doubleTo := attacks.PawnDoublePush(side, from) &^ occ
			if doubleTo != BbZero {
				to2 := doubleTo.Lsb()
				if a.checkMask.Has(to2) && pin.Has(to2) {
					moves.PushBack(NewMove(from, to2, FlagDoublePawnPush))
				}
			}
		}

		captures := attacks.PawnAttacks(side, from) & b.ColorBb(opp) & a.checkMask & pin
		for captures != BbZero {
			to := captures.PopLsb()
			addPawnAdvance(moves, side, from, to, FlagCapture)
		}

		if ep := b.EnPassant(); ep != SqNone && attacks.PawnAttacks(side, from).Has(ep) {
			if enPassantSafe(b, side, opp, from, ep, king) {
				moves.PushBack(NewMove(from, ep, FlagEnPassant))
			}
		}
	}
}

// addPawnAdvance appends either a single move, or all four promotion
// variants if to lands on the back rank.
func addPawnAdvance(moves *moveslice.MoveSlice, side Color, from, to Square, flag MoveFlag) {
	if to.RankOf() == PromotionRank(side) {
		capture := flag == FlagCapture
		for _, pt := range promotionKinds {
			moves.PushBack(NewMove(from, to, PromotionFlag(pt, capture)))
		}
		return
	}
	moves.PushBack(NewMove(from, to, flag))
}

// enPassantSafe simulates the capture (both pawns removed, capturer on
// the target square) and checks whether the king is left attacked. This
// single occupancy simulation covers three en-passant cases: a capture
// that does not resolve an existing non-pawn check is rejected, a
// capture of the pawn that was the sole checker is allowed (the
// captured pawn is masked out of the attackers), and the classic
// same-rank discovered check where removing both pawns exposes the king
// to a rook or queen is rejected (spec §4.3 edge case).
func enPassantSafe(b *board.Board, side, opp Color, from, epSq, king Square) bool {
	capturedSq := SquareOf(epSq.FileOf(), from.RankOf())
	occ := b.Occupied().Clear(from).Clear(capturedSq).Set(epSq)
	return b.AttackersTo(king, occ)&b.ColorBb(opp)&occ == BbZero
}
