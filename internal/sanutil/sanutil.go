// Package sanutil renders moves in short algebraic notation for PV
// diagnostics (spec §1 scope: a thin rendering helper, not a full SAN
// parser), grounded on the teacher's move-to-string helpers in
// internal/moveslice and internal/types/move.go.
package sanutil

import (
	"strings"

	"github.com/aharrow/plychess/internal/board"
	"github.com/aharrow/plychess/internal/movegen"
	. "github.com/aharrow/plychess/internal/types"
)

// Move renders m, played from position b, in short algebraic notation.
// It disambiguates by file, then rank, then both, only as far as the
// other legal moves sharing the destination square require.
func Move(b board.Board, m Move) string {
	if m.Flag().IsCastle() {
		if m.Flag() == FlagCastleKing {
			return "O-O"
		}
		return "O-O-O"
	}

	mover := b.PieceAt(m.From())
	kind := mover.KindOf()
	var s strings.Builder

	if kind != Pawn {
		s.WriteByte(kindLetter(kind))
		s.WriteString(disambiguate(b, m, kind))
	}
	if m.Flag().IsCapture() {
		if kind == Pawn {
			s.WriteByte(m.From().FileOf().String()[0])
		}
		s.WriteByte('x')
	}
	s.WriteString(m.To().String())
	if m.Flag().IsPromotion() {
		s.WriteByte('=')
		s.WriteByte(kindLetter(m.Flag().PromotedTo()))
	}

	next := board.Apply(b, m)
	if next.IsAttacked(next.KingSquare(next.Side()), next.Side().Flip()) {
		if movegen.Generate(next).Len() == 0 {
			s.WriteByte('#')
		} else {
			s.WriteByte('+')
		}
	}
	return s.String()
}

func kindLetter(pt PieceKind) byte {
	switch pt {
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return '?'
	}
}

// disambiguate returns the minimal from-square prefix needed to tell m
// apart from any other legal move of the same piece kind landing on the
// same square.
func disambiguate(b board.Board, m Move, kind PieceKind) string {
	sameFile, sameRank, other := false, false, false
	for _, cand := range movegen.Generate(b) {
		if cand.To() != m.To() || cand.From() == m.From() {
			continue
		}
		if b.PieceAt(cand.From()).KindOf() != kind {
			continue
		}
		other = true
		if cand.From().FileOf() == m.From().FileOf() {
			sameFile = true
		}
		if cand.From().RankOf() == m.From().RankOf() {
			sameRank = true
		}
	}
	if !other {
		return ""
	}
	switch {
	case !sameFile:
		return m.From().String()[:1]
	case !sameRank:
		return m.From().String()[1:]
	default:
		return m.From().String()
	}
}
