package board

import "strings"

// ToAlgebraic renders m in Standard Algebraic Notation: castling as
// "O-O"/"O-O-O", piece letters K/Q/R/B/N for non-pawns, pawn captures include the origin file,
// destination in "a1".."h8", promotion as "=Q"/"=R"/"=B"/"=N", check suffix "+", mate suffix
// "#". Full disambiguation beyond the pawn-capture file is not required.
func ToAlgebraic(m Move) string {
	var sb strings.Builder

	switch m.Kind {
	case CastlingKingside:
		sb.WriteString("O-O")
	case CastlingQueenside:
		sb.WriteString("O-O-O")
	default:
		if m.Moved.Kind != Pawn {
			sb.WriteString(m.Moved.Kind.Symbol())
		}
		if m.Moved.Kind == Pawn && m.IsCapture() {
			sb.WriteByte('a' + byte(m.From.Col))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Kind == Promotion {
			sb.WriteByte('=')
			sb.WriteString(m.PromotionKind.Symbol())
		}
	}

	if m.CausesCheckmate {
		sb.WriteByte('#')
	} else if m.CausesCheck {
		sb.WriteByte('+')
	}
	return sb.String()
}
