package board

// HasInsufficientMaterial reports whether the position is a dead draw by material alone:
// K vs K; K vs K+N or K vs K+B; or K+B vs K+B with both bishops on same-colored squares. Any
// pawn, rook, or queen on either side, or more than one minor piece per side, disables the rule.
func (p *Position) HasInsufficientMaterial() bool {
	white := p.minorPieceSurvey(White)
	black := p.minorPieceSurvey(Black)
	if white == nil || black == nil {
		return false
	}

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 1 && len(black) == 0:
		return white[0].Kind != Rook
	case len(white) == 0 && len(black) == 1:
		return black[0].Kind != Rook
	case len(white) == 1 && len(black) == 1:
		if white[0].Kind != Bishop || black[0].Kind != Bishop {
			return false
		}
		return white[0].square.IsLight() == black[0].square.IsLight()
	default:
		return false
	}
}

type survey struct {
	Kind   Kind
	square Square
}

// minorPieceSurvey returns the non-king pieces for the color, or nil if the color has a pawn,
// rook, queen, or more than one minor piece -- any of which disables the insufficient-material
// rule outright.
func (p *Position) minorPieceSurvey(c Color) []survey {
	var pieces []survey
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := Square{Row: row, Col: col}
			pc, ok := p.PieceAt(sq)
			if !ok || pc.Color != c || pc.Kind == King {
				continue
			}
			switch pc.Kind {
			case Pawn, Rook, Queen:
				return nil
			case Knight, Bishop:
				if len(pieces) >= 1 {
					return nil
				}
				pieces = append(pieces, survey{Kind: pc.Kind, square: sq})
			}
		}
	}
	return pieces
}
