// Package eval implements static position evaluation: material, piece-square tables, central
// control and king safety.
package eval

import "github.com/rookwise/rookwise/pkg/board"

var centerSquares = []board.Square{{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 3}, {Row: 4, Col: 4}}

const (
	centerPawnBonus = 20
	centerOtherBonus = 10
	kingShieldBonus  = 15
	// kingShieldThreshold: king safety is only scored while the opponent retains non-pawn,
	// non-king material worth more than this many pawn units.
	kingShieldThreshold = 10
)

// Evaluate returns the static score from sideToMove's perspective: material +
// piece-square tables + central pawns + king pawn shield, flipped positive-for-side-to-move.
func Evaluate(pos *board.Position, sideToMove board.Color, endgame bool) Score {
	score := Material(pos) + PieceSquare(pos, endgame) + centralControl(pos) + kingSafety(pos)
	if sideToMove == board.Black {
		score = -score
	}
	return score
}

// centralControl scores occupancy of the four center squares (d4/e4/d5/e5): +20 for a same-side
// pawn, +10 for any other own piece, signed by color.
func centralControl(pos *board.Position) Score {
	var total Score
	for _, sq := range centerSquares {
		pc, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		bonus := centerOtherBonus
		if pc.Kind == board.Pawn {
			bonus = centerPawnBonus
		}
		total += Score(bonus) * Unit(pc.Color)
	}
	return total
}

// kingSafety scores the pawn shield directly in front of each king, three squares one rank
// toward the opponent, +15 per friendly pawn found. Only applied while the opposing side still
// holds non-pawn/non-king material worth more than kingShieldThreshold pawn units -- once the
// opponent has traded down, an exposed king is not automatically unsafe.
func kingSafety(pos *board.Position) Score {
	var total Score
	if nonPawnMaterial(pos, board.Black) > kingShieldThreshold {
		total += Score(pawnShieldCount(pos, pos.KingSquare(board.White), board.White)) * kingShieldBonus
	}
	if nonPawnMaterial(pos, board.White) > kingShieldThreshold {
		total -= Score(pawnShieldCount(pos, pos.KingSquare(board.Black), board.Black)) * kingShieldBonus
	}
	return total
}

func pawnShieldCount(pos *board.Position, king board.Square, c board.Color) int {
	count := 0
	dir := c.PawnDirection()
	for _, dc := range []int{-1, 0, 1} {
		sq, ok := king.Offset(dir, dc)
		if !ok {
			continue
		}
		if pc, present := pos.PieceAt(sq); present && pc.Color == c && pc.Kind == board.Pawn {
			count++
		}
	}
	return count
}

// nonPawnMaterial sums the material value (pawn units) of the color's non-pawn, non-king pieces.
func nonPawnMaterial(pos *board.Position, c board.Color) int {
	total := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pc, ok := pos.PieceAt(board.Square{Row: row, Col: col})
			if !ok || pc.Color != c || pc.Kind == board.Pawn || pc.Kind == board.King {
				continue
			}
			total += pc.Kind.Value()
		}
	}
	return total
}
