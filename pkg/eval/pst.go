package eval

import "github.com/rookwise/rookwise/pkg/board"

// pst is a piece-square table in centipawns, authored with row 0 representing rank 8 (as chess
// diagrams are conventionally drawn) and row 7 representing rank 1. The same table serves both
// colors: White's back rank (board row 0) looks up table row 7, Black's back rank (board row 7)
// looks up table row 0 -- i.e. tableRow = 7 - boardRow for either color.
type pst [8][8]int

func tableRow(boardRow int) int {
	return 7 - boardRow
}

// lookup returns the table bonus for a piece standing at sq. The same flip serves both
// colors -- see the pst doc comment.
func (t pst) lookup(sq board.Square) int {
	return t[tableRow(sq.Row)][sq.Col]
}

var pawnTable = pst{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = pst{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = pst{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = pst{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var queenTable = pst{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingMiddlegameTable = pst{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var kingEndgameTable = pst{
	{-50, -40, -30, -20, -20, -30, -40, -50},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-50, -30, -30, -30, -30, -30, -30, -50},
}

func tableFor(k board.Kind, endgame bool) pst {
	switch k {
	case board.Pawn:
		return pawnTable
	case board.Knight:
		return knightTable
	case board.Bishop:
		return bishopTable
	case board.Rook:
		return rookTable
	case board.Queen:
		return queenTable
	case board.King:
		if endgame {
			return kingEndgameTable
		}
		return kingMiddlegameTable
	default:
		return pst{}
	}
}

// PieceSquare returns the piece-square component of the static evaluation, signed by color and
// summed over every piece on the board.
func PieceSquare(pos *board.Position, endgame bool) Score {
	var total Score
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := board.Square{Row: row, Col: col}
			pc, ok := pos.PieceAt(sq)
			if !ok {
				continue
			}
			total += Score(tableFor(pc.Kind, endgame).lookup(sq)) * Unit(pc.Color)
		}
	}
	return total
}
