package eval

import "github.com/rookwise/rookwise/pkg/board"

// Material returns the material balance from White's perspective, in centipawns: piece value
// (pawn units) times 100, signed by color (positive favors White), summed over the whole board.
func Material(pos *board.Position) Score {
	var total Score
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pc, ok := pos.PieceAt(board.Square{Row: row, Col: col})
			if !ok {
				continue
			}
			total += Score(pc.Kind.Value()*100) * Unit(pc.Color)
		}
	}
	return total
}
