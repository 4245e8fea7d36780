package eval

import "github.com/rookwise/rookwise/pkg/board"

// endgamePieceLimit is the total piece count (both colors, all kinds including kings) at or
// below which IsEndgame reports true.
const endgamePieceLimit = 12

// IsEndgame is a pure function of the board: true when the total number of pieces on the board
// is at most 12. It is recomputed at every static evaluation rather than cached on the game,
// so it never goes stale across promotions or captures.
func IsEndgame(pos *board.Position) bool {
	return countPieces(pos) <= endgamePieceLimit
}

func countPieces(pos *board.Position) int {
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if _, ok := pos.PieceAt(board.Square{Row: row, Col: col}); ok {
				n++
			}
		}
	}
	return n
}
