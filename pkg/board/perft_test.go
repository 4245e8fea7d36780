package board_test

import (
	"testing"

	"github.com/rookwise/rookwise/pkg/board"
	"github.com/stretchr/testify/assert"
)

// perft counts leaf nodes of the legal-move tree to a fixed depth: any
// deviation from the standard initial-position counts is a move-generation bug.
func perft(pos *board.Position, turn board.Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range pos.LegalMoves(turn) {
		cp := pos.Copy()
		cp.Apply(m)
		nodes += perft(cp, turn.Opponent(), depth-1)
	}
	return nodes
}

func TestPerftFromInitialPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tt := range tests {
		g := board.NewGame()
		got := perft(g.Position(), g.CurrentTurn(), tt.depth)
		assert.Equal(t, tt.expected, got, "perft(%v)", tt.depth)
	}
}
