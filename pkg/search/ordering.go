package search

import (
	"sort"

	"github.com/rookwise/rookwise/pkg/board"
)

// mvvLva scores a capture by "most valuable victim, least valuable attacker": 10*value(victim)
// - value(attacker), descending.
func mvvLva(m board.Move) int {
	if !m.IsCapture() {
		return 0
	}
	return 10*m.Captured.Kind.Value() - m.Moved.Kind.Value()
}

// orderMoves sorts moves for negamax by descending priority: the
// transposition-table best move first, then captures by MVV-LVA, then killer moves (slot 0
// above slot 1), then the rest in generation order. Sort is stable so "remaining moves in
// generation order" is preserved for ties.
func orderMoves(moves []board.Move, ttMove board.Move, hasTTMove bool, killers *killerTable, ply int) {
	rank := func(m board.Move) int {
		if hasTTMove && m.Equals(ttMove) {
			return 1_000_000
		}
		if m.IsCapture() {
			return 100_000 + mvvLva(m)
		}
		switch killers.Rank(ply, m) {
		case 2:
			return 2_000
		case 1:
			return 1_000
		default:
			return 0
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return rank(moves[i]) > rank(moves[j])
	})
}

// orderCaptures sorts a capture-only list by MVV-LVA, descending, for quiescence search.
func orderCaptures(moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return mvvLva(moves[i]) > mvvLva(moves[j])
	})
}

func capturesOnly(moves []board.Move) []board.Move {
	out := moves[:0:0]
	for _, m := range moves {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}
