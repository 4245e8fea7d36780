package eval_test

import (
	"testing"

	"github.com/rookwise/rookwise/pkg/board"
	"github.com/rookwise/rookwise/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateIsSymmetricInSideToMove(t *testing.T) {
	positions := []*board.Position{
		startingPosition(t),
		kingAndPawnEndgame(t),
	}

	for _, pos := range positions {
		endgame := eval.IsEndgame(pos)
		white := eval.Evaluate(pos, board.White, endgame)
		black := eval.Evaluate(pos, board.Black, endgame)
		assert.Equal(t, white, -black, "evaluate must flip sign with side to move")
	}
}

func TestMaterialIsZeroAtStartingPosition(t *testing.T) {
	pos := startingPosition(t)
	assert.Equal(t, eval.Score(0), eval.Material(pos))
}

func TestMaterialFavorsExtraQueen(t *testing.T) {
	pos := board.NewEmptyPosition()
	pos.Place(square(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	pos.Place(square(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})
	pos.Place(square(t, "d1"), board.Piece{Kind: board.Queen, Color: board.White})

	assert.Equal(t, eval.Score(900), eval.Material(pos))
}

func TestIsEndgameCountsAllPieces(t *testing.T) {
	pos := startingPosition(t)
	assert.False(t, eval.IsEndgame(pos))

	bare := board.NewEmptyPosition()
	bare.Place(square(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	bare.Place(square(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})
	assert.True(t, eval.IsEndgame(bare))
}

func TestCentralPawnBonusIsSignedByColor(t *testing.T) {
	bare := board.NewEmptyPosition()
	bare.Place(square(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	bare.Place(square(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})
	baseline := eval.Evaluate(bare, board.White, true)

	withWhitePawn := bare.Copy()
	withWhitePawn.Place(square(t, "d4"), board.Piece{Kind: board.Pawn, Color: board.White})
	withBlackPawn := bare.Copy()
	withBlackPawn.Place(square(t, "d4"), board.Piece{Kind: board.Pawn, Color: board.Black})

	whiteDelta := eval.Evaluate(withWhitePawn, board.White, true) - baseline
	blackDelta := eval.Evaluate(withBlackPawn, board.White, true) - baseline
	assert.Greater(t, whiteDelta, eval.Score(0), "a white pawn on d4 must raise White's score")
	assert.Equal(t, whiteDelta, -blackDelta, "the same pawn for Black must be the mirror penalty")
}

func square(t *testing.T, alg string) board.Square {
	t.Helper()
	s, err := board.ParseSquare(alg)
	if err != nil {
		t.Fatalf("bad square %q: %v", alg, err)
	}
	return s
}

func startingPosition(t *testing.T) *board.Position {
	t.Helper()
	return board.NewGame().Position()
}

func kingAndPawnEndgame(t *testing.T) *board.Position {
	pos := board.NewEmptyPosition()
	pos.Place(square(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	pos.Place(square(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})
	pos.Place(square(t, "a2"), board.Piece{Kind: board.Pawn, Color: board.White})
	pos.Place(square(t, "h7"), board.Piece{Kind: board.Pawn, Color: board.Black})
	return pos
}
