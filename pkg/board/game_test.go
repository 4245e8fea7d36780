package board_test

import (
	"testing"

	"github.com/rookwise/rookwise/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyAlgebraic(t *testing.T, g *board.Game, from, to string) {
	t.Helper()
	m, ok := findMove(g.LegalMovesFrom(sq(t, from)), sq(t, from), sq(t, to))
	require.True(t, ok, "expected %v%v to be legal", from, to)
	require.True(t, g.Apply(m))
}

func TestFoolsMate(t *testing.T) {
	g := board.NewGame()
	applyAlgebraic(t, g, "f2", "f3")
	applyAlgebraic(t, g, "e7", "e5")
	applyAlgebraic(t, g, "g2", "g4")
	applyAlgebraic(t, g, "d8", "h4")

	assert.Equal(t, board.BlackMatesWhite, g.Status())
	assert.Contains(t, g.StatusMessage(), "black")
}

func TestCastlingEligibilityLostAfterKingMoves(t *testing.T) {
	g := board.NewGame()
	_, ok := findMove(g.LegalMoves(), sq(t, "e1"), sq(t, "g1"))
	assert.False(t, ok, "castling is never legal from the opening position: pieces block it")

	applyAlgebraic(t, g, "e2", "e4")
	applyAlgebraic(t, g, "e7", "e5")
	applyAlgebraic(t, g, "e1", "e2") // king steps out
	applyAlgebraic(t, g, "b8", "c6")
	applyAlgebraic(t, g, "e2", "e1") // and back
	applyAlgebraic(t, g, "c6", "b8")
	applyAlgebraic(t, g, "g1", "f3")
	applyAlgebraic(t, g, "b8", "c6")
	applyAlgebraic(t, g, "f1", "e2")
	applyAlgebraic(t, g, "c6", "b8")

	_, offered := findMove(g.LegalMoves(), sq(t, "e1"), sq(t, "g1"))
	assert.False(t, offered, "kingside castling must stay unavailable once the king has moved")
}

func TestCastlingOfferedWhenPathClearAndSafe(t *testing.T) {
	pos := board.NewEmptyPosition()
	pos.Place(sq(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	pos.Place(sq(t, "h1"), board.Piece{Kind: board.Rook, Color: board.White})
	pos.Place(sq(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})

	_, ok := findMove(pos.LegalMoves(board.White), sq(t, "e1"), sq(t, "g1"))
	assert.True(t, ok)
}

func TestEnPassantEndToEnd(t *testing.T) {
	g := board.NewGame()
	applyAlgebraic(t, g, "e2", "e4")
	applyAlgebraic(t, g, "a7", "a6")
	applyAlgebraic(t, g, "e4", "e5")
	applyAlgebraic(t, g, "d7", "d5")

	require.True(t, g.Position().HasEnPassant)
	assert.Equal(t, sq(t, "d6"), g.Position().EnPassant)

	capture, ok := findMove(g.LegalMovesFrom(sq(t, "e5")), sq(t, "e5"), sq(t, "d6"))
	require.True(t, ok, "e5xd6 en passant must be legal")
	assert.Equal(t, board.EnPassant, capture.Kind)

	require.True(t, g.Apply(capture))
	assert.True(t, g.Position().IsEmpty(sq(t, "d5")))
}

func TestThreefoldRepetition(t *testing.T) {
	// The starting position is already the first occurrence in position history; two more
	// "out and back" knight cycles bring the same fingerprint to a third occurrence.
	g := board.NewGame()
	for i := 0; i < 2; i++ {
		applyAlgebraic(t, g, "g1", "f3")
		applyAlgebraic(t, g, "g8", "f6")
		applyAlgebraic(t, g, "f3", "g1")
		applyAlgebraic(t, g, "f6", "g8")
	}

	assert.Equal(t, board.DrawThreefold, g.Status())
}

func TestInsufficientMaterialKingAndBishopEach(t *testing.T) {
	pos := board.NewEmptyPosition()
	pos.Place(sq(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	pos.Place(sq(t, "f1"), board.Piece{Kind: board.Bishop, Color: board.White}) // light square
	pos.Place(sq(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})
	pos.Place(sq(t, "c8"), board.Piece{Kind: board.Bishop, Color: board.Black}) // light square

	assert.True(t, pos.HasInsufficientMaterial())
}

func TestSufficientMaterialWithOppositeColoredBishops(t *testing.T) {
	pos := board.NewEmptyPosition()
	pos.Place(sq(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	pos.Place(sq(t, "f1"), board.Piece{Kind: board.Bishop, Color: board.White}) // light
	pos.Place(sq(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})
	pos.Place(sq(t, "d8"), board.Piece{Kind: board.Bishop, Color: board.Black}) // dark

	assert.False(t, pos.HasInsufficientMaterial())
}

func TestHalfMoveClockIncrementsOnQuietMovesAndResetsOnPawnMove(t *testing.T) {
	g := board.NewGame()
	assert.Equal(t, 0, g.HalfMoveClock())

	applyAlgebraic(t, g, "g1", "f3")
	assert.Equal(t, 1, g.HalfMoveClock())
	applyAlgebraic(t, g, "g8", "f6")
	assert.Equal(t, 2, g.HalfMoveClock())
	applyAlgebraic(t, g, "f3", "g1")
	assert.Equal(t, 3, g.HalfMoveClock())
	applyAlgebraic(t, g, "f6", "g8")
	assert.Equal(t, 4, g.HalfMoveClock())

	applyAlgebraic(t, g, "e2", "e4")
	assert.Equal(t, 0, g.HalfMoveClock(), "a pawn push must reset the clock")
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	g := board.NewGame()
	illegal := board.Move{From: sq(t, "e2"), To: sq(t, "e5")}
	assert.False(t, g.Apply(illegal))
	assert.Equal(t, board.InProgress, g.Status())
}

func TestApplyRejectedAfterGameOver(t *testing.T) {
	g := board.NewGame()
	require.True(t, g.Resign(board.White))
	assert.False(t, g.Resign(board.Black))
	assert.False(t, g.AgreeDraw())

	tryApplyAny := func() bool {
		for _, m := range g.LegalMoves() {
			return g.Apply(m)
		}
		return false
	}
	assert.False(t, tryApplyAny())
}
