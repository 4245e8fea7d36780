package board_test

import (
	"testing"

	"github.com/rookwise/rookwise/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyIsIndependent(t *testing.T) {
	g := board.NewGame()
	original := g.Position()
	cp := original.Copy()

	m, ok := findMove(cp.LegalMoves(board.White), sq(t, "e2"), sq(t, "e4"))
	require.True(t, ok)
	cp.Apply(m)

	assert.True(t, original.IsEmpty(sq(t, "e4")), "mutating the copy must not affect the original")
	pc, present := original.PieceAt(sq(t, "e2"))
	assert.True(t, present)
	assert.Equal(t, board.Pawn, pc.Kind)
}

func TestKingSquareCacheTracksKingMoves(t *testing.T) {
	pos := board.NewEmptyPosition()
	pos.Place(sq(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	pos.Place(sq(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})

	m, ok := findMove(pos.PseudoLegalMovesFrom(sq(t, "e1")), sq(t, "e1"), sq(t, "e2"))
	require.True(t, ok)
	pos.Apply(m)

	assert.Equal(t, sq(t, "e2"), pos.KingSquare(board.White))
}

func TestKingSquareCacheTracksCastling(t *testing.T) {
	pos := board.NewEmptyPosition()
	pos.Place(sq(t, "e1"), board.Piece{Kind: board.King, Color: board.White})
	pos.Place(sq(t, "h1"), board.Piece{Kind: board.Rook, Color: board.White})
	pos.Place(sq(t, "e8"), board.Piece{Kind: board.King, Color: board.Black})

	m, ok := findMove(pos.LegalMoves(board.White), sq(t, "e1"), sq(t, "g1"))
	require.True(t, ok)
	pos.Apply(m)

	assert.Equal(t, sq(t, "g1"), pos.KingSquare(board.White))
	rook, present := pos.PieceAt(sq(t, "f1"))
	require.True(t, present)
	assert.Equal(t, board.Rook, rook.Kind)
	assert.True(t, rook.HasMoved)
}

func TestMoveEqualityAndKeyIgnoreSnapshots(t *testing.T) {
	a := board.Move{From: sq(t, "e2"), To: sq(t, "e4"), Moved: board.Piece{Kind: board.Pawn, Color: board.White}}
	b := board.Move{From: sq(t, "e2"), To: sq(t, "e4"), Moved: board.Piece{Kind: board.Pawn, Color: board.White, HasMoved: true}, CausesCheck: true}

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Key(), b.Key())

	c := board.Move{From: sq(t, "e2"), To: sq(t, "e5"), Moved: a.Moved}
	assert.False(t, a.Equals(c))
}

func TestSquareAttackedByEachPieceKind(t *testing.T) {
	target := sq(t, "e4")

	tests := []struct {
		name string
		kind board.Kind
		from string
	}{
		{"pawn", board.Pawn, "d3"},
		{"knight", board.Knight, "c3"},
		{"bishop", board.Bishop, "c2"},
		{"rook", board.Rook, "e1"},
		{"queen", board.Queen, "a4"},
		{"king", board.King, "d4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := board.NewEmptyPosition()
			pos.Place(sq(t, tt.from), board.Piece{Kind: tt.kind, Color: board.White})
			assert.True(t, pos.SquareAttacked(target, board.White), "%v at %v should attack %v", tt.kind, tt.from, target)
		})
	}
}
