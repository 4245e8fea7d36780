package board

import (
	"strings"
)

// Position represents a chess board position: the 64-square placement grid plus the
// en-passant target square and cached king squares. It does not track side to move, move
// history or draw-condition clocks -- that is Game's responsibility.
//
// Invariants: exactly one king of each color exists on the grid; WhiteKing/BlackKing agree
// with the grid; EnPassant, if set, sits on row 2 or 5 and the square directly behind it (from
// the mover's perspective) holds an enemy pawn that just advanced two squares.
type Position struct {
	grid [8][8]Piece
	set  [8][8]bool

	EnPassant    Square
	HasEnPassant bool

	WhiteKing Square
	BlackKing Square
}

// NewEmptyPosition returns a Position with no pieces placed. Callers place pieces via Place
// before using it; an empty Position violates the "exactly one king" invariant until both
// kings are placed.
func NewEmptyPosition() *Position {
	return &Position{}
}

// Place puts a piece on a square, unconditionally. Used for setup only -- not a move operation.
func (p *Position) Place(sq Square, piece Piece) {
	p.grid[sq.Row][sq.Col] = piece
	p.set[sq.Row][sq.Col] = true
	if piece.Kind == King {
		if piece.Color == White {
			p.WhiteKing = sq
		} else {
			p.BlackKing = sq
		}
	}
}

// Clear empties a square.
func (p *Position) Clear(sq Square) {
	p.set[sq.Row][sq.Col] = false
	p.grid[sq.Row][sq.Col] = Piece{}
}

// PieceAt returns the piece on the square and whether one is present.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !p.set[sq.Row][sq.Col] {
		return Piece{}, false
	}
	return p.grid[sq.Row][sq.Col], true
}

// IsEmpty reports whether the square holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.set[sq.Row][sq.Col]
}

// KingSquare returns the cached king square for the color.
func (p *Position) KingSquare(c Color) Square {
	if c == White {
		return p.WhiteKing
	}
	return p.BlackKing
}

// Copy returns an independent Position with pieces copied by value. Mutating the copy never
// affects the original -- this is what Search recurses over.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// Apply mutates the position in place according to the move's kind. It does not validate
// legality or even pseudo-legality -- the caller (Game, move generation's own legality probe,
// or Search) is responsible for only applying moves it trusts.
func (p *Position) Apply(m Move) {
	mover := m.Moved
	mover.HasMoved = true

	switch m.Kind {
	case DoublePawnPush:
		p.Clear(m.From)
		p.Place(m.To, mover)
		p.EnPassant = Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
		p.HasEnPassant = true
		return

	case EnPassant:
		p.Clear(m.From)
		p.Place(m.To, mover)
		p.Clear(Square{Row: m.From.Row, Col: m.To.Col})

	case Promotion:
		p.Clear(m.From)
		promoted := Piece{Kind: m.PromotionKind, Color: mover.Color, HasMoved: true}
		p.Place(m.To, promoted)

	case CastlingKingside, CastlingQueenside:
		p.Clear(m.From)
		p.Place(m.To, mover)

		rookFrom, rookTo := castlingRookSquares(m.Kind, mover.Color)
		rook, _ := p.PieceAt(rookFrom)
		rook.HasMoved = true
		p.Clear(rookFrom)
		p.Place(rookTo, rook)

	default: // Normal
		p.Clear(m.From)
		p.Place(m.To, mover)
	}

	p.HasEnPassant = false
}

// castlingRookSquares returns the rook's origin and destination for a castling move.
func castlingRookSquares(kind MoveKind, c Color) (Square, Square) {
	row := c.BackRank()
	if kind == CastlingKingside {
		return Square{Row: row, Col: 7}, Square{Row: row, Col: 5}
	}
	return Square{Row: row, Col: 0}, Square{Row: row, Col: 3}
}

// SquareAttacked reports whether sq is attacked by a piece of the given color.
func (p *Position) SquareAttacked(sq Square, by Color) bool {
	dir := -by.PawnDirection() // look from the attacker's direction of travel
	for _, dc := range []int{-1, 1} {
		if from, ok := sq.Offset(dir, dc); ok {
			if pc, present := p.PieceAt(from); present && pc.Color == by && pc.Kind == Pawn {
				return true
			}
		}
	}

	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok {
			if pc, present := p.PieceAt(from); present && pc.Color == by && pc.Kind == Knight {
				return true
			}
		}
	}

	for _, off := range kingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok {
			if pc, present := p.PieceAt(from); present && pc.Color == by && pc.Kind == King {
				return true
			}
		}
	}

	for _, dir := range bishopDirections {
		if p.rayAttacked(sq, dir, by, Bishop) {
			return true
		}
	}
	for _, dir := range rookDirections {
		if p.rayAttacked(sq, dir, by, Rook) {
			return true
		}
	}
	return false
}

// rayAttacked slides from sq along dir until blocked, returning true iff the first occupied
// square belongs to the attacker and matches kind or Queen.
func (p *Position) rayAttacked(sq Square, dir [2]int, by Color, kind Kind) bool {
	cur := sq
	for {
		next, ok := cur.Offset(dir[0], dir[1])
		if !ok {
			return false
		}
		if pc, present := p.PieceAt(next); present {
			return pc.Color == by && (pc.Kind == kind || pc.Kind == Queen)
		}
		cur = next
	}
}

// IsInCheck reports whether the color's king is currently attacked.
func (p *Position) IsInCheck(c Color) bool {
	return p.SquareAttacked(p.KingSquare(c), c.Opponent())
}

var knightOffsets = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingOffsets = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var bishopDirections = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirections = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// CastlingRights derives the current castling bitmask from has-moved state and piece presence:
// a side has kingside/queenside rights iff its king has not moved and the relevant rook is
// present on its home square, same color, and has not moved.
func (p *Position) CastlingRights() Castling {
	var rights Castling
	if p.hasCastlingRight(White, CastlingKingside) {
		rights |= WhiteKingside
	}
	if p.hasCastlingRight(White, CastlingQueenside) {
		rights |= WhiteQueenside
	}
	if p.hasCastlingRight(Black, CastlingKingside) {
		rights |= BlackKingside
	}
	if p.hasCastlingRight(Black, CastlingQueenside) {
		rights |= BlackQueenside
	}
	return rights
}

func (p *Position) hasCastlingRight(c Color, side MoveKind) bool {
	king, ok := p.PieceAt(p.KingSquare(c))
	if !ok || king.Kind != King || king.HasMoved {
		return false
	}
	row := c.BackRank()
	rookCol := 7
	if side == CastlingQueenside {
		rookCol = 0
	}
	rook, ok := p.PieceAt(Square{Row: row, Col: rookCol})
	return ok && rook.Kind == Rook && rook.Color == c && !rook.HasMoved
}

// String renders a compact one-line board dump for logging, not a persisted file format.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			if pc, ok := p.PieceAt(Square{Row: row, Col: col}); ok {
				sb.WriteString(pieceLetter(pc))
			} else {
				sb.WriteRune('-')
			}
		}
		if row != 0 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if p.HasEnPassant {
		ep = p.EnPassant.String()
	}
	sb.WriteString(" ")
	sb.WriteString(p.CastlingRights().String())
	sb.WriteString("(")
	sb.WriteString(ep)
	sb.WriteString(")")
	return sb.String()
}

func pieceLetter(p Piece) string {
	if p.Color == White {
		return upper(p.Kind.String())
	}
	return p.Kind.String()
}
