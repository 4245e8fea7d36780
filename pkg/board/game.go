package board

import "fmt"

const noProgressLimit = 100 // half-moves since the last pawn move or capture: the fifty-move rule
const threefoldLimit = 3

// Status is the terminal status of a game.
type Status uint8

const (
	InProgress Status = iota
	WhiteMatesBlack
	BlackMatesWhite
	Stalemate
	DrawFiftyMove
	DrawThreefold
	DrawInsufficientMaterial
	DrawAgreement
	WhiteResigned
	BlackResigned
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case WhiteMatesBlack:
		return "checkmate: white wins"
	case BlackMatesWhite:
		return "checkmate: black wins"
	case Stalemate:
		return "draw: stalemate"
	case DrawFiftyMove:
		return "draw: fifty-move rule"
	case DrawThreefold:
		return "draw: threefold repetition"
	case DrawInsufficientMaterial:
		return "draw: insufficient material"
	case DrawAgreement:
		return "draw: agreed"
	case WhiteResigned:
		return "white resigned: black wins"
	case BlackResigned:
		return "black resigned: white wins"
	default:
		return "?"
	}
}

// IsTerminal reports whether the game has ended.
func (s Status) IsTerminal() bool {
	return s != InProgress
}

// Game represents game state: a Position plus side to move, move history, position history
// (fingerprints), the fifty-move clock, the full-move number, cached legal moves and terminal
// status. Not safe for concurrent mutation -- callers serialize access.
type Game struct {
	zt *ZobristTable

	pos           *Position
	turn          Color
	moveHistory   []Move
	posHistory    []Fingerprint
	halfMoveClock int
	fullMoveNum   int

	legal  []Move
	status Status
}

// NewGame returns a fresh game at the standard starting position, White to move.
func NewGame() *Game {
	g := &Game{zt: NewZobristTable(0)}
	g.Reset()
	return g
}

// Reset restores the starting position, White to move, clearing all history.
func (g *Game) Reset() {
	g.pos = startingPosition()
	g.turn = White
	g.moveHistory = nil
	g.fullMoveNum = 1
	g.halfMoveClock = 0
	g.status = InProgress
	g.posHistory = []Fingerprint{g.zt.Hash(g.pos, g.turn)}
	g.legal = g.pos.LegalMoves(g.turn)
}

func startingPosition() *Position {
	p := NewEmptyPosition()
	back := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range back {
		p.Place(Square{Row: 0, Col: col}, Piece{Kind: kind, Color: White})
		p.Place(Square{Row: 7, Col: col}, Piece{Kind: kind, Color: Black})
	}
	for col := 0; col < 8; col++ {
		p.Place(Square{Row: 1, Col: col}, Piece{Kind: Pawn, Color: White})
		p.Place(Square{Row: 6, Col: col}, Piece{Kind: Pawn, Color: Black})
	}
	return p
}

// Position returns the live position. Callers must not mutate it; copy it first.
func (g *Game) Position() *Position {
	return g.pos
}

// CurrentTurn returns the side to move.
func (g *Game) CurrentTurn() Color {
	return g.turn
}

// LegalMoves returns the cached legal move list for the side to move.
func (g *Game) LegalMoves() []Move {
	return g.legal
}

// LegalMovesFrom returns the cached legal moves originating at sq.
func (g *Game) LegalMovesFrom(sq Square) []Move {
	var out []Move
	for _, m := range g.legal {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}

// Status returns the terminal status.
func (g *Game) Status() Status {
	return g.status
}

// StatusMessage renders a human-readable description of the status.
func (g *Game) StatusMessage() string {
	return g.status.String()
}

// MoveHistory returns the ordered list of applied moves.
func (g *Game) MoveHistory() []Move {
	return g.moveHistory
}

// LastMove returns the most recently applied move, if any.
func (g *Game) LastMove() (Move, bool) {
	if len(g.moveHistory) == 0 {
		return Move{}, false
	}
	return g.moveHistory[len(g.moveHistory)-1], true
}

// MoveNumber returns the current full-move number.
func (g *Game) MoveNumber() int {
	return g.fullMoveNum
}

// HalfMoveClock returns the number of half-moves since the last pawn move or capture, the
// counter the fifty-move rule watches.
func (g *Game) HalfMoveClock() int {
	return g.halfMoveClock
}

// Apply validates that m is in the current legal-move set, applies it, and recomputes clocks,
// history and terminal status. Returns false (game state unchanged) if the game is already
// over or m is not legal.
func (g *Game) Apply(m Move) bool {
	if g.status.IsTerminal() {
		return false
	}

	var chosen Move
	found := false
	for _, candidate := range g.legal {
		if candidate.Equals(m) {
			chosen = candidate
			found = true
			break
		}
	}
	if !found {
		return false
	}

	if chosen.CausesCheck {
		chosen.CausesCheckmate = g.pos.ResolveCheckmate(g.turn, chosen)
	}

	if chosen.Moved.Kind == Pawn || chosen.IsCapture() {
		g.halfMoveClock = 0
	} else {
		g.halfMoveClock++
	}

	mover := g.turn
	g.pos.Apply(chosen)
	g.moveHistory = append(g.moveHistory, chosen)
	g.posHistory = append(g.posHistory, g.zt.Hash(g.pos, mover.Opponent()))

	if mover == Black {
		g.fullMoveNum++
	}
	g.turn = mover.Opponent()

	g.legal = g.pos.LegalMoves(g.turn)
	g.status = g.resolveStatus(chosen, mover)
	return true
}

// resolveStatus runs the terminal-status checks in priority order; the first rule that
// matches wins.
func (g *Game) resolveStatus(last Move, mover Color) Status {
	if len(g.legal) == 0 {
		if g.pos.IsInCheck(g.turn) {
			if mover == White {
				return WhiteMatesBlack
			}
			return BlackMatesWhite
		}
		return Stalemate
	}
	if g.halfMoveClock >= noProgressLimit {
		return DrawFiftyMove
	}
	if g.repetitionCount(g.posHistory[len(g.posHistory)-1]) >= threefoldLimit {
		return DrawThreefold
	}
	if g.pos.HasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	return InProgress
}

func (g *Game) repetitionCount(fp Fingerprint) int {
	count := 0
	for _, h := range g.posHistory {
		if h == fp {
			count++
		}
	}
	return count
}

// Resign ends the game with the other side winning. Rejected if already terminal.
func (g *Game) Resign(c Color) bool {
	if g.status.IsTerminal() {
		return false
	}
	if c == White {
		g.status = WhiteResigned
	} else {
		g.status = BlackResigned
	}
	return true
}

// AgreeDraw ends the game in an agreed draw. Rejected if already terminal.
func (g *Game) AgreeDraw() bool {
	if g.status.IsTerminal() {
		return false
	}
	g.status = DrawAgreement
	return true
}

func (g *Game) String() string {
	return fmt.Sprintf("game{pos=%v, turn=%v, halfmove=%v, fullmove=%v, status=%v}",
		g.pos, g.turn, g.halfMoveClock, g.fullMoveNum, g.status)
}
