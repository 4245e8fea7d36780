package board

import "fmt"

// MoveKind indicates the kind of move.
type MoveKind uint8

const (
	Normal MoveKind = iota
	DoublePawnPush
	EnPassant
	CastlingKingside
	CastlingQueenside
	Promotion
)

// Move represents a move along with contextual metadata captured at generation time. Two moves
// are equal iff (From, To, Kind, PromotionKind) match; the moved/captured piece snapshots and
// the check flags are not part of move identity.
type Move struct {
	From, To      Square
	Moved         Piece  // the moving piece, snapshotted before the move
	Captured      Piece  // the captured piece, snapshotted before the move; NoKind if none
	HasCaptured   bool   // true iff Captured is present (including en passant)
	Kind          MoveKind
	PromotionKind Kind // valid only when Kind == Promotion

	CausesCheck     bool
	CausesCheckmate bool
}

// IsCapture reports whether the move captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.HasCaptured
}

// Equals reports move identity: (From, To, Kind, PromotionKind) equality, ignoring any
// annotations such as CausesCheck that are attached after generation.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Kind == o.Kind && m.PromotionKind == o.PromotionKind
}

// Key returns a comparable value usable as a map key (killer tables, transposition-table move
// comparisons) encoding the same identity as Equals.
func (m Move) Key() MoveKey {
	return MoveKey{From: m.From, To: m.To, Kind: m.Kind, PromotionKind: m.PromotionKind}
}

// MoveKey is the comparable identity projection of a Move, suitable as a Go map key.
type MoveKey struct {
	From, To      Square
	Kind          MoveKind
	PromotionKind Kind
}

// String renders the move in coordinate notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	switch m.Kind {
	case CastlingKingside:
		return "O-O"
	case CastlingQueenside:
		return "O-O-O"
	case Promotion:
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.PromotionKind)
	default:
		return fmt.Sprintf("%v%v", m.From, m.To)
	}
}

// ParseMove parses pure coordinate notation, such as "e2e4" or "a7a8q". The parsed move carries
// no contextual metadata (moved/captured snapshots, check flags) -- callers should look the move
// up in a generated legal-move list to recover that.
func ParseMove(str string) (Move, error) {
	if len(str) < 4 || len(str) > 5 {
		return Move{}, fmt.Errorf("invalid move %q: wrong length", str)
	}

	from, err := ParseSquare(str[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}
	to, err := ParseSquare(str[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}

	if len(str) == 5 {
		promo, ok := ParseKind(rune(str[4]))
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid move %q: bad promotion kind", str)
		}
		return Move{From: from, To: to, Kind: Promotion, PromotionKind: promo}, nil
	}
	return Move{From: from, To: to}, nil
}
