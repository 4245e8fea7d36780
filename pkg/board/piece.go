package board

// Kind represents a chess piece kind (King, Pawn, etc), with no color. 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds lists the kinds a pawn may promote to, queen first: quiescence search treats
// each as a distinct capture.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

// Value returns the material value of the kind in pawn units. The king is priceless: it is
// never captured in search and never contributes to material balance.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// Symbol returns the uppercase notation letter for the kind ("" for pawns, which are unmarked
// in algebraic notation).
func (k Kind) Symbol() string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return "."
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a placed chess piece: its kind, color, and whether it has ever moved. HasMoved is
// used only for castling eligibility and for the position fingerprint; it carries no other
// semantics. Promotion produces a new Piece with HasMoved already true.
type Piece struct {
	Kind     Kind
	Color    Color
	HasMoved bool
}

func (p Piece) letter() string {
	if p.Color == White {
		return upper(p.Kind.String())
	}
	return p.Kind.String()
}

func upper(s string) string {
	if len(s) == 0 {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func (p Piece) String() string {
	return p.letter()
}
