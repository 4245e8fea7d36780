package eval

import (
	"fmt"

	"github.com/rookwise/rookwise/pkg/board"
)

// Score is a signed position or search score in centipawn-like units, positive favoring the
// side it is reported for. Mate is encoded as Mate-ply so that shorter mates score higher than
// longer ones, and being mated scores lower the sooner it happens.
type Score int

const (
	// Mate is the base magnitude used to encode forced-mate scores.
	Mate Score = 100000

	// Inf/NegInf bound the root search window: (-2*Mate, +2*Mate).
	Inf    Score = 2 * Mate
	NegInf Score = -Inf
)

func (s Score) String() string {
	return fmt.Sprintf("%+d", int(s))
}

// Unit returns the signed unit for the color: +1 for White, -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// Negate flips the score, as negamax does at every ply.
func (s Score) Negate() Score {
	return -s
}

// Max returns the larger of the two scores.
func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of the two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
