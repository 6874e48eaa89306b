package rubik

import (
	"fmt"
	"strings"
)

// Magnitude is the signed size of a face turn in quarter turns.
type Magnitude int

const (
	Clockwise        Magnitude = 1  // 90 degrees clockwise
	CounterClockwise Magnitude = -1 // 90 degrees counter-clockwise
	Half             Magnitude = 2  // 180 degrees
)

// NewMagnitude validates a raw quarter-turn count.
// Only 1, -1 and 2 are accepted; nothing is clamped.
func NewMagnitude(raw int) (Magnitude, error) {
	switch m := Magnitude(raw); m {
	case Clockwise, CounterClockwise, Half:
		return m, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidMagnitude, raw)
}

// Valid reports whether m is one of the three legal magnitudes.
func (m Magnitude) Valid() bool {
	return m == Clockwise || m == CounterClockwise || m == Half
}

// Negated returns the magnitude turning the other way. Half is its own inverse.
func (m Magnitude) Negated() Magnitude {
	if m == Half {
		return Half
	}
	return -m
}

// IsQuarter reports whether m is a 90 degree turn.
func (m Magnitude) IsQuarter() bool {
	return m == Clockwise || m == CounterClockwise
}

// Move is a turn of one face. It is an immutable value.
type Move struct {
	Face      Face
	Magnitude Magnitude
}

// NewMove builds a move from a face and a raw magnitude.
// Returns ErrInvalidMagnitude or ErrInvalidFace for values outside the domain.
func NewMove(f Face, raw int) (Move, error) {
	if !f.Valid() {
		return Move{}, fmt.Errorf("%w: %d", ErrInvalidFace, int(f))
	}
	m, err := NewMagnitude(raw)
	if err != nil {
		return Move{}, err
	}
	return Move{Face: f, Magnitude: m}, nil
}

// Valid reports whether both the face and magnitude are in range.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Magnitude.Valid()
}

// RotatesCorners reports whether the move twists the corners it carries.
// Quarter turns of the four side faces do; top/bottom turns and half turns
// only permute.
func (m Move) RotatesCorners() bool {
	return m.Magnitude != Half && m.Face != FaceTop && m.Face != FaceBottom
}

// FlipsEdges reports whether the move flips the edges it carries.
// Only quarter turns of the right and left faces do.
func (m Move) FlipsEdges() bool {
	return m.Magnitude != Half && (m.Face == FaceRight || m.Face == FaceLeft)
}

// Inverted returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverted() Move {
	m.Magnitude = m.Magnitude.Negated()
	return m
}

// Add composes m followed by other.
// Turns of the same face fold into a single move (three quarter turns become
// one counter-clockwise turn); turns that cancel yield an empty sequence.
// Turns of different faces are returned unchanged as a two-move sequence.
func (m Move) Add(other Move) []Move {
	if m.Face != other.Face {
		return []Move{m, other}
	}

	sum := mod(int(m.Magnitude)+int(other.Magnitude), 4)
	switch sum {
	case 0:
		return []Move{}
	case 3:
		sum = -1
	}
	return []Move{{Face: m.Face, Magnitude: Magnitude(sum)}}
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Magnitude {
	case CounterClockwise:
		suffix = "'"
	case Half:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'F', 'f':
		face = FaceFront
	case 'R', 'r':
		face = FaceRight
	case 'U', 'u':
		face = FaceTop
	case 'B', 'b':
		face = FaceBack
	case 'L', 'l':
		face = FaceLeft
	case 'D', 'd':
		face = FaceBottom
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	magnitude := Clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			magnitude = CounterClockwise
		case "2", "2'", "2`":
			magnitude = Half
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Magnitude: magnitude}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the sequence that undoes moves: reversed, each move inverted.
func Invert(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverted()
	}
	return inv
}

// Simplify folds runs of same-face turns using Add. Pairs that cancel are
// dropped, which can expose further folds (R U U' R' simplifies to nothing).
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		n := len(out)
		if n == 0 || out[n-1].Face != m.Face {
			out = append(out, m)
			continue
		}
		out = append(out[:n-1], out[n-1].Add(m)...)
	}
	return out
}
