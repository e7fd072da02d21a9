// internal/puzzle/sides.go
//
// Board model for a Letter Boxed puzzle.
// Defines:
//   - Side: one of the four edges (top/right/bottom/left).
//   - Sides: the four three-letter edges plus the derived alphabet,
//     with constant-time letter-to-side lookup.
//
// Notes:
//   - Letter order within an edge is preserved; board rendering depends on it.
//   - A well-formed puzzle never repeats a letter across edges. If one does,
//     the first edge wins the lookup and the alphabet is simply smaller than
//     twelve; nothing here rejects such a board.

package puzzle

import "fmt"

// Side identifies one of the four edges of the board.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "unknown"
}

// Sides is an immutable Letter Boxed board: four edges of three letters each.
type Sides struct {
	letters [4][3]rune
	sideOf  map[rune]Side
}

// Parse builds a board from the four edge strings, clockwise from the top.
// Each edge must be exactly three letters; anything else is a malformed
// puzzle with no valid interpretation.
func Parse(top, right, bottom, left string) (*Sides, error) {
	s := &Sides{sideOf: make(map[rune]Side, 12)}
	for i, raw := range []string{top, right, bottom, left} {
		rs := []rune(raw)
		if len(rs) != 3 {
			return nil, fmt.Errorf("%s side must have 3 letters, got %q", Side(i), raw)
		}
		copy(s.letters[i][:], rs)
		for _, r := range rs {
			if _, ok := s.sideOf[r]; !ok {
				s.sideOf[r] = Side(i)
			}
		}
	}
	return s, nil
}

// FromStrings builds a board from a provider-shaped array, ordered
// top, right, bottom, left.
func FromStrings(sides [4]string) (*Sides, error) {
	return Parse(sides[0], sides[1], sides[2], sides[3])
}

// SideOf returns the edge holding letter, or ok=false if the letter is not
// on the board.
func (s *Sides) SideOf(letter rune) (Side, bool) {
	side, ok := s.sideOf[letter]
	return side, ok
}

// LettersOf returns the three letters of side in their original order.
func (s *Sides) LettersOf(side Side) [3]rune {
	return s.letters[side]
}

// Alphabet returns every distinct letter on the board.
func (s *Sides) Alphabet() []rune {
	out := make([]rune, 0, len(s.sideOf))
	for r := range s.sideOf {
		out = append(out, r)
	}
	return out
}

// LetterCount is the number of distinct letters on the board.
func (s *Sides) LetterCount() int {
	return len(s.sideOf)
}
