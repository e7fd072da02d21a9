package game

import (
	"fmt"
	"strings"

	"github.com/OmerAvital/letter-boxed-bot/internal/puzzle"
)

// Board renders the cross-shaped board: top edge across the first line,
// left and right edges down the middle rows, bottom edge across the last.
func (g *Game) Board() string {
	top := g.sides.LettersOf(puzzle.Top)
	right := g.sides.LettersOf(puzzle.Right)
	bottom := g.sides.LettersOf(puzzle.Bottom)
	left := g.sides.LettersOf(puzzle.Left)

	var b strings.Builder
	fmt.Fprintf(&b, "  %c %c %c  \n", top[0], top[1], top[2])
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "%c       %c \n", left[i], right[i])
	}
	fmt.Fprintf(&b, "  %c %c %c  ", bottom[0], bottom[1], bottom[2])
	return b.String()
}
