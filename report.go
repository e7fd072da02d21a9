package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/OmerAvital/letter-boxed-bot/internal/game"
	"github.com/OmerAvital/letter-boxed-bot/internal/solver"
)

const ruleWidth = 32

// report prints the board and the ranked solutions, shortest total letter
// count first, each chain prefixed with its letter count.
func report(w io.Writer, g *game.Game, date string, solutions []solver.Solution, elapsed time.Duration) {
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	if date != "" {
		fmt.Fprintln(w, date)
	}
	fmt.Fprintln(w, g.Board())
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range solutions {
		fmt.Fprintf(tw, "%d\t%s\t\n", s.Letters(), strings.Join(s, " "))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d solutions found in %v\n", len(solutions), elapsed)
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}
