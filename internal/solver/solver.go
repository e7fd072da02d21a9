// internal/solver/solver.go
//
// Winning-chain search for Letter Boxed.
// Responsibilities:
//   - Filter the dictionary once for word-internal legality against the
//     board (the chain rule is state-dependent and re-applied per branch).
//   - Expand a frontier of game clones level by level, in parallel, up to a
//     fixed depth.
//   - Collect winning chains under a mutex and rank them by total letter
//     count, shortest first.
//
// Notes:
//   - Each branch owns its own clone; the solutions slice is the only
//     shared mutable state.
//   - The early-exit condition is checked once per level; a level in
//     progress always completes before the search stops.
package solver

import (
	"runtime"
	"sort"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/OmerAvital/letter-boxed-bot/internal/game"
)

// maxDepth caps the number of words in a chain. No realistic puzzle needs
// anywhere near this many plays; the playable space collapses as letters
// run out.
const maxDepth = 10

// Solution is one winning chain of words.
type Solution []string

// Letters is the total character count across the chain, the ranking key.
func (s Solution) Letters() int {
	return lo.SumBy(s, func(w string) int { return len(w) })
}

// SolveGame enumerates winning chains reachable from g, stopping after the
// first depth level at which some recorded solution has at least minWords
// words. An already-won game yields a single zero-word solution. An empty
// or unplayable dictionary yields an empty list.
func SolveGame(g *game.Game, dict []string, minWords int) []Solution {
	if g.Won() {
		return []Solution{{}}
	}

	possible := g.CandidateWords(dict)

	var (
		mu        sync.Mutex
		solutions []Solution
	)

	frontier := []*game.Game{g.Clone()}
	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		if lo.SomeBy(solutions, func(s Solution) bool { return len(s) >= minWords }) {
			break
		}

		next := make([][]*game.Game, len(frontier))
		var eg errgroup.Group
		eg.SetLimit(runtime.NumCPU())
		for i, state := range frontier {
			i, state := i, state
			eg.Go(func() error {
				var survivors []*game.Game
				for _, w := range chainable(state, possible) {
					branch := state.Clone()
					branch.Play(w)
					if branch.Won() {
						mu.Lock()
						solutions = append(solutions, Solution(branch.Words()))
						mu.Unlock()
						continue
					}
					survivors = append(survivors, branch)
				}
				next[i] = survivors
				return nil
			})
		}
		_ = eg.Wait()
		frontier = lo.Flatten(next)
	}

	sort.Slice(solutions, func(i, j int) bool {
		return solutions[i].Letters() < solutions[j].Letters()
	})
	return solutions
}

// Solve enumerates winning chains and ranks them by fewest total letters.
func Solve(g *game.Game, dict []string) []Solution {
	return SolveGame(g, dict, 0)
}

// chainable narrows possible to the words that can extend state's chain:
// first letter must match the last played word's last letter. A fresh game
// accepts everything.
func chainable(state *game.Game, possible []string) []string {
	last, ok := state.LastWord()
	if !ok {
		return possible
	}
	tail := last[len(last)-1]
	return lo.Filter(possible, func(w string, _ int) bool { return w[0] == tail })
}
