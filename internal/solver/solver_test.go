package solver

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmerAvital/letter-boxed-bot/internal/game"
	"github.com/OmerAvital/letter-boxed-bot/internal/puzzle"
)

func newGame(t *testing.T, top, right, bottom, left string) *game.Game {
	t.Helper()
	sides, err := puzzle.Parse(top, right, bottom, left)
	require.NoError(t, err)
	return game.New(sides)
}

func TestSolveFindsKnownChain(t *testing.T) {
	g := newGame(t, "DKI", "JTA", "CLV", "ERO")
	dict := []string{"OKRA", "ADJECTIVAL", "DOT", "TOLD", "ROCK", "ZEBRA"}

	solutions := Solve(g, dict)

	require.NotEmpty(t, solutions)
	assert.Contains(t, solutions, Solution{"OKRA", "ADJECTIVAL"})
}

func TestSolutionsSortedByTotalLetters(t *testing.T) {
	// Both words alternate sides all the way through and cover the full
	// alphabet, so each is a one-word solution; the shorter must rank
	// first.
	g := newGame(t, "ABC", "DEF", "GHI", "JKL")
	dict := []string{"ADGJBEHKCFILAD", "ADGJBEHKCFIL"}

	solutions := Solve(g, dict)

	require.Len(t, solutions, 2)
	assert.Equal(t, Solution{"ADGJBEHKCFIL"}, solutions[0])
	assert.True(t, sort.SliceIsSorted(solutions, func(i, j int) bool {
		return solutions[i].Letters() < solutions[j].Letters()
	}))
}

func TestSolutionLetters(t *testing.T) {
	assert.Equal(t, 14, Solution{"OKRA", "ADJECTIVAL"}.Letters())
	assert.Equal(t, 0, Solution{}.Letters())
}

func TestEmptyDictionary(t *testing.T) {
	g := newGame(t, "DKI", "JTA", "CLV", "ERO")
	assert.Empty(t, Solve(g, nil))
	assert.Empty(t, Solve(g, []string{"ZZZ", "QQQ"}))
}

func TestMinWordsEarlyExit(t *testing.T) {
	g := newGame(t, "ABC", "DEF", "GHI", "JKL")
	dict := []string{"ADGJBEHK", "KCFIL"}

	solutions := SolveGame(g, dict, 2)

	require.NotEmpty(t, solutions)
	assert.Contains(t, solutions, Solution{"ADGJBEHK", "KCFIL"})

	// The stop condition fired, so something at least minWords long must
	// be present.
	found := false
	for _, s := range solutions {
		if len(s) >= 2 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAlreadyWonGame(t *testing.T) {
	g := newGame(t, "ABC", "DEF", "GHI", "JKL")
	g.Play("ADGJBEHKCFIL")
	require.True(t, g.Won())

	solutions := Solve(g, []string{"ADGJBEHKCFIL"})

	require.Len(t, solutions, 1)
	assert.Empty(t, solutions[0])
}
