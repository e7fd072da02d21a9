// internal/game/game.go
//
// Core state for a single Letter Boxed puzzle.
// Responsibilities:
//   - Track the board, the letters used so far, the letters still missing,
//     and the chain of words played.
//   - Validate single-word legality (chaining, membership, adjacency).
//   - Apply plays and report the win condition.
//
// Notes:
//   - used and remaining always partition the board's alphabet.
//   - Clone produces an independent copy; the solver branches on clones, so
//     no game state is ever shared between goroutines.
//   - Play does not re-validate; callers check IsLegalWord first.
package game

import (
	"github.com/samber/lo"

	"github.com/OmerAvital/letter-boxed-bot/internal/puzzle"
)

// Game holds the mutable state of one puzzle.
type Game struct {
	sides     *puzzle.Sides
	used      map[rune]struct{}
	remaining map[rune]struct{}
	words     []string
}

// New starts a fresh game on the given board: nothing used, everything
// remaining, empty chain.
func New(sides *puzzle.Sides) *Game {
	g := &Game{
		sides:     sides,
		used:      make(map[rune]struct{}, sides.LetterCount()),
		remaining: make(map[rune]struct{}, sides.LetterCount()),
	}
	for _, r := range sides.Alphabet() {
		g.remaining[r] = struct{}{}
	}
	return g
}

// Clone returns an independent copy of the game. The board itself is
// immutable and stays shared.
func (g *Game) Clone() *Game {
	c := &Game{
		sides:     g.sides,
		used:      make(map[rune]struct{}, len(g.used)),
		remaining: make(map[rune]struct{}, len(g.remaining)),
		words:     append([]string(nil), g.words...),
	}
	for r := range g.used {
		c.used[r] = struct{}{}
	}
	for r := range g.remaining {
		c.remaining[r] = struct{}{}
	}
	return c
}

// Sides returns the board.
func (g *Game) Sides() *puzzle.Sides { return g.sides }

// Words returns a copy of the chain played so far.
func (g *Game) Words() []string {
	return append([]string(nil), g.words...)
}

// LastWord returns the most recently played word, or ok=false for a fresh
// game.
func (g *Game) LastWord() (string, bool) {
	if len(g.words) == 0 {
		return "", false
	}
	return g.words[len(g.words)-1], true
}

// Used returns the letters used so far.
func (g *Game) Used() []rune { return keys(g.used) }

// Remaining returns the letters not yet used.
func (g *Game) Remaining() []rune { return keys(g.remaining) }

// IsLegalWord reports whether word can be played in the current state:
//  1. If the chain is non-empty, word must start with the previous word's
//     last letter.
//  2. Every letter must be on the board.
//  3. No two consecutive letters may sit on the same side. Non-consecutive
//     repeats of a side are fine.
//
// The empty word has no first or last letter to chain from and is never
// legal.
func (g *Game) IsLegalWord(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	if last, ok := g.LastWord(); ok {
		lr := []rune(last)
		if lr[len(lr)-1] != runes[0] {
			return false
		}
	}
	var prev puzzle.Side
	havePrev := false
	for _, r := range runes {
		side, ok := g.sides.SideOf(r)
		if !ok {
			return false
		}
		if havePrev && side == prev {
			return false
		}
		prev, havePrev = side, true
	}
	return true
}

// CandidateWords filters dict down to the words playable right now.
func (g *Game) CandidateWords(dict []string) []string {
	return lo.Filter(dict, func(w string, _ int) bool { return g.IsLegalWord(w) })
}

// NewLetters counts the distinct letters of word not yet used. Purely
// informational; the solver never prunes on it.
func (g *Game) NewLetters(word string) int {
	seen := make(map[rune]struct{}, len(word))
	n := 0
	for _, r := range word {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if _, ok := g.used[r]; !ok {
			n++
		}
	}
	return n
}

// Play appends word to the chain and marks its letters used. Returns the
// new-letter count for the word, computed against the state before the
// play.
func (g *Game) Play(word string) int {
	n := g.NewLetters(word)
	for _, r := range word {
		g.used[r] = struct{}{}
		delete(g.remaining, r)
	}
	g.words = append(g.words, word)
	return n
}

// Won reports whether every letter on the board has been used. A board with
// a repeated letter wins at its actual distinct-letter count, not at a
// literal twelve.
func (g *Game) Won() bool {
	return len(g.used) == g.sides.LetterCount()
}

func keys(m map[rune]struct{}) []rune {
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	return out
}
