// internal/words/words.go
//
// Candidate dictionary for the solver.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back to
//     the embedded default.
//   - Normalize words for the puzzle: uppercase, letters only, at least
//     three letters long.
//   - Supply the ordered list plus a lookup set.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load one word per line from that file.
//   2. Otherwise use the embedded default list.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • The list is immutable after Init; reads need no synchronization.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"
)

//go:embed default_words.txt
var embedded string

var (
	initOnce   sync.Once
	list       []string            // ordered dictionary
	set        map[string]struct{} // lookup set
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if the list ends up empty.
func Init() error {
	initOnce.Do(func() {
		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			list = normalizeLines(embedded)
		}

		set = make(map[string]struct{}, len(list))
		for _, w := range list {
			set[w] = struct{}{}
		}

		if len(list) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, keeping only words that
// survive normalization.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := normalizeWord(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into a clean list.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w := normalizeWord(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// normalizeWord uppercases and validates a raw line. Words shorter than
// three letters are not playable in Letter Boxed and are dropped, as is
// anything containing a non-letter. Returns "" for rejects.
func normalizeWord(s string) string {
	w := strings.ToUpper(strings.TrimSpace(s))
	if len(w) < 3 || !isAlpha(w) {
		return ""
	}
	return w
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// List returns the loaded dictionary in original order.
func List() []string { return list }

// Contains reports whether w is in the dictionary.
func Contains(w string) bool {
	_, ok := set[strings.ToUpper(w)]
	return ok
}

// Count returns the dictionary size.
func Count() int { return len(list) }
