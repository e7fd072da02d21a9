package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OmerAvital/letter-boxed-bot/internal/game"
	"github.com/OmerAvital/letter-boxed-bot/internal/httpserver"
	"github.com/OmerAvital/letter-boxed-bot/internal/nyt"
	"github.com/OmerAvital/letter-boxed-bot/internal/puzzle"
	"github.com/OmerAvital/letter-boxed-bot/internal/results"
	"github.com/OmerAvital/letter-boxed-bot/internal/solver"
	"github.com/OmerAvital/letter-boxed-bot/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot solve")
	sidesFlag := flag.String("sides", "", `solve an explicit board, e.g. "DKI,JTA,CLV,ERO"`)
	yesterday := flag.Bool("yesterday", false, "solve yesterday's puzzle instead of today's")
	minWords := flag.Int("min", 0, "stop once a solution has at least this many words")
	flag.Parse()

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	if *serve {
		runServer()
		return
	}
	runSolve(*sidesFlag, *yesterday, *minWords)
}

// runServer starts the HTTP API with the NYT provider and a SQLite-backed
// solve history.
func runServer() {
	store, err := results.Open(getEnv("DB_PATH", "./data/solves.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open solve history db")
	}
	defer store.Close()

	srv := httpserver.New(nyt.NewClient(os.Getenv("NYT_URL")), store, words.List())
	port := getEnv("PORT", "5180")
	log.Info().Str("port", port).Int("words", words.Count()).Msg("starting letter-boxed server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// runSolve solves one board and prints the ranked chains to stdout.
func runSolve(sidesArg string, yesterday bool, minWords int) {
	sides, date, err := resolveSides(sidesArg, yesterday)
	if err != nil {
		log.Fatal().Err(err).Msg("bad board")
	}
	if sides == nil {
		log.Warn().Msg("no puzzle available today")
		return
	}

	g := game.New(sides)
	start := time.Now()
	solutions := solver.SolveGame(g, words.List(), minWords)
	report(os.Stdout, g, date, solutions, time.Since(start))
}

// resolveSides picks the board: the explicit -sides flag if given, else
// today's or yesterday's puzzle from the NYT page. A nil board with a nil
// error means no puzzle could be fetched; callers skip solving.
func resolveSides(arg string, yesterday bool) (*puzzle.Sides, string, error) {
	if arg != "" {
		parts := strings.Split(strings.ToUpper(arg), ",")
		if len(parts) != 4 {
			return nil, "", fmt.Errorf("want 4 comma-separated sides, got %d", len(parts))
		}
		s, err := puzzle.Parse(parts[0], parts[1], parts[2], parts[3])
		return s, "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	gd, err := nyt.NewClient(os.Getenv("NYT_URL")).Fetch(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("puzzle fetch failed")
		return nil, "", nil
	}
	if yesterday {
		s, err := gd.YesterdaySides()
		return s, gd.PrintDate + " (yesterday's board)", err
	}
	s, err := gd.TodaySides()
	return s, gd.PrintDate, err
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
