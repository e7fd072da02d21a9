// internal/httpserver/server.go
//
// HTTP surface for the Letter Boxed solver.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON).
//   - Public endpoints: "/", "/health".
//   - Puzzle + solver endpoints: GET /puzzle/today, POST /solve,
//     GET /solve/today, GET /solve/yesterday.
//   - Solve history: GET /solves/recent (SQLite-backed, best effort).
//
// Notes:
//   - The puzzle provider is an interface so tests can stub the NYT page.
//   - Provider failures surface as a JSON "no_puzzle" error, never a crash.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/OmerAvital/letter-boxed-bot/internal/game"
	"github.com/OmerAvital/letter-boxed-bot/internal/nyt"
	"github.com/OmerAvital/letter-boxed-bot/internal/puzzle"
	"github.com/OmerAvital/letter-boxed-bot/internal/results"
	"github.com/OmerAvital/letter-boxed-bot/internal/solver"
)

// Provider supplies the day's puzzle record. *nyt.Client satisfies it.
type Provider interface {
	Fetch(ctx context.Context) (*nyt.GameData, error)
}

// Server bundles router, puzzle provider, dictionary, and solve history.
type Server struct {
	r        *chi.Mux
	provider Provider
	store    *results.Store
	dict     []string
}

// New constructs a Server, installs middleware, and registers routes.
// store may be nil, in which case solves are simply not recorded.
func New(provider Provider, store *results.Store, dict []string) *Server {
	s := &Server{r: chi.NewRouter(), provider: provider, store: store, dict: dict}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(60 * time.Second)) // full solves can take a while
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"letter-boxed-bot","endpoints":["/health","/puzzle/today","POST /solve","/solve/today","/solve/yesterday","/solves/recent"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/puzzle/today", s.handlePuzzleToday)
	s.r.Post("/solve", s.handleSolve)
	s.r.Get("/solve/today", s.handleSolveDaily(false))
	s.r.Get("/solve/yesterday", s.handleSolveDaily(true))
	s.r.Get("/solves/recent", s.handleRecent)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ puzzle -------------------------------------

type puzzleRes struct {
	Date            string    `json:"date"`
	Sides           [4]string `json:"sides"`
	YesterdaysSides [4]string `json:"yesterdaysSides"`
	Par             int       `json:"par"`
}

// handlePuzzleToday returns today's board without solving it.
func (s *Server) handlePuzzleToday(w http.ResponseWriter, r *http.Request) {
	gd, err := s.provider.Fetch(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("puzzle fetch failed")
		http.Error(w, `{"error":"no_puzzle"}`, http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(puzzleRes{
		Date:            gd.PrintDate,
		Sides:           gd.Sides,
		YesterdaysSides: gd.YesterdaysSides,
		Par:             gd.Par,
	})
}

// ------------------------------ solve --------------------------------------

type solveReq struct {
	Sides    [4]string `json:"sides"`    // top, right, bottom, left
	MinWords int       `json:"minWords"` // 0 = stop at the first winning level
}

type solveRes struct {
	Date      string            `json:"date,omitempty"`
	Sides     [4]string         `json:"sides"`
	Count     int               `json:"count"`
	Solutions []solver.Solution `json:"solutions"`
	ElapsedMs int64             `json:"elapsedMs"`
}

// handleSolve solves an explicit board from the request body.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	for i := range req.Sides {
		req.Sides[i] = strings.ToUpper(strings.TrimSpace(req.Sides[i]))
	}
	sides, err := puzzle.FromStrings(req.Sides)
	if err != nil {
		http.Error(w, `{"error":"bad_sides"}`, http.StatusBadRequest)
		return
	}
	s.respondSolved(w, "", req.Sides, sides, req.MinWords)
}

// handleSolveDaily fetches the day's puzzle, solves it, and records the run.
func (s *Server) handleSolveDaily(yesterday bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gd, err := s.provider.Fetch(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("puzzle fetch failed")
			http.Error(w, `{"error":"no_puzzle"}`, http.StatusBadGateway)
			return
		}
		raw := gd.Sides
		if yesterday {
			raw = gd.YesterdaysSides
		}
		sides, err := puzzle.FromStrings(raw)
		if err != nil {
			log.Warn().Err(err).Msg("malformed puzzle record")
			http.Error(w, `{"error":"bad_puzzle"}`, http.StatusBadGateway)
			return
		}
		s.respondSolved(w, dateFor(gd, yesterday), raw, sides, 0)
	}
}

// respondSolved runs the solver and writes the ranked chains. When a store
// is configured and the board has a date, the run is recorded best effort.
func (s *Server) respondSolved(w http.ResponseWriter, date string, raw [4]string, sides *puzzle.Sides, minWords int) {
	g := game.New(sides)
	start := time.Now()
	solutions := solver.SolveGame(g, s.dict, minWords)
	elapsed := time.Since(start)

	if s.store != nil && date != "" {
		rec := results.Solve{
			Date:      date,
			Sides:     strings.Join(raw[:], ","),
			Solutions: len(solutions),
			ElapsedMs: int(elapsed.Milliseconds()),
		}
		if len(solutions) > 0 {
			rec.Best = strings.Join(solutions[0], " ")
		}
		if err := s.store.Insert(context.Background(), rec); err != nil {
			log.Warn().Err(err).Str("date", date).Msg("record solve")
		}
	}

	if solutions == nil {
		solutions = []solver.Solution{}
	}
	_ = json.NewEncoder(w).Encode(solveRes{
		Date:      date,
		Sides:     raw,
		Count:     len(solutions),
		Solutions: solutions,
		ElapsedMs: elapsed.Milliseconds(),
	})
}

// dateFor labels a solve with the puzzle's print date; yesterday's board
// gets the preceding day.
func dateFor(gd *nyt.GameData, yesterday bool) string {
	if !yesterday {
		return gd.PrintDate
	}
	t, err := time.Parse("2006-01-02", gd.PrintDate)
	if err != nil {
		return gd.PrintDate
	}
	return t.AddDate(0, 0, -1).Format("2006-01-02")
}

// ------------------------------ history ------------------------------------

type recentRes struct {
	Solves []results.Solve `json:"solves"`
}

// handleRecent returns the latest recorded solves.
func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if s.store == nil {
		_ = json.NewEncoder(w).Encode(recentRes{Solves: []results.Solve{}})
		return
	}
	rows, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []results.Solve{}
	}
	_ = json.NewEncoder(w).Encode(recentRes{Solves: rows})
}
