// internal/results/store.go
//
// SQLite-backed solve history.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded schema (idempotent).
//   - Recording one row per solved board and querying recent solves.
//
// Each (date, sides) pair is recorded at most once; re-solving the same
// board on the same day is a no-op insert.

package results

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Solve is one recorded solver run.
type Solve struct {
	Date      string `json:"date"`      // puzzle print date, YYYY-MM-DD
	Sides     string `json:"sides"`     // "TOP,RIGHT,BOTTOM,LEFT"
	Solutions int    `json:"solutions"` // number of winning chains found
	Best      string `json:"best"`      // shortest chain, space-joined
	ElapsedMs int    `json:"elapsedMs"`
}

// Store wraps the SQLite handle.
type Store struct{ db *sql.DB }

// Open opens (and creates if missing) the database at dsn and applies the
// schema. Ensures the parent directory exists for relative paths like
// ./data/solves.db.
func Open(dsn string) (*Store, error) {
	if !strings.HasPrefix(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:") {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		dsn += "?_busy_timeout=5000&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying handle.
func (s *Store) Close() error { return s.db.Close() }

// Insert records a solve. A repeat of the same date+sides is ignored.
func (s *Store) Insert(ctx context.Context, r Solve) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO solves (date, sides, solutions, best, elapsed_ms)
        VALUES (?, ?, ?, ?, ?)`,
		r.Date, r.Sides, r.Solutions, r.Best, r.ElapsedMs,
	)
	return err
}

// AlreadySolved reports whether date+sides has a stored result.
func (s *Store) AlreadySolved(ctx context.Context, date, sides string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM solves WHERE date=? AND sides=?`, date, sides,
	).Scan(&cnt)
	return cnt > 0, err
}

// Recent returns the latest solves, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT date, sides, solutions, best, elapsed_ms
        FROM solves
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Solve, 0, limit)
	for rows.Next() {
		var r Solve
		if err := rows.Scan(&r.Date, &r.Sides, &r.Solutions, &r.Best, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
