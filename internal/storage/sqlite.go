// Package storage provides the SQLite-backed leaderboard for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and is discarded with the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection holding the leaderboard.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished game.
type Run struct {
	ID        int64
	RunID     string // uuid assigned when the run is saved
	Player    string
	Score     int
	Level     int // Difficulty level reached
	CreatedAt time.Time
}

// OpenMemory opens a fresh in-memory leaderboard.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, id);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns it with its assigned ids.
func (s *Store) SaveRun(player string, score, level int) (Run, error) {
	if player == "" {
		player = "anonymous"
	}
	run := Run{
		RunID:     uuid.NewString(),
		Player:    player,
		Score:     score,
		Level:     level,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (run_id, player, score, level, created_at) VALUES (?, ?, ?, ?, ?)",
		run.RunID, run.Player, run.Score, run.Level, run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	run.ID, err = result.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return run, nil
}

// TopScores retrieves the best N runs, highest score first.
// Equal scores are ordered by who got there first.
func (s *Store) TopScores(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, player, score, level, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.RunID, &r.Player, &r.Score, &r.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.UnixMilli(createdAt).UTC()
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its uuid. It returns nil if there is none.
func (s *Store) RunByID(runID string) (*Run, error) {
	var r Run
	var createdAt int64
	err := s.db.QueryRow(
		`SELECT id, run_id, player, score, level, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	).Scan(&r.ID, &r.RunID, &r.Player, &r.Score, &r.Level, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &r, nil
}

// HighScore returns the highest recorded score, or 0 if there are no runs.
func (s *Store) HighScore() (int, error) {
	return s.maxScore("SELECT MAX(score) FROM runs")
}

// PlayerBest returns the player's highest recorded score, or 0.
func (s *Store) PlayerBest(player string) (int, error) {
	return s.maxScore("SELECT MAX(score) FROM runs WHERE player = ?", player)
}

func (s *Store) maxScore(query string, args ...any) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}
