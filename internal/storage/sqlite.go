// Package storage provides SQLite-based history of simulator runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only run summaries are stored, never grid contents.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry summarises one viewer session.
type RunEntry struct {
	ID              int64
	Pattern         string // Seed pattern, empty for hand-drawn runs
	Rows            int
	Cols            int
	Generations     int
	PeakPopulation  int
	FinalPopulation int
	Duration        int // Duration in seconds
	Source          string // "local" or the SSH user
	CreatedAt       time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs             int
	TotalGenerations int64
	MaxGenerations   int
	MaxPopulation    int
	AvgGenerations   float64
	LastRun          time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

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
			pattern TEXT NOT NULL DEFAULT '',
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			generations INTEGER NOT NULL DEFAULT 0,
			peak_population INTEGER NOT NULL DEFAULT 0,
			final_population INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_generations ON runs(generations DESC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	if run.Source == "" {
		run.Source = "local"
	}
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (pattern, rows, cols, generations, peak_population, final_population, duration_secs, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Pattern, run.Rows, run.Cols, run.Generations,
		run.PeakPopulation, run.FinalPopulation, run.Duration, run.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, pattern, rows, cols, generations, peak_population,
	final_population, duration_secs, source, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// LongestRuns retrieves the runs that advanced the most generations.
func (s *Store) LongestRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY generations DESC, id ASC LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.Pattern,
			&e.Rows,
			&e.Cols,
			&e.Generations,
			&e.PeakPopulation,
			&e.FinalPopulation,
			&e.Duration,
			&e.Source,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(generations), 0), COALESCE(MAX(generations), 0),
		        COALESCE(MAX(peak_population), 0), COALESCE(AVG(generations), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.TotalGenerations, &stats.MaxGenerations,
		&stats.MaxPopulation, &stats.AvgGenerations, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
