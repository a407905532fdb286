// Package storage keeps the round history of the running process in an
// in-memory SQLite database. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the in-memory database holding round results.
type Store struct {
	db *sql.DB
}

// Round is the outcome of one board.
type Round struct {
	Score     int           // Tiles cleared
	Tiles     int           // Board size
	Completed bool          // Board fully cleared (false: abandoned via new game/quit)
	Duration  time.Duration // From board generation to completion/abandonment
}

// RoundEntry is a stored round.
type RoundEntry struct {
	Round
	ID        int64
	CreatedAt time.Time
}

// OpenMemory creates an empty in-memory store.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			tiles INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding all rounds.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r Round) (int64, error) {
	completed := 0
	if r.Completed {
		completed = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO rounds (score, tiles, completed, duration_ms, created_at) VALUES (?, ?, ?, ?, ?)",
		r.Score, r.Tiles, completed, r.Duration.Milliseconds(), time.Now().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves up to limit rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, tiles, completed, duration_ms, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var completed int
		var durationMS int64
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Score, &e.Tiles, &completed, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Completed = completed != 0
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if parsed, err := time.ParseInLocation(timeLayout, createdAt, time.Local); err == nil {
			e.CreatedAt = parsed
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest score recorded so far, or 0 if none.
func (s *Store) BestScore() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// RoundCount returns the number of recorded rounds.
func (s *Store) RoundCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM rounds").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return count, nil
}
