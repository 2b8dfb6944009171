// Package storage records finished matches in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives as long as its Store; nothing is written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection holding the match history.
type Store struct {
	db   *sql.DB
	name string
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID         uuid.UUID
	Variant    string // Registered game ID
	Session    string // Local run or SSH session that played it
	LeftScore  int
	RightScore int
	Winner     string // "left", "right" or empty for an abandoned match
	Ticks      uint64
	FinishedAt time.Time
}

// VariantStats aggregates the matches of one variant.
type VariantStats struct {
	Variant      string
	Played       int
	LeftWins     int
	RightWins    int
	LongestTicks uint64
}

// OpenMemory opens a private in-memory database. Stores opened with the same
// name share one database; an empty name picks a unique one.
func OpenMemory(name string) (*Store, error) {
	if name == "" {
		name = uuid.NewString()
	}
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// The database disappears with its last connection.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, name: name}

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
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			session TEXT NOT NULL DEFAULT '',
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_variant ON matches(variant);
		CREATE INDEX IF NOT EXISTS idx_matches_finished ON matches(finished_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Name returns the name of the in-memory database.
func (s *Store) Name() string {
	return s.name
}

// Close closes the database connection, discarding the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match. A nil ID and a zero FinishedAt are filled in.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(rec MatchRecord) (uuid.UUID, error) {
	if rec.Variant == "" {
		return uuid.Nil, errors.New("storage: match without variant")
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (id, variant, session, left_score, right_score, winner, ticks, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(),
		rec.Variant,
		rec.Session,
		rec.LeftScore,
		rec.RightScore,
		rec.Winner,
		int64(min(rec.Ticks, 1<<63-1)), //nolint:gosec // clamped to max int64
		rec.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save match: %w", err)
	}

	return rec.ID, nil
}

// RecentMatches retrieves the most recent matches of all variants.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryMatches(
		`SELECT id, variant, session, left_score, right_score, winner, ticks, finished_at
		 FROM matches
		 ORDER BY finished_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// MatchesByVariant retrieves the most recent matches of one variant.
func (s *Store) MatchesByVariant(variant string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryMatches(
		`SELECT id, variant, session, left_score, right_score, winner, ticks, finished_at
		 FROM matches
		 WHERE variant = ?
		 ORDER BY finished_at DESC, rowid DESC
		 LIMIT ?`,
		variant, limit,
	)
}

// MatchesBySession retrieves the matches played in one session, oldest first.
func (s *Store) MatchesBySession(session string) ([]MatchRecord, error) {
	return s.queryMatches(
		`SELECT id, variant, session, left_score, right_score, winner, ticks, finished_at
		 FROM matches
		 WHERE session = ?
		 ORDER BY finished_at ASC, rowid ASC`,
		session,
	)
}

func (s *Store) queryMatches(query string, args ...any) ([]MatchRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var (
			rec        MatchRecord
			id         string
			ticks      int64
			finishedAt int64
		)
		if err := rows.Scan(
			&id,
			&rec.Variant,
			&rec.Session,
			&rec.LeftScore,
			&rec.RightScore,
			&rec.Winner,
			&ticks,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: bad match id %q: %w", id, err)
		}
		rec.Ticks = uint64(max(ticks, 0))
		rec.FinishedAt = time.UnixMilli(finishedAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns the aggregate of one variant, or of every variant when
// variant is empty. A variant without matches yields zero counts.
func (s *Store) Stats(variant string) (VariantStats, error) {
	stats := VariantStats{Variant: variant}
	var longest sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'left' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'right' THEN 1 ELSE 0 END), 0),
		        MAX(ticks)
		 FROM matches
		 WHERE ? = '' OR variant = ?`,
		variant, variant,
	).Scan(&stats.Played, &stats.LeftWins, &stats.RightWins, &longest)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if longest.Valid {
		stats.LongestTicks = uint64(max(longest.Int64, 0))
	}
	return stats, nil
}
