// Package store keeps a history of finished sessions in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// Session represents a finished session record
type Session struct {
	ID      int64
	Outcome event.Outcome
	// Seed is zero when the session cannot be reproduced from a seed alone.
	Seed               uint64
	Duration           time.Duration
	Frames             uint64
	AsteroidsDestroyed int
	MissilesFired      int
	CreatedAt          time.Time
}

// Summary aggregates the whole history
type Summary struct {
	Played int
	Won    int
	Lost   int
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, logging.WrapError(err, "failed to open session store %s", path)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, logging.WrapError(err, "failed to enable WAL on %s", path)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		outcome TEXT NOT NULL,
		seed INTEGER NOT NULL DEFAULT 0,
		duration_seconds REAL NOT NULL DEFAULT 0,
		frames INTEGER NOT NULL DEFAULT 0,
		asteroids_destroyed INTEGER NOT NULL DEFAULT 0,
		missiles_fired INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_outcome ON sessions(outcome);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate session store: %w", err)
	}
	return nil
}

// RecordSession stores a finished session and returns its ID. A zero
// CreatedAt is filled with the current time.
func (db *DB) RecordSession(ctx context.Context, s *Session) (int64, error) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	// SQLite integers are signed; the seed keeps its bits.
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO sessions (outcome, seed, duration_seconds, frames, asteroids_destroyed, missiles_fired, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(s.Outcome), int64(s.Seed), s.Duration.Seconds(), int64(s.Frames),
		s.AsteroidsDestroyed, s.MissilesFired, s.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read session id: %w", err)
	}
	s.ID = id
	return id, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (db *DB) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, outcome, seed, duration_seconds, frames, asteroids_destroyed, missiles_fired, created_at
		 FROM sessions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			s        Session
			outcome  string
			seed     int64
			frames   int64
			duration float64
		)
		if err := rows.Scan(&s.ID, &outcome, &seed, &duration, &frames,
			&s.AsteroidsDestroyed, &s.MissilesFired, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.Outcome = event.Outcome(outcome)
		s.Seed = uint64(seed)
		s.Frames = uint64(frames)
		s.Duration = time.Duration(duration * float64(time.Second))
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// BestWinTime returns the shortest winning session. ok is false when no
// session has been won yet.
func (db *DB) BestWinTime(ctx context.Context) (best time.Duration, ok bool, err error) {
	var seconds sql.NullFloat64
	row := db.conn.QueryRowContext(ctx,
		"SELECT MIN(duration_seconds) FROM sessions WHERE outcome = ?", string(event.OutcomeWon))
	if err := row.Scan(&seconds); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to query best win: %w", err)
	}
	if !seconds.Valid {
		return 0, false, nil
	}
	return time.Duration(seconds.Float64 * float64(time.Second)), true, nil
}

// Summary counts played, won and lost sessions.
func (db *DB) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	row := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0)
		FROM sessions`, string(event.OutcomeWon), string(event.OutcomeLost))
	if err := row.Scan(&s.Played, &s.Won, &s.Lost); err != nil {
		return Summary{}, fmt.Errorf("failed to summarize sessions: %w", err)
	}
	return s, nil
}

// Subscribe records every finished session published on bus. seed is
// stored for the first session only: a restart continues the same random
// source, so later sessions are recorded with a zero seed. Write errors are
// logged; they never interrupt the game.
func (db *DB) Subscribe(bus *event.Bus, seed uint64, logger *logging.Logger) *event.Subscription {
	return bus.Subscribe(event.GameEnded, func(e event.Event) {
		ended, ok := e.(*event.GameEndedEvent)
		if !ok {
			return
		}
		sessionSeed := seed
		seed = 0

		ctx := context.Background()
		id, err := db.RecordSession(ctx, &Session{
			Outcome:            ended.Outcome,
			Seed:               sessionSeed,
			Duration:           ended.Elapsed,
			Frames:             ended.Frames,
			AsteroidsDestroyed: ended.AsteroidsDestroyed,
			MissilesFired:      ended.MissilesFired,
		})
		if err != nil {
			logger.Error(ctx, "failed to record session", err)
			return
		}
		logger.Info(ctx, "session recorded",
			"id", id,
			"outcome", string(ended.Outcome),
			"duration", ended.Elapsed.String(),
		)
	})
}
