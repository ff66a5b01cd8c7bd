package storage

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/CHANDARA-code/countdown/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite persists the timer's key-value state and the session history in a
// single database file.
type SQLite struct {
	db *sql.DB
}

func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	s := &SQLite{db: db}
	if err := s.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) initTables() error {
	_, err := s.db.Exec(`
        CREATE TABLE IF NOT EXISTS state (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        )
    `)
	if err != nil {
		return errors.Wrap(err, "create state table")
	}

	_, err = s.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            start_time DATETIME NOT NULL,
            end_time DATETIME NOT NULL,
            requested INTEGER NOT NULL,
            elapsed INTEGER NOT NULL,
            outcome TEXT NOT NULL
        )
    `)
	return errors.Wrap(err, "create sessions table")
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, or ErrNotFound.
func (s *SQLite) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "get %q", key)
	}
	return value, nil
}

func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(`
        INSERT INTO state (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value
    `, key, value)
	return errors.Wrapf(err, "set %q", key)
}

func (s *SQLite) Remove(key string) error {
	_, err := s.db.Exec("DELETE FROM state WHERE key = ?", key)
	return errors.Wrapf(err, "remove %q", key)
}

// Session history methods

func (s *SQLite) InsertSession(session *models.Session) error {
	_, err := s.db.Exec(`
        INSERT INTO sessions (id, start_time, end_time, requested, elapsed, outcome)
        VALUES (?, ?, ?, ?, ?, ?)
    `, session.ID, session.StartTime, session.EndTime, session.Requested, session.Elapsed, session.Outcome)
	return errors.Wrap(err, "insert session")
}

// ListSessions returns up to limit sessions, most recent first.
func (s *SQLite) ListSessions(limit int) ([]*models.Session, error) {
	rows, err := s.db.Query(`
        SELECT id, start_time, end_time, requested, elapsed, outcome
        FROM sessions
        ORDER BY start_time DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list sessions")
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(
			&session.ID,
			&session.StartTime,
			&session.EndTime,
			&session.Requested,
			&session.Elapsed,
			&session.Outcome,
		); err != nil {
			return nil, errors.Wrap(err, "scan session")
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (s *SQLite) GetSessionStats(since time.Time) (*models.SessionStats, error) {
	stats := &models.SessionStats{}
	err := s.db.QueryRow(`
        SELECT
            COUNT(*),
            COALESCE(SUM(CASE WHEN outcome = 'completed' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(elapsed), 0),
            COALESCE(AVG(elapsed), 0)
        FROM sessions
        WHERE start_time >= ?
    `, since).Scan(
		&stats.TotalSessions,
		&stats.CompletedRuns,
		&stats.TotalSeconds,
		&stats.AverageSeconds,
	)
	if err != nil {
		return nil, errors.Wrap(err, "session stats")
	}
	return stats, nil
}
