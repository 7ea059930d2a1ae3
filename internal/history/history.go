/*
Package history keeps a local log of discovery searches.

The log is SQLite-backed via modernc.org/sqlite (pure Go, no CGo) and
degrades gracefully: if the database cannot be opened every operation
becomes a no-op, so search itself never fails because of history.
*/
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const defaultRecentLimit = 20

// Entry is one recorded search.
type Entry struct {
	ID         int64     `json:"id"`
	Query      string    `json:"query,omitempty"`
	Categories []string  `json:"categories,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Results    int       `json:"results"`
	TookMS     int64     `json:"took_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store is the SQLite-backed search log.
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	dbPath  string
	enabled bool
}

// Open opens (or creates) the history database at the given path. It never
// fails: when the database is unavailable the returned store is disabled
// and all operations are no-ops.
func Open(path string) *Store {
	s := &Store{dbPath: path}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logrus.Warnf("history disabled: creating directory: %v", err)
		return s
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logrus.Warnf("history disabled: opening database: %v", err)
		return s
	}
	if err := db.Ping(); err != nil {
		logrus.Warnf("history disabled: pinging database: %v", err)
		db.Close()
		return s
	}
	if err := migrate(db); err != nil {
		logrus.Warnf("history disabled: migrating schema: %v", err)
		db.Close()
		return s
	}

	s.db = db
	s.enabled = true
	return s
}

// migrate creates the searches table if it does not exist yet.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT,
			categories TEXT,
			tags TEXT,
			results INTEGER NOT NULL,
			took_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`); err != nil {
		return fmt.Errorf("creating searches table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_searches_created
		ON searches(created_at DESC)
	`); err != nil {
		return fmt.Errorf("creating searches index: %w", err)
	}

	return nil
}

// Path returns the database location the store was opened with.
func (s *Store) Path() string { return s.dbPath }

// Enabled reports whether the store is actually persisting entries.
func (s *Store) Enabled() bool { return s.enabled }

// Record appends one search to the log. Failures are logged and swallowed
// so callers never fail because of history.
func (s *Store) Record(e Entry) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO searches (query, categories, tags, results, took_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		e.Query,
		strings.Join(e.Categories, ","),
		strings.Join(e.Tags, ","),
		e.Results,
		e.TookMS,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		logrus.Warnf("failed to record search: %v", err)
	}

	return nil
}

// Recent returns the newest entries, most recent first. A non-positive
// limit falls back to a small default.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if !s.enabled || s.db == nil {
		return []Entry{}, nil
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, query, categories, tags, results, took_ms, created_at
		FROM searches
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		logrus.Warnf("failed to query search history: %v", err)
		return []Entry{}, nil
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var categories, tags, createdAt string

		if err := rows.Scan(&e.ID, &e.Query, &categories, &tags, &e.Results, &e.TookMS, &createdAt); err != nil {
			logrus.Warnf("failed to scan history row: %v", err)
			continue
		}

		e.Categories = splitList(categories)
		e.Tags = splitList(tags)
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			logrus.Warnf("failed to parse history timestamp: %v", err)
			continue
		}

		entries = append(entries, e)
	}

	return entries, nil
}

// Clear deletes every recorded search.
func (s *Store) Clear() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM searches"); err != nil {
		return fmt.Errorf("clearing search history: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing history database: %w", err)
	}
	s.db = nil
	return nil
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
