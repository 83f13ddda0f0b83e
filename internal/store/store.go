// Package store provides SQLite persistence for atlascope.
//
// Two concerns live here: the key-value slot that carries the comparison
// selection across restarts, and a snapshot of the last successfully fetched
// dataset so the dashboard has something to show when the network is down.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"atlascope/internal/country"
)

// selectionKey is the fixed slot the selection is persisted under.
const selectionKey = "country-comparison-storage"

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS snapshot (
		code TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		fetched_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshot_fetched ON snapshot(fetched_at DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveSelection writes the selected codes to the fixed slot as a JSON array.
func (s *Store) SaveSelection(codes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if codes == nil {
		codes = []string{}
	}
	data, err := json.Marshal(codes)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, selectionKey, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}

// LoadSelection reads the persisted selection. A missing slot is not an
// error; it returns an empty selection.
func (s *Store) LoadSelection() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", selectionKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load selection: %w", err)
	}

	var codes []string
	if err := json.Unmarshal([]byte(value), &codes); err != nil {
		return nil, fmt.Errorf("unmarshal selection: %w", err)
	}
	return codes, nil
}

// SaveSnapshot replaces the dataset snapshot with the given countries,
// all stamped with the same fetch time.
func (s *Store) SaveSnapshot(countries []country.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snapshot"); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO snapshot (code, data, fetched_at) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, c := range countries {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal country %s: %w", c.Code, err)
		}
		if _, err := stmt.Exec(c.Code, string(data), now); err != nil {
			return fmt.Errorf("insert country %s: %w", c.Code, err)
		}
	}

	return tx.Commit()
}

// LoadSnapshot returns the snapshot dataset and its fetch time.
// An empty snapshot returns an empty slice and a zero time.
func (s *Store) LoadSnapshot() ([]country.Country, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT data, fetched_at FROM snapshot ORDER BY code")
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	var countries []country.Country
	var fetchedAt time.Time
	for rows.Next() {
		var data string
		var fetched time.Time
		if err := rows.Scan(&data, &fetched); err != nil {
			return nil, time.Time{}, fmt.Errorf("scan snapshot row: %w", err)
		}

		var c country.Country
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, time.Time{}, fmt.Errorf("unmarshal snapshot row: %w", err)
		}
		countries = append(countries, c)
		fetchedAt = fetched
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}

	return countries, fetchedAt, nil
}
