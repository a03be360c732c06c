// Package storage provides SQLite-based persistence for player preferences.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Preference keys.
const (
	KeyMuted          = "muted"
	KeyLastDifficulty = "last_difficulty"
)

// Store manages the SQLite database connection for preferences.
type Store struct {
	db *sql.DB
}

// Preference is a single stored key/value pair.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// Get returns the stored value for key and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// All returns every stored preference ordered by key.
func (s *Store) All() ([]Preference, error) {
	rows, err := s.db.Query("SELECT key, value, updated_at FROM preferences ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query preferences: %w", err)
	}
	defer rows.Close()

	var prefs []Preference
	for rows.Next() {
		var p Preference
		var updatedAt any
		if err := rows.Scan(&p.Key, &p.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			p.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				p.UpdatedAt = parsed
			}
		}
		prefs = append(prefs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return prefs, nil
}

// Muted returns the stored mute preference and whether one was stored.
func (s *Store) Muted() (muted bool, ok bool, err error) {
	value, ok, err := s.Get(KeyMuted)
	if err != nil || !ok {
		return false, ok, err
	}
	muted, err = strconv.ParseBool(value)
	if err != nil {
		return false, false, fmt.Errorf("storage: bad %s value %q: %w", KeyMuted, value, err)
	}
	return muted, true, nil
}

// SetMuted stores the mute preference.
func (s *Store) SetMuted(muted bool) error {
	return s.Set(KeyMuted, strconv.FormatBool(muted))
}

// LastDifficulty returns the last selected difficulty, or "" if none.
func (s *Store) LastDifficulty() (string, error) {
	value, _, err := s.Get(KeyLastDifficulty)
	return value, err
}

// SetLastDifficulty stores the last selected difficulty.
func (s *Store) SetLastDifficulty(name string) error {
	return s.Set(KeyLastDifficulty, name)
}
