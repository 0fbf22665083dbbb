package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite connection. It is created at startup and passed
// explicitly to the repositories; there is no package-level connection.
type Store struct {
	db *sqlx.DB
}

// Connect opens (and if necessary creates) the tracker database at path
func Connect(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.initializeSchema(); err != nil {
		return nil, err
	}
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func (s *Store) initializeSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS phases (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			first_week INTEGER NOT NULL,
			last_week INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create phases table: %v", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS weeks (
			id INTEGER PRIMARY KEY,
			phase_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (phase_id) REFERENCES phases(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create weeks table: %v", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			week_id INTEGER NOT NULL,
			section TEXT NOT NULL,
			label TEXT NOT NULL,
			done BOOLEAN DEFAULT false,
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (week_id) REFERENCES weeks(id),
			UNIQUE(week_id, label)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create items table: %v", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			overall REAL NOT NULL,
			current_phase INTEGER NOT NULL,
			current_week INTEGER NOT NULL,
			completed_weeks INTEGER NOT NULL,
			total_weeks INTEGER NOT NULL,
			program_done BOOLEAN DEFAULT false,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %v", err)
	}

	return nil
}
