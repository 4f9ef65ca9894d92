// Package database provides the embedded database backing the local cache.
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// Open opens (creating if necessary) the local SQLite database at path.
// Pass ":memory:" for an ephemeral database.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	// SQLite serializes writers; a single connection keeps the caller and the
	// background sync worker from tripping over database locks.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec(schema) > %w", err)
	}

	return db, nil
}
