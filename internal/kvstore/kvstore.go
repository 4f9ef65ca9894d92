// Package kvstore provides typed load/save over the embedded key-value table.
//
// Load never fails from the caller's point of view: a missing key or a corrupt
// value logs a warning and materializes the typed default. Save serializes the
// value and swallows (but logs) encode and write failures, so the in-memory
// value stays authoritative for the session even when the persisted copy is
// stale.
package kvstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Keys for each persisted entity family.
const (
	KeyQuestions       = "revtrack_questions"
	KeyUserStats       = "revtrack_user_stats"
	KeyActivityLog     = "revtrack_activity_log"
	KeySettings        = "revtrack_settings"
	KeyDailyLog        = "revtrack_daily_log"
	KeyCalendarEntries = "revtrack_calendar_entries"
	KeySyllabi         = "revtrack_syllabi"
)

// Keys lists every key owned by the store, in persistence order.
func Keys() []string {
	return []string{
		KeyQuestions,
		KeyUserStats,
		KeyActivityLog,
		KeySettings,
		KeyDailyLog,
		KeyCalendarEntries,
		KeySyllabi,
	}
}

// Store wraps the kv_entries table.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// New creates a Store over an opened database.
func New(db *sqlx.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Load reads and decodes the value stored under key into a fresh T.
// On a missing key or a decode failure it returns fallback().
func Load[T any](ctx context.Context, s *Store, key string, fallback func() T) T {
	var raw string
	err := s.db.GetContext(ctx, &raw, "SELECT value FROM kv_entries WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback()
	}
	if err != nil {
		slog.Default().Warn("failed to load entry, using default", "key", key, "error", err)
		return fallback()
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		slog.Default().Warn("corrupt entry, using default", "key", key, "error", err)
		return fallback()
	}
	return value
}

// Save serializes value and upserts it under key. Failures are logged and
// swallowed.
func Save[T any](ctx context.Context, s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Default().Error("failed to encode entry", "key", key, "error", err)
		return
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), s.now().UTC()); err != nil {
		slog.Default().Error("failed to save entry", "key", key, "error", err)
	}
}

// Delete removes the value stored under key. Failures are logged and
// swallowed.
func (s *Store) Delete(ctx context.Context, key string) {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE key = ?", key); err != nil {
		slog.Default().Error("failed to delete entry", "key", key, "error", err)
	}
}
