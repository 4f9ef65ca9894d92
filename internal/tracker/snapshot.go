package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/remote"
)

// ExportSnapshot produces a versioned JSON document holding every entity
// family, suitable for round-trip import.
func (s *LocalStore) ExportSnapshot(ctx context.Context) (string, error) {
	stats := s.UserStats(ctx)
	settings := s.Settings(ctx)
	snapshot := model.Snapshot{
		Questions:       s.Questions(ctx),
		UserStats:       &stats,
		ActivityLog:     s.ActivityLog(ctx),
		Settings:        &settings,
		DailyLog:        s.DailyLog(ctx),
		CalendarEntries: s.CalendarEntries(ctx),
		Syllabi:         s.Syllabi(ctx),
		ExportDate:      s.now(),
		Version:         model.SnapshotVersion,
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json.MarshalIndent() > %w", err)
	}
	return string(raw), nil
}

// ImportSnapshot replaces local state from a snapshot document. Each entity
// family present in the snapshot fully replaces the local one; absent
// families are left untouched. Imported questions are re-pushed remotely.
// Malformed input reports failure without mutating anything.
func (s *LocalStore) ImportSnapshot(ctx context.Context, data string) bool {
	var snapshot model.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		slog.Default().Error("import failed", "error", err)
		return false
	}
	if err := s.validate.Struct(snapshot); err != nil {
		slog.Default().Error("import rejected", "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot.Questions != nil {
		kvstore.Save(ctx, s.kv, kvstore.KeyQuestions, snapshot.Questions)
		for _, q := range snapshot.Questions {
			s.pusher.PushItem(remote.CollectionQuestions, q.ID, q)
		}
	}
	if snapshot.UserStats != nil {
		kvstore.Save(ctx, s.kv, kvstore.KeyUserStats, *snapshot.UserStats)
	}
	if snapshot.ActivityLog != nil {
		kvstore.Save(ctx, s.kv, kvstore.KeyActivityLog, snapshot.ActivityLog)
	}
	if snapshot.Settings != nil {
		kvstore.Save(ctx, s.kv, kvstore.KeySettings, *snapshot.Settings)
	}
	if snapshot.DailyLog != nil {
		kvstore.Save(ctx, s.kv, kvstore.KeyDailyLog, snapshot.DailyLog)
	}
	if snapshot.CalendarEntries != nil {
		kvstore.Save(ctx, s.kv, kvstore.KeyCalendarEntries, snapshot.CalendarEntries)
	}
	if snapshot.Syllabi != nil {
		kvstore.Save(ctx, s.kv, kvstore.KeySyllabi, snapshot.Syllabi)
	}
	return true
}
