package tracker

import (
	"context"

	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/remote"
)

// activityLogLimit bounds the audit trail to the newest entries.
const activityLogLimit = 200

// ActivityLog returns the audit trail, most recent first.
func (s *LocalStore) ActivityLog(ctx context.Context) []model.ActivityLogEntry {
	return kvstore.Load(ctx, s.kv, kvstore.KeyActivityLog, emptyActivityLog)
}

// AddActivity prepends an entry and truncates the log to the newest 200.
func (s *LocalStore) AddActivity(ctx context.Context, activityType model.ActivityType, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addActivityLocked(ctx, activityType, text)
}

func (s *LocalStore) addActivityLocked(ctx context.Context, activityType model.ActivityType, text string) {
	entry := model.ActivityLogEntry{
		ID:        s.generateID(),
		Type:      activityType,
		Text:      text,
		Timestamp: s.now(),
	}

	log := append([]model.ActivityLogEntry{entry}, s.ActivityLog(ctx)...)
	if len(log) > activityLogLimit {
		log = log[:activityLogLimit]
	}
	kvstore.Save(ctx, s.kv, kvstore.KeyActivityLog, log)
	s.pusher.PushItem(remote.CollectionActivityLog, entry.ID, entry)
}

// DailyLog returns the per-day counters keyed by date string.
func (s *LocalStore) DailyLog(ctx context.Context) map[string]model.DailyLogEntry {
	return kvstore.Load(ctx, s.kv, kvstore.KeyDailyLog, emptyDailyLog)
}

// LogDailyActivity bumps the solved or revised counter for the given date,
// creating the day's entry lazily.
func (s *LocalStore) LogDailyActivity(ctx context.Context, date string, kind model.DailyActivityKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.DailyLog(ctx)
	entry := log[date]
	switch kind {
	case model.DailySolved:
		entry.Solved++
	case model.DailyRevised:
		entry.Revised++
	}
	log[date] = entry
	kvstore.Save(ctx, s.kv, kvstore.KeyDailyLog, log)
	s.pusher.PushItem(remote.CollectionDailyLog, date, entry)
}

// AddDailyXP adds earned XP to the given date's counters, creating the day's
// entry lazily.
func (s *LocalStore) AddDailyXP(ctx context.Context, date string, xp int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.DailyLog(ctx)
	entry := log[date]
	entry.XPEarned += xp
	log[date] = entry
	kvstore.Save(ctx, s.kv, kvstore.KeyDailyLog, log)
	s.pusher.PushItem(remote.CollectionDailyLog, date, entry)
}
