package tracker

import (
	"context"

	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/remote"
)

// UserStats returns the singleton stats record, defaulted on first use.
func (s *LocalStore) UserStats(ctx context.Context) model.UserStats {
	return kvstore.Load(ctx, s.kv, kvstore.KeyUserStats, model.DefaultUserStats)
}

// SaveUserStats persists the stats record and schedules its remote push.
func (s *LocalStore) SaveUserStats(ctx context.Context, stats model.UserStats) {
	stats.UpdatedAt = s.now()
	if stats.Badges == nil {
		stats.Badges = []string{}
	}
	kvstore.Save(ctx, s.kv, kvstore.KeyUserStats, stats)
	s.pusher.PushItem(remote.CollectionUserStats, remote.SingletonID, stats)
}

// Settings returns the revision settings, defaulted on first use.
func (s *LocalStore) Settings(ctx context.Context) model.Settings {
	return kvstore.Load(ctx, s.kv, kvstore.KeySettings, model.DefaultSettings)
}

// SaveSettings persists the settings record and schedules its remote push.
func (s *LocalStore) SaveSettings(ctx context.Context, settings model.Settings) {
	settings.UpdatedAt = s.now()
	kvstore.Save(ctx, s.kv, kvstore.KeySettings, settings)
	s.pusher.PushItem(remote.CollectionSettings, remote.SingletonID, settings)
}
