package tracker

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitrd/revtrack/internal/model"
)

func TestLocalStore_AddActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("newest entry comes first", func(t *testing.T) {
		s := newTestStore(t, nil)
		s.AddActivity(ctx, model.ActivityAdd, "first")
		s.AddActivity(ctx, model.ActivityRevision, "second")

		log := s.ActivityLog(ctx)
		require.Len(t, log, 2)
		assert.Equal(t, "second", log[0].Text)
		assert.Equal(t, "first", log[1].Text)
		assert.NotEmpty(t, log[0].ID)
	})

	t.Run("log is capped at the newest 200 entries", func(t *testing.T) {
		s := newTestStore(t, nil)
		for i := 0; i < 205; i++ {
			s.AddActivity(ctx, model.ActivityAdd, fmt.Sprintf("entry %d", i))
		}

		log := s.ActivityLog(ctx)
		require.Len(t, log, 200)
		assert.Equal(t, "entry 204", log[0].Text)
		assert.Equal(t, "entry 5", log[199].Text)
	})
}

func TestLocalStore_LogDailyActivity(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	t.Run("creates the day entry lazily", func(t *testing.T) {
		s.LogDailyActivity(ctx, "2025-06-15", model.DailySolved)
		s.LogDailyActivity(ctx, "2025-06-15", model.DailySolved)
		s.LogDailyActivity(ctx, "2025-06-15", model.DailyRevised)

		log := s.DailyLog(ctx)
		require.Contains(t, log, "2025-06-15")
		assert.Equal(t, 2, log["2025-06-15"].Solved)
		assert.Equal(t, 1, log["2025-06-15"].Revised)
	})

	t.Run("days accumulate independently", func(t *testing.T) {
		s.LogDailyActivity(ctx, "2025-06-16", model.DailyRevised)

		log := s.DailyLog(ctx)
		assert.Equal(t, 0, log["2025-06-16"].Solved)
		assert.Equal(t, 1, log["2025-06-16"].Revised)
		assert.Equal(t, 2, log["2025-06-15"].Solved)
	})
}

func TestLocalStore_AddDailyXP(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	s.AddDailyXP(ctx, "2025-06-15", 10)
	s.AddDailyXP(ctx, "2025-06-15", 15)

	log := s.DailyLog(ctx)
	assert.Equal(t, 25, log["2025-06-15"].XPEarned)
}
