package tracker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_tracker "github.com/amitrd/revtrack/internal/mocks/tracker"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/remote"
)

func TestLocalStore_ExportSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	s.AddQuestion(ctx, model.Question{Name: "Two Sum", Difficulty: model.DifficultyEasy})
	s.SaveCalendarEntry(ctx, "2025-06-20", model.CalendarEntry{Notes: "exam"})

	data, err := s.ExportSnapshot(ctx)
	require.NoError(t, err)

	var snapshot model.Snapshot
	require.NoError(t, json.Unmarshal([]byte(data), &snapshot))
	assert.Equal(t, model.SnapshotVersion, snapshot.Version)
	assert.Equal(t, s.now(), snapshot.ExportDate)
	require.Len(t, snapshot.Questions, 1)
	assert.Equal(t, "Two Sum", snapshot.Questions[0].Name)
	require.NotNil(t, snapshot.UserStats)
	assert.Equal(t, 1, snapshot.UserStats.Level)
	require.Contains(t, snapshot.CalendarEntries, "2025-06-20")
}

func TestLocalStore_ImportSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips through export", func(t *testing.T) {
		source := newTestStore(t, nil)
		source.AddQuestion(ctx, model.Question{Name: "Two Sum"})
		source.AddActivity(ctx, model.ActivityAdd, "imported entry")
		data, err := source.ExportSnapshot(ctx)
		require.NoError(t, err)

		target := newTestStore(t, nil)
		require.True(t, target.ImportSnapshot(ctx, data))

		assert.Equal(t, source.Questions(ctx), target.Questions(ctx))
		assert.Equal(t, source.ActivityLog(ctx), target.ActivityLog(ctx))
		assert.Equal(t, source.UserStats(ctx).Level, target.UserStats(ctx).Level)
	})

	t.Run("imported questions are re-pushed", func(t *testing.T) {
		source := newTestStore(t, nil)
		added := source.AddQuestion(ctx, model.Question{Name: "Two Sum"})
		data, err := source.ExportSnapshot(ctx)
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		pusher := mock_tracker.NewMockPusher(ctrl)
		pusher.EXPECT().PushItem(remote.CollectionQuestions, added.ID, gomock.Any())

		target := newTestStore(t, pusher)
		require.True(t, target.ImportSnapshot(ctx, data))
	})

	t.Run("absent families are left untouched", func(t *testing.T) {
		s := newTestStore(t, nil)
		s.AddQuestion(ctx, model.Question{Name: "Kept"})

		partial := `{"version":"1.0","settings":{"totalCycles":10}}`
		require.True(t, s.ImportSnapshot(ctx, partial))

		require.Len(t, s.Questions(ctx), 1)
		assert.Equal(t, 10, s.Settings(ctx).TotalCycles)
	})

	t.Run("malformed JSON is rejected without mutating", func(t *testing.T) {
		s := newTestStore(t, nil)
		s.AddQuestion(ctx, model.Question{Name: "Kept"})

		assert.False(t, s.ImportSnapshot(ctx, `{"version": not json`))
		assert.Len(t, s.Questions(ctx), 1)
	})

	t.Run("missing version is rejected", func(t *testing.T) {
		s := newTestStore(t, nil)
		assert.False(t, s.ImportSnapshot(ctx, `{"questions":[]}`))
	})

	t.Run("question without id is rejected", func(t *testing.T) {
		s := newTestStore(t, nil)
		assert.False(t, s.ImportSnapshot(ctx, `{"version":"1.0","questions":[{"name":"no id"}]}`))
	})
}

func TestLocalStore_ResetAll(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	pusher := mock_tracker.NewMockPusher(ctrl)
	pusher.EXPECT().PushItem(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	for _, collection := range remote.Collections() {
		pusher.EXPECT().DropCollection(collection)
	}

	s := newTestStore(t, pusher)
	s.AddQuestion(ctx, model.Question{Name: "Two Sum"})
	s.SaveUserStats(ctx, model.UserStats{TotalXP: 100, Level: 2})

	s.ResetAll(ctx)

	assert.Empty(t, s.Questions(ctx))
	assert.Equal(t, model.DefaultUserStats().Level, s.UserStats(ctx).Level)
	assert.Empty(t, s.ActivityLog(ctx))
}
