package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitrd/revtrack/internal/gamification"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/testutil"
	"github.com/amitrd/revtrack/internal/tracker"
)

func newTestBuilder(t *testing.T) (*Builder, *tracker.LocalStore) {
	t.Helper()
	store := testutil.NewStore(t)
	engine := gamification.NewEngine(store, nil)
	return NewBuilder(store, engine), store
}

func TestBuilder_Markdown(t *testing.T) {
	ctx := context.Background()

	t.Run("profile reflects the stats record", func(t *testing.T) {
		builder, store := newTestBuilder(t)
		store.SaveUserStats(ctx, model.UserStats{
			TotalXP:        150,
			Level:          2,
			CurrentStreak:  4,
			LongestStreak:  9,
			TotalRevisions: 12,
			Badges:         []string{"first_question"},
		})

		markdown := builder.Markdown(ctx)
		assert.Contains(t, markdown, "# Progress Report")
		assert.Contains(t, markdown, fmt.Sprintf("Generated: %s", store.Today()))
		assert.Contains(t, markdown, "| Level | 2 |")
		assert.Contains(t, markdown, "| Total XP | 150 |")
		assert.Contains(t, markdown, "| Current streak | 4 days |")
		assert.Contains(t, markdown, "| Longest streak | 9 days |")
		assert.Contains(t, markdown, "| Total revisions | 12 |")
		assert.Contains(t, markdown, "| Badges earned | 1 |")
	})

	t.Run("overdue questions are listed", func(t *testing.T) {
		builder, store := newTestBuilder(t)
		added := store.AddQuestion(ctx, model.Question{Name: "Two Sum", Subject: "Arrays"})
		store.UpdateQuestion(ctx, added.ID, func(q *model.Question) {
			q.NextRevisionDate = "2020-01-01"
		})

		markdown := builder.Markdown(ctx)
		assert.Contains(t, markdown, "## Overdue Revisions")
		assert.Contains(t, markdown, "| Two Sum | Arrays | 2020-01-01 |")
	})

	t.Run("no overdue section without overdue questions", func(t *testing.T) {
		builder, _ := newTestBuilder(t)
		assert.NotContains(t, builder.Markdown(ctx), "## Overdue Revisions")
	})

	t.Run("upcoming week is listed", func(t *testing.T) {
		builder, store := newTestBuilder(t)
		// A fresh question is scheduled for the next day, inside the window.
		store.AddQuestion(ctx, model.Question{Name: "Two Sum", Subject: "Arrays"})

		markdown := builder.Markdown(ctx)
		assert.Contains(t, markdown, "## Due This Week")
		assert.Contains(t, markdown, "| Two Sum | Arrays |")
	})

	t.Run("daily log covers the trailing week", func(t *testing.T) {
		builder, store := newTestBuilder(t)
		store.LogDailyActivity(ctx, store.Today(), model.DailySolved)
		store.AddDailyXP(ctx, store.Today(), 25)

		markdown := builder.Markdown(ctx)
		assert.Contains(t, markdown, "## Last 7 Days")
		assert.Contains(t, markdown, fmt.Sprintf("| %s | 1 | 0 | 25 |", store.Today()))
	})

	t.Run("badge checklist marks held badges", func(t *testing.T) {
		builder, store := newTestBuilder(t)
		store.SaveUserStats(ctx, model.UserStats{Level: 1, Badges: []string{"first_question"}})

		markdown := builder.Markdown(ctx)
		assert.Contains(t, markdown, "- [x] First Step")
		assert.Contains(t, markdown, "- [ ] Getting Started")
	})
}

func TestBuilder_WriteMarkdown(t *testing.T) {
	ctx := context.Background()
	builder, store := newTestBuilder(t)

	dir := filepath.Join(t.TempDir(), "reports")
	path, err := builder.WriteMarkdown(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, fmt.Sprintf("progress-%s.md", store.Today())), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Progress Report")
}
