package revision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amitrd/revtrack/internal/model"
)

func TestNextDate(t *testing.T) {
	settings := model.DefaultSettings()

	tests := []struct {
		name     string
		question model.Question
		want     string
	}{
		{
			name:     "cycle 0 is due the next day",
			question: model.Question{RevisionCycle: 0, EaseFactor: 2.5, DateSolved: "2025-06-01"},
			want:     "2025-06-02",
		},
		{
			name:     "cycle 3 uses the base table",
			question: model.Question{RevisionCycle: 3, EaseFactor: 2.5, LastRevisionDate: "2025-06-01"},
			want:     "2025-06-08",
		},
		{
			name:     "low ease factor shortens the interval",
			question: model.Question{RevisionCycle: 3, EaseFactor: 1.3, LastRevisionDate: "2025-06-01"},
			want:     "2025-06-05",
		},
		{
			name:     "zero ease factor defaults to 2.5",
			question: model.Question{RevisionCycle: 3, LastRevisionDate: "2025-06-01"},
			want:     "2025-06-08",
		},
		{
			name:     "last revision date takes precedence over solve date",
			question: model.Question{RevisionCycle: 1, EaseFactor: 2.5, DateSolved: "2025-05-01", LastRevisionDate: "2025-06-01"},
			want:     "2025-06-02",
		},
		{
			name:     "falls back to today when no dates are set",
			question: model.Question{RevisionCycle: 1, EaseFactor: 2.5},
			want:     "2025-06-16",
		},
		{
			name:     "final cycle reached returns empty",
			question: model.Question{RevisionCycle: 15, EaseFactor: 2.5, LastRevisionDate: "2025-06-01"},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDate(tt.question, settings, "2025-06-15"))
		})
	}
}

func TestNextDate_ExtrapolatesPastTheTable(t *testing.T) {
	settings := model.Settings{
		TotalCycles:   20,
		BaseIntervals: []int{0, 1, 3},
	}
	// Cycle 3 is one step past the table: 3 * 1.5 = 4.5, rounded to 5.
	question := model.Question{RevisionCycle: 3, EaseFactor: 2.5, LastRevisionDate: "2025-06-01"}
	assert.Equal(t, "2025-06-06", NextDate(question, settings, "2025-06-15"))

	// Cycle 4 compounds the growth: 3 * 1.5^2 = 6.75, rounded to 7.
	question.RevisionCycle = 4
	assert.Equal(t, "2025-06-08", NextDate(question, settings, "2025-06-15"))
}

func TestUpdateEaseFactor(t *testing.T) {
	tests := []struct {
		name    string
		ef      float64
		quality int
		want    float64
	}{
		{name: "perfect recall raises the factor", ef: 2.5, quality: 5, want: 2.6},
		{name: "quality 4 keeps the factor", ef: 2.5, quality: 4, want: 2.5},
		{name: "quality 3 lowers slightly", ef: 2.5, quality: 3, want: 2.36},
		{name: "quality 1 drops hard", ef: 2.5, quality: 1, want: 1.96},
		{name: "factor never drops below the floor", ef: 1.3, quality: 1, want: 1.3},
		{name: "quality above 5 is clamped", ef: 2.5, quality: 9, want: 2.6},
		{name: "quality below 1 is clamped", ef: 2.5, quality: 0, want: 1.96},
		{name: "zero factor defaults to 2.5", ef: 0, quality: 4, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, UpdateEaseFactor(tt.ef, tt.quality), 0.001)
		})
	}
}

func TestSolveXP(t *testing.T) {
	assert.Equal(t, 5, SolveXP(model.DifficultyEasy))
	assert.Equal(t, 10, SolveXP(model.DifficultyMedium))
	assert.Equal(t, 15, SolveXP(model.DifficultyHard))
	assert.Equal(t, 5, SolveXP(model.Difficulty("unknown")))
}

func TestRevisionXP(t *testing.T) {
	tests := []struct {
		name       string
		quality    int
		difficulty model.Difficulty
		cycle      int
		want       int
	}{
		{name: "easy neutral quality", quality: 3, difficulty: model.DifficultyEasy, cycle: 1, want: 10},
		{name: "hard perfect recall", quality: 5, difficulty: model.DifficultyHard, cycle: 1, want: 31},
		{name: "cycle bonus every third cycle", quality: 3, difficulty: model.DifficultyEasy, cycle: 6, want: 14},
		{name: "poor recall is floored at 5", quality: 1, difficulty: model.DifficultyEasy, cycle: 0, want: 5},
		{name: "unknown difficulty uses the easy base", quality: 3, difficulty: model.Difficulty(""), cycle: 0, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RevisionXP(tt.quality, tt.difficulty, tt.cycle))
		})
	}
}

func TestDueTodayAndOverdue(t *testing.T) {
	questions := []model.Question{
		{ID: "overdue", NextRevisionDate: "2025-06-10"},
		{ID: "today", NextRevisionDate: "2025-06-15"},
		{ID: "future", NextRevisionDate: "2025-06-20"},
		{ID: "mastered", Status: model.StatusMastered, NextRevisionDate: "2025-06-10"},
		{ID: "unscheduled", NextRevisionDate: ""},
	}

	due := DueToday(questions, "2025-06-15")
	dueIDs := make([]string, 0, len(due))
	for _, q := range due {
		dueIDs = append(dueIDs, q.ID)
	}
	assert.ElementsMatch(t, []string{"overdue", "today"}, dueIDs)

	overdue := Overdue(questions, "2025-06-15")
	overdueIDs := make([]string, 0, len(overdue))
	for _, q := range overdue {
		overdueIDs = append(overdueIDs, q.ID)
	}
	assert.ElementsMatch(t, []string{"overdue"}, overdueIDs)
}

func TestUpcoming(t *testing.T) {
	questions := []model.Question{
		{ID: "today", NextRevisionDate: "2025-06-15"},
		{ID: "in3", NextRevisionDate: "2025-06-18"},
		{ID: "in7", NextRevisionDate: "2025-06-22"},
		{ID: "in10", NextRevisionDate: "2025-06-25"},
	}

	upcoming := Upcoming(questions, "2025-06-15", 7)
	ids := make([]string, 0, len(upcoming))
	for _, q := range upcoming {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"in3", "in7"}, ids, "ordered by due date, excluding today and past the horizon")
}

func TestPriorityScore(t *testing.T) {
	t.Run("overdue days dominate", func(t *testing.T) {
		fresh := model.Question{NextRevisionDate: "2025-06-15", EaseFactor: 2.5, Streak: 5, Difficulty: model.DifficultyEasy}
		overdue := fresh
		overdue.NextRevisionDate = "2025-06-10"

		assert.Greater(t, PriorityScore(overdue, "2025-06-15"), PriorityScore(fresh, "2025-06-15"))
	})

	t.Run("harder and shakier questions score higher", func(t *testing.T) {
		easy := model.Question{NextRevisionDate: "2025-06-15", EaseFactor: 2.5, Streak: 5, Difficulty: model.DifficultyEasy}
		hard := model.Question{NextRevisionDate: "2025-06-15", EaseFactor: 1.3, Streak: 0, Difficulty: model.DifficultyHard}

		assert.Greater(t, PriorityScore(hard, "2025-06-15"), PriorityScore(easy, "2025-06-15"))
	})

	t.Run("exact weights", func(t *testing.T) {
		question := model.Question{
			NextRevisionDate: "2025-06-13",
			EaseFactor:       2.0,
			Streak:           2,
			Difficulty:       model.DifficultyMedium,
		}
		// 2 days overdue (20) + (3-2.0)*20 (20) + (5-2)*3 (9) + medium (4) = 53.
		assert.Equal(t, 53, PriorityScore(question, "2025-06-15"))
	})
}
