package revision

import (
	"context"
	"fmt"

	"github.com/amitrd/revtrack/internal/model"
)

// QuestionStore is the slice of the record store the service needs.
type QuestionStore interface {
	QuestionByID(ctx context.Context, id string) *model.Question
	UpdateQuestion(ctx context.Context, id string, apply func(*model.Question)) *model.Question
	Questions(ctx context.Context) []model.Question
	UserStats(ctx context.Context) model.UserStats
	SaveUserStats(ctx context.Context, stats model.UserStats)
	Settings(ctx context.Context) model.Settings
	AddActivity(ctx context.Context, activityType model.ActivityType, text string)
	LogDailyActivity(ctx context.Context, date string, kind model.DailyActivityKind)
	AddDailyXP(ctx context.Context, date string, xp int)
	Today() string
}

// Result reports what a completed revision did to the question.
type Result struct {
	Question  model.Question
	XPEarned  int
	Mastered  bool
	NextDate  string
	Cycle     int
	EaseDelta float64
}

// Service applies revision outcomes to the record store.
type Service struct {
	store QuestionStore
}

func NewService(store QuestionStore) *Service {
	return &Service{store: store}
}

// CompleteRevision grades one revision of a question. Quality 3 and up
// advances the cycle; below 3 the cycle is demoted and the question drops back
// to Needs Revision. Finishing the final cycle marks the question Mastered.
// Returns nil for an unknown question id.
func (s *Service) CompleteRevision(ctx context.Context, questionID string, quality, timeTaken int, notes string) *Result {
	quality = min(5, max(1, quality))

	settings := s.store.Settings(ctx)
	totalCycles := settings.TotalCycles
	if totalCycles == 0 {
		totalCycles = model.DefaultSettings().TotalCycles
	}
	today := s.store.Today()

	var result *Result
	updated := s.store.UpdateQuestion(ctx, questionID, func(q *model.Question) {
		previousEF := q.EaseFactor
		if previousEF == 0 {
			previousEF = DefaultEaseFactor
		}
		q.EaseFactor = UpdateEaseFactor(previousEF, quality)

		q.RevisionHistory = append(q.RevisionHistory, model.RevisionRecord{
			Date:      today,
			Quality:   quality,
			TimeTaken: timeTaken,
			Notes:     notes,
			Cycle:     q.RevisionCycle + 1,
		})

		if quality >= 3 {
			q.RevisionCycle++
			q.Streak++
		} else {
			q.RevisionCycle = max(0, q.RevisionCycle-1)
			q.Streak = 0
			q.Status = model.StatusNeedsRevision
		}

		xp := RevisionXP(quality, q.Difficulty, q.RevisionCycle)
		q.XPEarned += xp
		q.LastRevisionDate = today

		mastered := q.RevisionCycle >= totalCycles
		if mastered {
			q.Status = model.StatusMastered
			q.NextRevisionDate = ""
		} else {
			q.NextRevisionDate = NextDate(*q, settings, today)
		}

		result = &Result{
			XPEarned:  xp,
			Mastered:  mastered,
			NextDate:  q.NextRevisionDate,
			Cycle:     q.RevisionCycle,
			EaseDelta: q.EaseFactor - previousEF,
		}
	})
	if updated == nil {
		return nil
	}
	result.Question = *updated

	stats := s.store.UserStats(ctx)
	stats.TotalRevisions++
	s.store.SaveUserStats(ctx, stats)

	s.store.LogDailyActivity(ctx, today, model.DailyRevised)
	s.store.AddDailyXP(ctx, today, result.XPEarned)
	s.store.AddActivity(ctx, model.ActivityRevision,
		fmt.Sprintf("Revised %q (Cycle %d/%d, Quality: %d/5)", updated.Name, result.Cycle, totalCycles, quality))

	return result
}

// Due returns the questions due today or earlier, most urgent first.
func (s *Service) Due(ctx context.Context) []model.Question {
	today := s.store.Today()
	due := DueToday(s.store.Questions(ctx), today)
	sortByPriority(due, today)
	return due
}

func sortByPriority(questions []model.Question, today string) {
	for i := 1; i < len(questions); i++ {
		for j := i; j > 0 && PriorityScore(questions[j], today) > PriorityScore(questions[j-1], today); j-- {
			questions[j], questions[j-1] = questions[j-1], questions[j]
		}
	}
}
