// Package revision implements the modified SM-2 scheduling rules.
//
// Intervals grow along a configurable base table scaled by each question's
// ease factor; questions graduate to Mastered after the configured number of
// cycles.
package revision

import (
	"math"
	"time"

	"github.com/amitrd/revtrack/internal/model"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// Growth applied when a cycle runs past the base interval table.
	intervalGrowthFactor = 1.5
)

// NextDate returns the date key of the question's next revision, or "" when
// all cycles are done and no more revisions are due.
func NextDate(question model.Question, settings model.Settings, today string) string {
	baseIntervals := settings.BaseIntervals
	if len(baseIntervals) == 0 {
		baseIntervals = model.DefaultSettings().BaseIntervals
	}
	totalCycles := settings.TotalCycles
	if totalCycles == 0 {
		totalCycles = model.DefaultSettings().TotalCycles
	}
	ef := question.EaseFactor
	if ef == 0 {
		ef = DefaultEaseFactor
	}

	cycle := question.RevisionCycle
	if cycle >= totalCycles {
		return ""
	}

	var baseInterval int
	if cycle < len(baseIntervals) {
		baseInterval = baseIntervals[cycle]
	} else {
		// Extrapolate past the table: last known interval times growth.
		lastKnown := float64(baseIntervals[len(baseIntervals)-1])
		baseInterval = int(math.Round(lastKnown * math.Pow(intervalGrowthFactor, float64(cycle-len(baseIntervals)+1))))
	}

	// Scale by ease factor, normalized around the default.
	adjusted := int(math.Round(float64(baseInterval) * (ef / DefaultEaseFactor)))
	if adjusted < 1 {
		adjusted = 1
	}

	from := question.LastRevisionDate
	if from == "" {
		from = question.DateSolved
	}
	if from == "" {
		from = today
	}
	fromDate, err := time.Parse(model.DateLayout, from)
	if err != nil {
		fromDate, _ = time.Parse(model.DateLayout, today)
	}
	return fromDate.AddDate(0, 0, adjusted).Format(model.DateLayout)
}

// UpdateEaseFactor applies the SM-2 adjustment for a quality grade (1..5),
// rounded to two decimals and floored at MinEaseFactor.
func UpdateEaseFactor(ef float64, quality int) float64 {
	if ef == 0 {
		ef = DefaultEaseFactor
	}
	q := float64(min(5, max(1, quality)))
	updated := ef + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	updated = math.Round(updated*100) / 100
	return math.Max(updated, MinEaseFactor)
}

// SolveXP returns the XP awarded for logging a newly solved question.
func SolveXP(difficulty model.Difficulty) int {
	switch difficulty {
	case model.DifficultyMedium:
		return 10
	case model.DifficultyHard:
		return 15
	default:
		return 5
	}
}

// RevisionXP returns the XP earned for a completed revision: a difficulty
// base, a quality bonus and a cycle progression bonus, floored at 5.
func RevisionXP(quality int, difficulty model.Difficulty, cycle int) int {
	base := 10
	switch difficulty {
	case model.DifficultyMedium:
		base = 15
	case model.DifficultyHard:
		base = 25
	}

	xp := base + (quality-3)*3 + (cycle/3)*2
	if xp < 5 {
		return 5
	}
	return xp
}

// DueToday returns the questions due for revision on or before today.
func DueToday(questions []model.Question, today string) []model.Question {
	due := make([]model.Question, 0)
	for _, q := range questions {
		if q.Status == model.StatusMastered || q.NextRevisionDate == "" {
			continue
		}
		if q.NextRevisionDate <= today {
			due = append(due, q)
		}
	}
	return due
}

// Overdue returns the questions whose revision date has already passed.
func Overdue(questions []model.Question, today string) []model.Question {
	overdue := make([]model.Question, 0)
	for _, q := range questions {
		if q.Status == model.StatusMastered || q.NextRevisionDate == "" {
			continue
		}
		if q.NextRevisionDate < today {
			overdue = append(overdue, q)
		}
	}
	return overdue
}

// Upcoming returns questions due within the next days after today, ordered
// by due date.
func Upcoming(questions []model.Question, today string, days int) []model.Question {
	todayDate, err := time.Parse(model.DateLayout, today)
	if err != nil {
		return nil
	}
	horizon := todayDate.AddDate(0, 0, days).Format(model.DateLayout)

	upcoming := make([]model.Question, 0)
	for _, q := range questions {
		if q.Status == model.StatusMastered || q.NextRevisionDate == "" {
			continue
		}
		if q.NextRevisionDate > today && q.NextRevisionDate <= horizon {
			upcoming = append(upcoming, q)
		}
	}
	sortByDueDate(upcoming)
	return upcoming
}

func sortByDueDate(questions []model.Question) {
	for i := 1; i < len(questions); i++ {
		for j := i; j > 0 && questions[j].NextRevisionDate < questions[j-1].NextRevisionDate; j-- {
			questions[j], questions[j-1] = questions[j-1], questions[j]
		}
	}
}

// PriorityScore rates how urgently a question needs revising. Higher is more
// urgent: days overdue dominate, then low ease factor, low per-question
// streak, and difficulty.
func PriorityScore(question model.Question, today string) int {
	score := 0.0

	if question.NextRevisionDate != "" {
		due, err1 := time.Parse(model.DateLayout, question.NextRevisionDate)
		now, err2 := time.Parse(model.DateLayout, today)
		if err1 == nil && err2 == nil {
			daysOverdue := int(now.Sub(due).Hours() / 24)
			if daysOverdue > 0 {
				score += float64(daysOverdue) * 10
			}
		}
	}

	ef := question.EaseFactor
	if ef == 0 {
		ef = DefaultEaseFactor
	}
	score += (3.0 - ef) * 20

	if question.Streak < 5 {
		score += float64(5-question.Streak) * 3
	}

	switch question.Difficulty {
	case model.DifficultyMedium:
		score += 4
	case model.DifficultyHard:
		score += 6
	default:
		score += 2
	}

	return int(math.Round(score))
}
