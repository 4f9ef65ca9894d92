package gamification

import (
	"context"
	"fmt"

	"github.com/amitrd/revtrack/internal/model"
)

const badgeXP = 30

// Badge is an achievement with a predicate over the current profile.
type Badge struct {
	ID          string
	Name        string
	Description string
	Earned      func(stats model.UserStats, questions []model.Question) bool
}

// UnlockedBadge pairs a badge with its unlock status for display.
type UnlockedBadge struct {
	Badge
	Unlocked bool
}

func countMastered(questions []model.Question) int {
	count := 0
	for _, q := range questions {
		if q.Status == model.StatusMastered {
			count++
		}
	}
	return count
}

var badges = []Badge{
	{
		ID: "first_question", Name: "First Step", Description: "Log your first question",
		Earned: func(_ model.UserStats, q []model.Question) bool { return len(q) >= 1 },
	},
	{
		ID: "ten_questions", Name: "Getting Started", Description: "Log 10 questions",
		Earned: func(_ model.UserStats, q []model.Question) bool { return len(q) >= 10 },
	},
	{
		ID: "fifty_questions", Name: "Committed", Description: "Log 50 questions",
		Earned: func(_ model.UserStats, q []model.Question) bool { return len(q) >= 50 },
	},
	{
		ID: "hundred_questions", Name: "Centurion", Description: "Log 100 questions",
		Earned: func(_ model.UserStats, q []model.Question) bool { return len(q) >= 100 },
	},
	{
		ID: "five_hundred", Name: "Question Warrior", Description: "Log 500 questions",
		Earned: func(_ model.UserStats, q []model.Question) bool { return len(q) >= 500 },
	},
	{
		ID: "first_revision", Name: "Revisor", Description: "Complete first revision",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.TotalRevisions >= 1 },
	},
	{
		ID: "fifty_revisions", Name: "Diligent", Description: "Complete 50 revisions",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.TotalRevisions >= 50 },
	},
	{
		ID: "two_hundred_rev", Name: "Review Master", Description: "Complete 200 revisions",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.TotalRevisions >= 200 },
	},
	{
		ID: "first_mastered", Name: "First Mastery", Description: "Master your first question",
		Earned: func(_ model.UserStats, q []model.Question) bool { return countMastered(q) >= 1 },
	},
	{
		ID: "ten_mastered", Name: "Scholar", Description: "Master 10 questions",
		Earned: func(_ model.UserStats, q []model.Question) bool { return countMastered(q) >= 10 },
	},
	{
		ID: "fifty_mastered", Name: "Grandmaster", Description: "Master 50 questions",
		Earned: func(_ model.UserStats, q []model.Question) bool { return countMastered(q) >= 50 },
	},
	{
		ID: "streak_7", Name: "Week Warrior", Description: "7-day streak",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.LongestStreak >= 7 },
	},
	{
		ID: "streak_30", Name: "Monthly Dedication", Description: "30-day streak",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.LongestStreak >= 30 },
	},
	{
		ID: "streak_100", Name: "Unstoppable", Description: "100-day streak",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.LongestStreak >= 100 },
	},
	{
		ID: "level_5", Name: "Rising Star", Description: "Reach Level 5",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.Level >= 5 },
	},
	{
		ID: "level_10", Name: "Veteran", Description: "Reach Level 10",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.Level >= 10 },
	},
	{
		ID: "level_25", Name: "Legend", Description: "Reach Level 25",
		Earned: func(s model.UserStats, _ []model.Question) bool { return s.Level >= 25 },
	},
	{
		ID: "all_subjects", Name: "Well-Rounded", Description: "Solve from 5+ subjects",
		Earned: func(_ model.UserStats, q []model.Question) bool {
			subjects := map[string]struct{}{}
			for _, question := range q {
				subjects[question.Subject] = struct{}{}
			}
			return len(subjects) >= 5
		},
	},
	{
		ID: "hard_master", Name: "Hard Hitter", Description: "Master 5 Hard questions",
		Earned: func(_ model.UserStats, q []model.Question) bool {
			count := 0
			for _, question := range q {
				if question.Difficulty == model.DifficultyHard && question.Status == model.StatusMastered {
					count++
				}
			}
			return count >= 5
		},
	},
	{
		ID: "speed_demon", Name: "Speed Demon", Description: "Solve 5 questions in under 15 minutes each",
		Earned: func(_ model.UserStats, q []model.Question) bool {
			count := 0
			for _, question := range q {
				if question.TimeTaken > 0 && question.TimeTaken <= 15 {
					count++
				}
			}
			return count >= 5
		},
	},
}

// CheckBadges scans the catalog and awards any newly earned badges, each worth
// a fixed XP bonus. Already held badges are never re-awarded.
func (e *Engine) CheckBadges(ctx context.Context) []Badge {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := e.store.UserStats(ctx)
	questions := e.store.Questions(ctx)

	held := make(map[string]struct{}, len(stats.Badges))
	for _, id := range stats.Badges {
		held[id] = struct{}{}
	}

	var earned []Badge
	for _, badge := range badges {
		if _, ok := held[badge.ID]; ok {
			continue
		}
		if badge.Earned(stats, questions) {
			stats.Badges = append(stats.Badges, badge.ID)
			earned = append(earned, badge)
		}
	}
	if len(earned) == 0 {
		return nil
	}

	e.store.SaveUserStats(ctx, stats)
	for _, badge := range earned {
		e.awardXPLocked(ctx, badgeXP, fmt.Sprintf("Badge: %s", badge.Name))
		e.store.AddActivity(ctx, model.ActivityBadge, fmt.Sprintf("Earned badge: %q", badge.Name))
		e.notifier.Toast(fmt.Sprintf("Badge Unlocked: %s!", badge.Name), "success")
	}
	return earned
}

// AllBadges returns the whole catalog with per-badge unlock status.
func (e *Engine) AllBadges(ctx context.Context) []UnlockedBadge {
	stats := e.store.UserStats(ctx)
	held := make(map[string]struct{}, len(stats.Badges))
	for _, id := range stats.Badges {
		held[id] = struct{}{}
	}

	all := make([]UnlockedBadge, 0, len(badges))
	for _, badge := range badges {
		_, unlocked := held[badge.ID]
		all = append(all, UnlockedBadge{Badge: badge, Unlocked: unlocked})
	}
	return all
}
