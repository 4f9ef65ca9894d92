// Package gamification computes XP, levels, streaks and badges over the
// record store.
package gamification

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/revision"
	"github.com/amitrd/revtrack/internal/tracker"
)

// LevelInfo describes where a total XP amount lands on the level curve.
type LevelInfo struct {
	Level          int
	CurrentLevelXP int
	XPForNextLevel int
	TotalXP        int
	Progress       float64
}

// XPForLevel returns the XP needed to clear the given level.
// The curve is 100 * level^1.5, cumulative across levels.
func XPForLevel(level int) int {
	return int(math.Round(100 * math.Pow(float64(level), 1.5)))
}

// LevelFromTotalXP walks the level curve to locate a total XP amount.
func LevelFromTotalXP(totalXP int) LevelInfo {
	level := 1
	cumulative := 0
	for {
		needed := XPForLevel(level)
		if cumulative+needed > totalXP {
			break
		}
		cumulative += needed
		level++
	}
	return LevelInfo{
		Level:          level,
		CurrentLevelXP: totalXP - cumulative,
		XPForNextLevel: XPForLevel(level),
		TotalXP:        totalXP,
		Progress:       float64(totalXP-cumulative) / float64(XPForLevel(level)),
	}
}

// streakMilestones maps streak lengths to one-time XP bonuses.
var streakMilestones = map[int]int{
	7:   50,
	14:  100,
	30:  200,
	60:  400,
	100: 800,
}

// Engine applies gamification side effects to the record store.
type Engine struct {
	store    tracker.Store
	notifier Notifier

	// Serializes read-modify-write sequences on the stats record.
	mu sync.Mutex

	now func() time.Time
}

func NewEngine(store tracker.Store, notifier Notifier) *Engine {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Engine{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// AwardXP adds XP to the stats record, recomputing the level and firing
// level-up side effects.
func (e *Engine) AwardXP(ctx context.Context, amount int, reason string) LevelInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.awardXPLocked(ctx, amount, reason)
}

func (e *Engine) awardXPLocked(ctx context.Context, amount int, reason string) LevelInfo {
	stats := e.store.UserStats(ctx)
	stats.TotalXP += amount

	info := LevelFromTotalXP(stats.TotalXP)
	previousLevel := stats.Level
	if previousLevel == 0 {
		previousLevel = 1
	}
	stats.Level = info.Level
	e.store.SaveUserStats(ctx, stats)

	if info.Level > previousLevel {
		e.store.AddActivity(ctx, model.ActivityLevelUp, fmt.Sprintf("Leveled up to Level %d!", info.Level))
		e.notifier.Confetti()
		e.notifier.Toast(fmt.Sprintf("Level Up! You're now Level %d!", info.Level), "success")
	}
	return info
}

// RecordActivity advances the daily streak for an active day. Same-day calls
// are no-ops; a gap of more than one day resets the streak to 1. Milestone
// lengths pay a one-time XP bonus. Returns the current streak.
func (e *Engine) RecordActivity(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := e.store.UserStats(ctx)
	today := e.now().Format(model.DateLayout)
	yesterday := e.now().AddDate(0, 0, -1).Format(model.DateLayout)

	if stats.LastActiveDate == today {
		return stats.CurrentStreak
	}

	if stats.LastActiveDate == yesterday {
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 1
	}
	stats.LastActiveDate = today
	stats.LongestStreak = max(stats.LongestStreak, stats.CurrentStreak)

	// Persist the streak before awarding the bonus so the bonus path reads
	// the updated record.
	e.store.SaveUserStats(ctx, stats)

	if xp, ok := streakMilestones[stats.CurrentStreak]; ok {
		e.awardXPLocked(ctx, xp, fmt.Sprintf("%d-day streak bonus", stats.CurrentStreak))
		e.store.AddActivity(ctx, model.ActivityStreak,
			fmt.Sprintf("%d-day streak! +%d XP bonus!", stats.CurrentStreak, xp))
		e.notifier.Toast(fmt.Sprintf("%d-day streak achieved! +%d XP!", stats.CurrentStreak, xp), "success")
	}
	return stats.CurrentStreak
}

// CheckStreak resets a lapsed streak without recording activity. Call on
// startup so a missed day shows as lost before the next active day.
func (e *Engine) CheckStreak(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := e.store.UserStats(ctx)
	today := e.now().Format(model.DateLayout)
	yesterday := e.now().AddDate(0, 0, -1).Format(model.DateLayout)

	if stats.LastActiveDate != "" && stats.LastActiveDate != today && stats.LastActiveDate != yesterday {
		if stats.CurrentStreak > 0 {
			e.store.AddActivity(ctx, model.ActivityStreakLost,
				fmt.Sprintf("Streak of %d days lost", stats.CurrentStreak))
			stats.CurrentStreak = 0
			e.store.SaveUserStats(ctx, stats)
		}
	}
	return stats.CurrentStreak
}

// RefreshNotificationDot raises or clears the overdue indicator depending on
// whether overdue revisions exist and alerts are enabled.
func (e *Engine) RefreshNotificationDot(ctx context.Context) {
	settings := e.store.Settings(ctx)
	if !settings.OverdueAlerts {
		e.notifier.NotificationDot(false)
		return
	}
	overdue := revision.Overdue(e.store.Questions(ctx), e.store.Today())
	e.notifier.NotificationDot(len(overdue) > 0)
}
