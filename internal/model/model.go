// Package model defines the persisted entity families of the tracker.
package model

import "time"

// DateLayout is the calendar-day format used for all date-keyed state.
// Lexicographic comparison of these strings matches chronological order.
const DateLayout = "2006-01-02"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Status string

const (
	StatusSolved        Status = "Solved"
	StatusNeedsRevision Status = "Needs Revision"
	StatusMastered      Status = "Mastered"
)

// RevisionRecord is a single completed revision of a question.
type RevisionRecord struct {
	Date      string `json:"date"`
	Quality   int    `json:"quality"`
	TimeTaken int    `json:"timeTaken"`
	Notes     string `json:"notes,omitempty"`
	Cycle     int    `json:"cycle"`
}

// Question is a tracked study question with its spaced-revision state.
type Question struct {
	ID               string           `json:"id" validate:"required"`
	Name             string           `json:"name"`
	Subject          string           `json:"subject"`
	Difficulty       Difficulty       `json:"difficulty"`
	Status           Status           `json:"status"`
	TimeTaken        int              `json:"timeTaken,omitempty"`
	RevisionCycle    int              `json:"revisionCycle"`
	RevisionHistory  []RevisionRecord `json:"revisionHistory"`
	EaseFactor       float64          `json:"easeFactor"`
	Streak           int              `json:"streak"`
	XPEarned         int              `json:"xpEarned"`
	DateSolved       string           `json:"dateSolved,omitempty"`
	LastRevisionDate string           `json:"lastRevisionDate,omitempty"`
	NextRevisionDate string           `json:"nextRevisionDate,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// RecordID implements syncer.Record.
func (q Question) RecordID() string { return q.ID }

// ModifiedAt implements syncer.Record.
func (q Question) ModifiedAt() time.Time { return q.UpdatedAt }

// UserStats is the singleton gamification state record.
type UserStats struct {
	TotalXP        int       `json:"totalXP"`
	Level          int       `json:"level"`
	CurrentStreak  int       `json:"currentStreak"`
	LongestStreak  int       `json:"longestStreak"`
	LastActiveDate string    `json:"lastActiveDate,omitempty"`
	Badges         []string  `json:"badges"`
	TotalRevisions int       `json:"totalRevisions"`
	DailyGoal      int       `json:"dailyGoal"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DefaultUserStats returns the stats record for a fresh profile.
func DefaultUserStats() UserStats {
	return UserStats{
		TotalXP:       0,
		Level:         1,
		CurrentStreak: 0,
		LongestStreak: 0,
		Badges:        []string{},
		DailyGoal:     5,
	}
}

// Settings holds the user-tunable revision parameters.
type Settings struct {
	TotalCycles          int       `json:"totalCycles"`
	DailyGoal            int       `json:"dailyGoal"`
	BaseIntervals        []int     `json:"baseIntervals"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	OverdueAlerts        bool      `json:"overdueAlerts"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// DefaultSettings returns the revision settings for a fresh profile.
func DefaultSettings() Settings {
	return Settings{
		TotalCycles:   15,
		DailyGoal:     5,
		BaseIntervals: []int{0, 1, 3, 7, 14, 21, 30, 45, 60, 90, 120, 150, 180, 210, 240},
		OverdueAlerts: true,
	}
}

type ActivityType string

const (
	ActivityAdd        ActivityType = "add"
	ActivityDelete     ActivityType = "delete"
	ActivityRevision   ActivityType = "revision"
	ActivityLevelUp    ActivityType = "levelup"
	ActivityStreak     ActivityType = "streak"
	ActivityStreakLost ActivityType = "streak-lost"
	ActivityBadge      ActivityType = "badge"
)

// ActivityLogEntry is one line of the append-only audit trail.
type ActivityLogEntry struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Text      string       `json:"text"`
	Timestamp time.Time    `json:"timestamp"`
}

type DailyActivityKind string

const (
	DailySolved  DailyActivityKind = "solved"
	DailyRevised DailyActivityKind = "revised"
)

// DailyLogEntry aggregates per-day counters for streaks and heatmaps.
type DailyLogEntry struct {
	Solved   int `json:"solved"`
	Revised  int `json:"revised"`
	XPEarned int `json:"xpEarned"`
}

// CalendarTask is a checklist item attached to a calendar day.
type CalendarTask struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// CalendarEntry is per-day planner state, keyed by date string.
type CalendarEntry struct {
	DateKey      string         `json:"dateKey"`
	Important    bool           `json:"important"`
	Notes        string         `json:"notes,omitempty"`
	Tasks        []CalendarTask `json:"tasks,omitempty"`
	LastModified time.Time      `json:"lastModified"`
}

// IsEmpty reports whether the entry carries no user content. Empty entries
// are removed from the store instead of persisted.
func (e CalendarEntry) IsEmpty() bool {
	return !e.Important && e.Notes == "" && len(e.Tasks) == 0
}

// Topic is a single syllabus item.
type Topic struct {
	Name          string `json:"name"`
	Completed     bool   `json:"completed"`
	CompletedDate string `json:"completedDate,omitempty"`
}

// Syllabus is an ordered topic list for one exam stream.
type Syllabus struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stream    string    `json:"stream"`
	Topics    []Topic   `json:"topics"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SnapshotVersion is the schema version written into exported snapshots.
const SnapshotVersion = "1.0"

// Snapshot is the versioned export/import document covering every entity
// family. A nil family means "absent from the snapshot" on import; present
// families fully replace their local counterpart.
type Snapshot struct {
	Questions       []Question               `json:"questions,omitempty" validate:"omitempty,dive"`
	UserStats       *UserStats               `json:"userStats,omitempty"`
	ActivityLog     []ActivityLogEntry       `json:"activityLog,omitempty"`
	Settings        *Settings                `json:"settings,omitempty"`
	DailyLog        map[string]DailyLogEntry `json:"dailyLog,omitempty"`
	CalendarEntries map[string]CalendarEntry `json:"calendarEntries,omitempty"`
	Syllabi         []Syllabus               `json:"syllabi,omitempty"`
	ExportDate      time.Time                `json:"exportDate"`
	Version         string                   `json:"version" validate:"required"`
}
