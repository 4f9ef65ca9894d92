// Package report renders progress summaries as markdown and PDF.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/amitrd/revtrack/internal/gamification"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/revision"
	"github.com/amitrd/revtrack/internal/tracker"
)

// Builder assembles a progress report from the record store.
type Builder struct {
	store  tracker.Store
	engine *gamification.Engine
}

func NewBuilder(store tracker.Store, engine *gamification.Engine) *Builder {
	return &Builder{store: store, engine: engine}
}

// Markdown renders the progress report as a markdown document.
func (b *Builder) Markdown(ctx context.Context) string {
	questions := b.store.Questions(ctx)
	stats := b.store.UserStats(ctx)
	today := b.store.Today()
	info := gamification.LevelFromTotalXP(stats.TotalXP)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Progress Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", today)

	fmt.Fprintf(&sb, "## Profile\n\n")
	fmt.Fprintf(&sb, "| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Level | %d |\n", info.Level)
	fmt.Fprintf(&sb, "| Total XP | %d |\n", info.TotalXP)
	fmt.Fprintf(&sb, "| Level progress | %d / %d XP |\n", info.CurrentLevelXP, info.XPForNextLevel)
	fmt.Fprintf(&sb, "| Current streak | %d days |\n", stats.CurrentStreak)
	fmt.Fprintf(&sb, "| Longest streak | %d days |\n", stats.LongestStreak)
	fmt.Fprintf(&sb, "| Total revisions | %d |\n", stats.TotalRevisions)
	fmt.Fprintf(&sb, "| Badges earned | %d |\n\n", len(stats.Badges))

	fmt.Fprintf(&sb, "## Questions\n\n")
	byStatus := map[model.Status]int{}
	byDifficulty := map[model.Difficulty]int{}
	for _, q := range questions {
		byStatus[q.Status]++
		byDifficulty[q.Difficulty]++
	}
	fmt.Fprintf(&sb, "| Status | Count |\n|---|---|\n")
	for _, status := range []model.Status{model.StatusSolved, model.StatusNeedsRevision, model.StatusMastered} {
		fmt.Fprintf(&sb, "| %s | %d |\n", status, byStatus[status])
	}
	fmt.Fprintf(&sb, "\n| Difficulty | Count |\n|---|---|\n")
	for _, difficulty := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		fmt.Fprintf(&sb, "| %s | %d |\n", difficulty, byDifficulty[difficulty])
	}
	sb.WriteString("\n")

	overdue := revision.Overdue(questions, today)
	if len(overdue) > 0 {
		sort.Slice(overdue, func(i, j int) bool {
			return revision.PriorityScore(overdue[i], today) > revision.PriorityScore(overdue[j], today)
		})
		fmt.Fprintf(&sb, "## Overdue Revisions\n\n")
		fmt.Fprintf(&sb, "| Question | Subject | Due | Priority |\n|---|---|---|---|\n")
		for _, q := range overdue {
			fmt.Fprintf(&sb, "| %s | %s | %s | %d |\n",
				q.Name, q.Subject, q.NextRevisionDate, revision.PriorityScore(q, today))
		}
		sb.WriteString("\n")
	}

	upcoming := revision.Upcoming(questions, today, 7)
	if len(upcoming) > 0 {
		fmt.Fprintf(&sb, "## Due This Week\n\n")
		fmt.Fprintf(&sb, "| Question | Subject | Due | Cycle |\n|---|---|---|---|\n")
		for _, q := range upcoming {
			fmt.Fprintf(&sb, "| %s | %s | %s | %d |\n", q.Name, q.Subject, q.NextRevisionDate, q.RevisionCycle)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "## Last 7 Days\n\n")
	dailyLog := b.store.DailyLog(ctx)
	fmt.Fprintf(&sb, "| Date | Solved | Revised | XP |\n|---|---|---|---|\n")
	todayDate, _ := time.Parse(model.DateLayout, today)
	for offset := 6; offset >= 0; offset-- {
		date := todayDate.AddDate(0, 0, -offset).Format(model.DateLayout)
		entry := dailyLog[date]
		fmt.Fprintf(&sb, "| %s | %d | %d | %d |\n", date, entry.Solved, entry.Revised, entry.XPEarned)
	}
	sb.WriteString("\n")

	unlockedBadges := b.engine.AllBadges(ctx)
	fmt.Fprintf(&sb, "## Badges\n\n")
	for _, badge := range unlockedBadges {
		marker := " "
		if badge.Unlocked {
			marker = "x"
		}
		fmt.Fprintf(&sb, "- [%s] %s: %s\n", marker, badge.Name, badge.Description)
	}
	sb.WriteString("\n")

	return sb.String()
}

// WriteMarkdown writes the report into the output directory and returns the
// markdown file path.
func (b *Builder) WriteMarkdown(ctx context.Context, outputDirectory string) (string, error) {
	if err := os.MkdirAll(outputDirectory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
	}

	markdownPath := filepath.Join(outputDirectory, fmt.Sprintf("progress-%s.md", b.store.Today()))
	if err := os.WriteFile(markdownPath, []byte(b.Markdown(ctx)), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	return markdownPath, nil
}
