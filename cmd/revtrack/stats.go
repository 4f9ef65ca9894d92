package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amitrd/revtrack/internal/gamification"
	"github.com/amitrd/revtrack/internal/model"
)

func newStatsCommand() *cobra.Command {
	var showBadges bool
	command := &cobra.Command{
		Use:   "stats",
		Short: "Show level, XP, streak and badge progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			streak := application.engine.CheckStreak(ctx)
			application.engine.RefreshNotificationDot(ctx)

			stats := application.store.UserStats(ctx)
			info := gamification.LevelFromTotalXP(stats.TotalXP)
			questions := application.store.Questions(ctx)

			mastered := 0
			for _, q := range questions {
				if q.Status == model.StatusMastered {
					mastered++
				}
			}

			fmt.Printf("Level %d  (%d / %d XP, %.0f%%)\n",
				info.Level, info.CurrentLevelXP, info.XPForNextLevel, info.Progress*100)
			fmt.Printf("Total XP:        %d\n", info.TotalXP)
			fmt.Printf("Current streak:  %d days\n", streak)
			fmt.Printf("Longest streak:  %d days\n", stats.LongestStreak)
			fmt.Printf("Questions:       %d (%d mastered)\n", len(questions), mastered)
			fmt.Printf("Total revisions: %d\n", stats.TotalRevisions)
			fmt.Printf("Badges:          %d\n", len(stats.Badges))

			if showBadges {
				fmt.Println()
				for _, badge := range application.engine.AllBadges(ctx) {
					marker := " "
					if badge.Unlocked {
						marker = "x"
					}
					fmt.Printf("[%s] %-20s %s\n", marker, badge.Name, badge.Description)
				}
			}
			return nil
		},
	}
	command.Flags().BoolVar(&showBadges, "badges", false, "Show the full badge catalog")
	return command
}
