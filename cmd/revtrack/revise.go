package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amitrd/revtrack/internal/revision"
)

func newReviseCommand() *cobra.Command {
	reviseCommand := &cobra.Command{
		Use:   "revise",
		Short: "Revision queue and completion",
	}

	reviseCommand.AddCommand(newReviseListCommand())
	reviseCommand.AddCommand(newReviseCompleteCommand())

	return reviseCommand
}

func newReviseListCommand() *cobra.Command {
	var upcomingDays int
	command := &cobra.Command{
		Use:   "list",
		Short: "Show questions due for revision, most urgent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			today := application.store.Today()
			due := application.revisions.Due(ctx)
			if len(due) == 0 {
				fmt.Println("Nothing due today.")
			} else {
				fmt.Printf("Due today (%d):\n", len(due))
				for _, q := range due {
					fmt.Printf("  %s  %-40s %-10s cycle %2d  priority %d\n",
						q.ID, q.Name, q.Difficulty, q.RevisionCycle, revision.PriorityScore(q, today))
				}
			}

			if upcomingDays > 0 {
				upcoming := revision.Upcoming(application.store.Questions(ctx), today, upcomingDays)
				if len(upcoming) > 0 {
					fmt.Printf("\nUpcoming (%d days):\n", upcomingDays)
					for _, q := range upcoming {
						fmt.Printf("  %s  %-40s due %s\n", q.ID, q.Name, q.NextRevisionDate)
					}
				}
			}
			return nil
		},
	}
	command.Flags().IntVar(&upcomingDays, "upcoming", 0, "Also show questions due within the next N days")
	return command
}

func newReviseCompleteCommand() *cobra.Command {
	var (
		quality   int
		timeTaken int
		notes     string
	)
	command := &cobra.Command{
		Use:   "complete <id>",
		Short: "Grade a completed revision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quality < 1 || quality > 5 {
				return fmt.Errorf("quality must be between 1 and 5, got %d", quality)
			}

			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			result := application.revisions.CompleteRevision(ctx, args[0], quality, timeTaken, notes)
			if result == nil {
				return fmt.Errorf("no question with id %s", args[0])
			}

			application.engine.AwardXP(ctx, result.XPEarned, "Completed a revision")
			streak := application.engine.RecordActivity(ctx)
			application.engine.CheckBadges(ctx)

			fmt.Printf("Revised %q: +%d XP, cycle %d, streak %d days.\n",
				result.Question.Name, result.XPEarned, result.Cycle, streak)
			if result.Mastered {
				fmt.Println("Mastered! No further revisions scheduled.")
			} else if result.NextDate != "" {
				fmt.Printf("Next revision due: %s\n", result.NextDate)
			}
			return nil
		},
	}
	command.Flags().IntVar(&quality, "quality", 3, "Recall quality from 1 (blank) to 5 (perfect)")
	command.Flags().IntVar(&timeTaken, "time", 0, "Minutes spent revising")
	command.Flags().StringVar(&notes, "notes", "", "Notes for this revision")
	return command
}
