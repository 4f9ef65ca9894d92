package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/revision"
)

type difficultyFlag model.Difficulty

func (d *difficultyFlag) Set(val string) error {
	for _, difficulty := range allDifficulties {
		if val == string(difficulty) {
			*d = difficultyFlag(difficulty)
			return nil
		}
	}
	return fmt.Errorf("invalid difficulty: %s", val)
}

func (d difficultyFlag) String() string {
	return string(d)
}

func (d *difficultyFlag) Type() string {
	return "Difficulty"
}

var (
	_               pflag.Value = (*difficultyFlag)(nil)
	allDifficulties             = []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}
)

func newQuestionCommand() *cobra.Command {
	questionCommand := &cobra.Command{
		Use:   "question",
		Short: "Manage tracked questions",
	}

	questionCommand.AddCommand(newQuestionAddCommand())
	questionCommand.AddCommand(newQuestionListCommand())
	questionCommand.AddCommand(newQuestionDeleteCommand())

	return questionCommand
}

func newQuestionAddCommand() *cobra.Command {
	var (
		subject   string
		timeTaken int
	)
	difficulty := difficultyFlag(model.DifficultyEasy)
	command := &cobra.Command{
		Use:   "add <name>",
		Short: "Log a newly solved question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			question := application.store.AddQuestion(ctx, model.Question{
				Name:       args[0],
				Subject:    subject,
				Difficulty: model.Difficulty(difficulty),
				TimeTaken:  timeTaken,
			})

			xp := revision.SolveXP(question.Difficulty)
			info := application.engine.AwardXP(ctx, xp, "Solved a question")
			application.store.LogDailyActivity(ctx, application.store.Today(), model.DailySolved)
			application.store.AddDailyXP(ctx, application.store.Today(), xp)
			streak := application.engine.RecordActivity(ctx)
			application.engine.CheckBadges(ctx)

			fmt.Printf("Added %q (id: %s). +%d XP, level %d, streak %d days.\n",
				question.Name, question.ID, xp, info.Level, streak)
			if question.NextRevisionDate != "" {
				fmt.Printf("First revision due: %s\n", question.NextRevisionDate)
			}
			return nil
		},
	}
	command.Flags().StringVar(&subject, "subject", "", "Subject or topic area")
	command.Flags().Var(&difficulty, "difficulty", fmt.Sprintf("Difficulty of the question. Possible values are %v", allDifficulties))
	command.Flags().IntVar(&timeTaken, "time", 0, "Minutes spent solving")
	return command
}

func newQuestionListCommand() *cobra.Command {
	var statusFilter string
	command := &cobra.Command{
		Use:   "list",
		Short: "List tracked questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			questions := application.store.Questions(ctx)
			if len(questions) == 0 {
				fmt.Println("No questions tracked yet.")
				return nil
			}

			for _, q := range questions {
				if statusFilter != "" && string(q.Status) != statusFilter {
					continue
				}
				due := q.NextRevisionDate
				if due == "" {
					due = "-"
				}
				fmt.Printf("%s  %-40s %-10s %-14s cycle %2d  due %s\n",
					q.ID, q.Name, q.Difficulty, q.Status, q.RevisionCycle, due)
			}
			return nil
		},
	}
	command.Flags().StringVar(&statusFilter, "status", "", "Filter by status")
	return command
}

func newQuestionDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tracked question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			if application.store.QuestionByID(ctx, args[0]) == nil {
				return fmt.Errorf("no question with id %s", args[0])
			}
			application.store.DeleteQuestion(ctx, args[0])
			fmt.Println("Deleted.")
			return nil
		},
	}
}
