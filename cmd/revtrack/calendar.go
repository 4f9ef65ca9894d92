package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amitrd/revtrack/internal/model"
)

func newCalendarCommand() *cobra.Command {
	calendarCommand := &cobra.Command{
		Use:   "calendar",
		Short: "Per-day study planner",
	}

	calendarCommand.AddCommand(newCalendarShowCommand())
	calendarCommand.AddCommand(newCalendarNoteCommand())
	calendarCommand.AddCommand(newCalendarTaskCommand())
	calendarCommand.AddCommand(newCalendarClearCommand())

	return calendarCommand
}

func newCalendarShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [date]",
		Short: "Show the planner entry for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			date := application.store.Today()
			if len(args) == 1 {
				date = args[0]
			}

			entry := application.store.CalendarEntry(ctx, date)
			if entry == nil {
				fmt.Printf("No entry for %s.\n", date)
				return nil
			}

			fmt.Printf("%s", date)
			if entry.Important {
				fmt.Print("  [important]")
			}
			fmt.Println()
			if entry.Notes != "" {
				fmt.Printf("Notes: %s\n", entry.Notes)
			}
			for i, task := range entry.Tasks {
				marker := " "
				if task.Done {
					marker = "x"
				}
				fmt.Printf("  %d. [%s] %s\n", i+1, marker, task.Text)
			}
			return nil
		},
	}
}

func newCalendarNoteCommand() *cobra.Command {
	var (
		date      string
		important bool
	)
	command := &cobra.Command{
		Use:   "note <text>",
		Short: "Set the note on a planner day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			if date == "" {
				date = application.store.Today()
			}

			entry := model.CalendarEntry{}
			if existing := application.store.CalendarEntry(ctx, date); existing != nil {
				entry = *existing
			}
			entry.Notes = args[0]
			entry.Important = important

			application.store.SaveCalendarEntry(ctx, date, entry)
			fmt.Printf("Saved note for %s.\n", date)
			return nil
		},
	}
	command.Flags().StringVar(&date, "date", "", "Date key, defaults to today")
	command.Flags().BoolVar(&important, "important", false, "Mark the day as important")
	return command
}

func newCalendarTaskCommand() *cobra.Command {
	taskCommand := &cobra.Command{
		Use:   "task",
		Short: "Manage a planner day's task list",
	}

	var addDate string
	addCommand := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to a planner day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			if addDate == "" {
				addDate = application.store.Today()
			}

			entry := model.CalendarEntry{}
			if existing := application.store.CalendarEntry(ctx, addDate); existing != nil {
				entry = *existing
			}
			entry.Tasks = append(entry.Tasks, model.CalendarTask{Text: args[0]})

			application.store.SaveCalendarEntry(ctx, addDate, entry)
			fmt.Printf("Added task to %s.\n", addDate)
			return nil
		},
	}
	addCommand.Flags().StringVar(&addDate, "date", "", "Date key, defaults to today")

	var doneDate string
	doneCommand := &cobra.Command{
		Use:   "done <number>",
		Short: "Toggle a task's completion by its list number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			if doneDate == "" {
				doneDate = application.store.Today()
			}

			entry := application.store.CalendarEntry(ctx, doneDate)
			if entry == nil {
				return fmt.Errorf("no entry for %s", doneDate)
			}
			var index int
			if _, err := fmt.Sscanf(args[0], "%d", &index); err != nil || index < 1 || index > len(entry.Tasks) {
				return fmt.Errorf("invalid task number %q", args[0])
			}
			entry.Tasks[index-1].Done = !entry.Tasks[index-1].Done

			application.store.SaveCalendarEntry(ctx, doneDate, *entry)
			fmt.Println("Toggled.")
			return nil
		},
	}
	doneCommand.Flags().StringVar(&doneDate, "date", "", "Date key, defaults to today")

	taskCommand.AddCommand(addCommand)
	taskCommand.AddCommand(doneCommand)
	return taskCommand
}

func newCalendarClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <date>",
		Short: "Remove the planner entry for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			application.store.DeleteCalendarEntry(context.Background(), args[0])
			fmt.Println("Cleared.")
			return nil
		},
	}
}
