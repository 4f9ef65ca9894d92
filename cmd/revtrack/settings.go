package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCommand() *cobra.Command {
	settingsCommand := &cobra.Command{
		Use:   "settings",
		Short: "Show or change revision settings",
	}

	settingsCommand.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			settings := application.store.Settings(context.Background())
			fmt.Printf("Total cycles:    %d\n", settings.TotalCycles)
			fmt.Printf("Daily goal:      %d\n", settings.DailyGoal)
			fmt.Printf("Base intervals:  %v\n", settings.BaseIntervals)
			fmt.Printf("Overdue alerts:  %t\n", settings.OverdueAlerts)
			return nil
		},
	})

	var (
		totalCycles   int
		dailyGoal     int
		overdueAlerts bool
	)
	setCommand := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()
			settings := application.store.Settings(ctx)
			if cmd.Flags().Changed("cycles") {
				if totalCycles < 1 {
					return fmt.Errorf("cycles must be at least 1, got %d", totalCycles)
				}
				settings.TotalCycles = totalCycles
			}
			if cmd.Flags().Changed("daily-goal") {
				if dailyGoal < 1 {
					return fmt.Errorf("daily goal must be at least 1, got %d", dailyGoal)
				}
				settings.DailyGoal = dailyGoal
			}
			if cmd.Flags().Changed("overdue-alerts") {
				settings.OverdueAlerts = overdueAlerts
			}
			application.store.SaveSettings(ctx, settings)
			fmt.Println("Saved.")
			return nil
		},
	}
	setCommand.Flags().IntVar(&totalCycles, "cycles", 0, "Revision cycles before a question is mastered")
	setCommand.Flags().IntVar(&dailyGoal, "daily-goal", 0, "Target activities per day")
	setCommand.Flags().BoolVar(&overdueAlerts, "overdue-alerts", true, "Alert when revisions are overdue")
	settingsCommand.AddCommand(setCommand)

	return settingsCommand
}
