package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newSnapshotCommand() *cobra.Command {
	snapshotCommand := &cobra.Command{
		Use:   "snapshot",
		Short: "Export, import or reset the full profile",
	}

	snapshotCommand.AddCommand(newSnapshotExportCommand())
	snapshotCommand.AddCommand(newSnapshotImportCommand())
	snapshotCommand.AddCommand(newSnapshotResetCommand())

	return snapshotCommand
}

func newSnapshotExportCommand() *cobra.Command {
	var output string
	command := &cobra.Command{
		Use:   "export",
		Short: "Write a full JSON snapshot of the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			data, err := application.store.ExportSnapshot(context.Background())
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(data)
				return nil
			}
			if err := os.WriteFile(output, []byte(data), 0o644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", output, err)
			}
			fmt.Printf("Exported to %s.\n", output)
			return nil
		},
	}
	command.Flags().StringVar(&output, "output", "", "Output file, defaults to stdout")
	return command
}

func newSnapshotImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace local state from a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}
			if !application.store.ImportSnapshot(context.Background(), string(data)) {
				return fmt.Errorf("snapshot %s is not a valid export", args[0])
			}
			fmt.Println("Imported.")
			return nil
		},
	}
}

func newSnapshotResetCommand() *cobra.Command {
	var force bool
	command := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all local and remote data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Print("This wipes every question, stat and log, locally and remotely. Type 'reset' to confirm: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if strings.TrimSpace(line) != "reset" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			application.store.ResetAll(context.Background())
			fmt.Println("All data cleared.")
			return nil
		},
	}
	command.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return command
}
