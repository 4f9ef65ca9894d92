package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/syllabus"
)

func newSyllabusCommand() *cobra.Command {
	syllabusCommand := &cobra.Command{
		Use:   "syllabus",
		Short: "Track syllabus coverage per exam stream",
	}

	syllabusCommand.AddCommand(newSyllabusListCommand())
	syllabusCommand.AddCommand(newSyllabusAddCommand())
	syllabusCommand.AddCommand(newSyllabusDeleteCommand())
	syllabusCommand.AddCommand(newSyllabusTopicCommand())
	syllabusCommand.AddCommand(newSyllabusSeedCommand())

	return syllabusCommand
}

func newSyllabusListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List syllabi and their completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			syllabi := application.store.Syllabi(context.Background())
			if len(syllabi) == 0 {
				fmt.Println("No syllabi yet.")
				return nil
			}
			for _, s := range syllabi {
				completed := 0
				for _, topic := range s.Topics {
					if topic.Completed {
						completed++
					}
				}
				fmt.Printf("%s  %-30s %-15s %d/%d topics\n", s.ID, s.Name, s.Stream, completed, len(s.Topics))
				for i, topic := range s.Topics {
					marker := " "
					if topic.Completed {
						marker = "x"
					}
					fmt.Printf("  %2d. [%s] %s\n", i+1, marker, topic.Name)
				}
			}
			return nil
		},
	}
}

func newSyllabusAddCommand() *cobra.Command {
	var stream string
	command := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an empty syllabus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			added := application.store.AddSyllabus(context.Background(), model.Syllabus{
				Name:   args[0],
				Stream: stream,
			})
			fmt.Printf("Created syllabus %q (id: %s).\n", added.Name, added.ID)
			return nil
		},
	}
	command.Flags().StringVar(&stream, "stream", "", "Exam stream this syllabus belongs to")
	return command
}

func newSyllabusDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a syllabus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			application.store.DeleteSyllabus(context.Background(), args[0])
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func newSyllabusTopicCommand() *cobra.Command {
	topicCommand := &cobra.Command{
		Use:   "topic",
		Short: "Manage a syllabus topic list",
	}

	topicCommand.AddCommand(&cobra.Command{
		Use:   "add <syllabus-id> <name>",
		Short: "Append a topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			if application.store.AddTopic(context.Background(), args[0], args[1]) == nil {
				return fmt.Errorf("no syllabus with id %s", args[0])
			}
			fmt.Println("Added.")
			return nil
		},
	})

	topicCommand.AddCommand(&cobra.Command{
		Use:   "toggle <syllabus-id> <number>",
		Short: "Toggle a topic's completion by its list number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid topic number %q", args[1])
			}
			if application.store.ToggleTopic(context.Background(), args[0], index-1) == nil {
				return fmt.Errorf("no such syllabus or topic: %s %s", args[0], args[1])
			}
			fmt.Println("Toggled.")
			return nil
		},
	})

	topicCommand.AddCommand(&cobra.Command{
		Use:   "delete <syllabus-id> <number>",
		Short: "Delete a topic by its list number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid topic number %q", args[1])
			}
			if application.store.DeleteTopic(context.Background(), args[0], index-1) == nil {
				return fmt.Errorf("no such syllabus or topic: %s %s", args[0], args[1])
			}
			fmt.Println("Deleted.")
			return nil
		},
	})

	return topicCommand
}

func newSyllabusSeedCommand() *cobra.Command {
	var directory string
	command := &cobra.Command{
		Use:   "seed",
		Short: "Import syllabus seed files from the configured directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			if directory == "" {
				directory = application.cfg.Seeds.SyllabusDirectory
			}
			imported, err := syllabus.Seed(context.Background(), application.store, directory)
			if err != nil {
				return err
			}
			if len(imported) == 0 {
				fmt.Println("Nothing new to import.")
				return nil
			}
			for _, s := range imported {
				fmt.Printf("Imported %q (%d topics).\n", s.Name, len(s.Topics))
			}
			return nil
		},
	}
	command.Flags().StringVar(&directory, "dir", "", "Seed directory, defaults to the configured one")
	return command
}
