package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amitrd/revtrack/internal/report"
)

func newReportCommand() *cobra.Command {
	var toPDF bool
	command := &cobra.Command{
		Use:   "report",
		Short: "Generate a progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			builder := report.NewBuilder(application.store, application.engine)
			markdownPath, err := builder.WriteMarkdown(context.Background(), application.reportPath())
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", markdownPath)

			if toPDF {
				pdfPath, err := report.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&toPDF, "pdf", false, "Also render the report as PDF")
	return command
}
