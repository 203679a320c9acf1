package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage saved reports",
	Long:  `List, view, or delete saved lab reports.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reports",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [report-id]",
	Short: "Show a saved report",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [report-id]",
	Short: "Delete a report and its samples",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

// Flags for the get command.
var (
	documentJSON bool
	documentText bool
)

func init() {
	documentGetCmd.Flags().BoolVar(&documentJSON, "json", false, "Print the stored extraction JSON")
	documentGetCmd.Flags().BoolVar(&documentText, "text", false, "Print the extracted report text")
	documentGetCmd.MarkFlagsMutuallyExclusive("json", "text")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	reports, err := reportService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(reports) == 0 {
		cmd.Println("No reports saved")
		return nil
	}

	cmd.Println("Reports:")
	cmd.Println()
	for i := range reports {
		numbers := make([]string, 0, len(reports[i].Samples))
		for _, s := range reports[i].Samples {
			numbers = append(numbers, s.SampleNumber)
		}
		cmd.Printf("  %s\n", reports[i].ID)
		cmd.Printf("    File:    %s\n", reports[i].OriginalFilename)
		cmd.Printf("    Saved:   %s\n", reports[i].CreatedAt.Format("2006-01-02 15:04:05"))
		if len(numbers) > 0 {
			cmd.Printf("    Samples: %s\n", strings.Join(numbers, ", "))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d reports\n", len(reports))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	report, err := reportService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get report: %w", err)
	}

	switch {
	case documentJSON:
		cmd.Println(report.ExtractedJSON)
		return nil
	case documentText:
		cmd.Print(report.PDFText)
		return nil
	}

	cmd.Printf("Report: %s\n\n", report.ID)
	cmd.Printf("  File:  %s\n", report.OriginalFilename)
	if report.LabName != "" {
		cmd.Printf("  Lab:   %s\n", report.LabName)
	}
	cmd.Printf("  Saved: %s\n", report.CreatedAt.Format("2006-01-02 15:04:05"))

	for _, s := range report.Samples {
		cmd.Printf("\n  Sample %s\n", s.ID)
		cmd.Printf("    Number:      %s\n", orMissing(s.SampleNumber))
		cmd.Printf("    Field name:  %s\n", orMissing(s.PDFFieldName))
		if s.ReportDate != nil {
			cmd.Printf("    Report date: %s\n", s.ReportDate)
		}
		if s.LinkedFieldID != "" {
			cmd.Printf("    Linked to:   %s\n", s.LinkedFieldID)
		}
		for _, m := range s.Measurements {
			cmd.Printf("    %-34s %8s\n", m.AnalyteKey, formatCount(m.Value))
		}
	}
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	if err := reportService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	cmd.Printf("Deleted report: %s\n", args[0])
	return nil
}
