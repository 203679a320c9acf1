package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/extractors"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract a lab report without saving it",
	Long: `Extract the sample, nematode counts and cyst result from an HLB report
(PDF or text) and print them. Nothing is stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// parseJSON is a flag for the parse command.
var parseJSON bool

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the extraction as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	raw, err := readReportFile(args[0])
	if err != nil {
		return err
	}

	result, err := reportService.Parse(context.Background(), raw)
	if err != nil {
		return fmt.Errorf("failed to parse report: %w", err)
	}

	if parseJSON {
		data, err := json.MarshalIndent(result.Document, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode extraction: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Report: %s\n\n", result.OriginalFilename)
	printDocument(cmd, &result.Document)
	return nil
}

// readReportFile loads path as a raw document for extraction.
func readReportFile(path string) (*domain.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &domain.RawDocument{
		URI:      path,
		MIMEType: extractors.DetectMIMEType(path),
		Content:  content,
		Metadata: map[string]any{"filename": filepath.Base(path)},
	}, nil
}

// printDocument writes the human readable form of an extraction.
func printDocument(cmd *cobra.Command, doc *domain.ParsedDocument) {
	if doc.LabName != "" {
		cmd.Printf("  Lab:           %s\n", doc.LabName)
	}

	sample := doc.FirstSample()
	if sample == nil {
		cmd.Println("  No sample found")
		printWarnings(cmd, doc.Warnings)
		return
	}

	cmd.Printf("  Sample number: %s\n", orMissing(sample.SampleNumber))
	cmd.Printf("  Field:         %s\n", orMissing(sample.PDFFieldName))
	cmd.Printf("  Received:      %s\n", orMissing(sample.ReceivedDate))
	cmd.Printf("  Report date:   %s\n", orMissing(sample.ReportDate))

	cmd.Printf("\n  Measurements (%s):\n", domain.MeasurementUnit)
	if len(sample.Measurements) == 0 {
		cmd.Println("    none")
	}
	for _, m := range sample.Measurements {
		cmd.Printf("    %-34s %8s", m.AnalyteKey, formatCount(m.Value))
		if m.Category != "" {
			cmd.Printf("  (%s)", m.Category)
		}
		cmd.Println()
	}

	if c := sample.CystResult; c != nil {
		cmd.Println("\n  Potato cyst nematodes:")
		if c.CystCount != nil {
			cmd.Printf("    Cysts:       %d\n", *c.CystCount)
		}
		if c.LLECount != nil {
			cmd.Printf("    Larvae/eggs: %d\n", *c.LLECount)
		}
		if c.InfestationGrade != "" {
			cmd.Printf("    Grade:       %s\n", c.InfestationGrade)
		}
	}

	printWarnings(cmd, doc.Warnings)
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	cmd.Println("\n  Warnings:")
	for _, w := range warnings {
		cmd.Printf("    - %s\n", w)
	}
}

func orMissing(value string) string {
	if value == "" {
		return "(not found)"
	}
	return value
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
