package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui"
	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Extract a lab report and save it",
	Long: `Extract an HLB report and store it. The sample is linked to the field
given by --field-id, to a new field named by --new-field, or else to the
field whose name or alias matches the field name printed on the report.

With --review the extraction is shown in an interactive screen first:
  e        - Edit the field name
  Enter    - Accept and save
  Esc/q    - Reject
  ↑/↓      - Scroll`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// Flags for the import command.
var (
	importFieldID  string
	importNewField string
	importReview   bool
)

// isTerminal reports whether stdin is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// reviewParse shows the review screen for result.
var reviewParse = func(ctx context.Context, result *driving.ParseResult) (*tui.Review, error) {
	return tui.RunReview(ctx, result)
}

func init() {
	importCmd.Flags().StringVar(&importFieldID, "field-id", "", "Link the sample to this field")
	importCmd.Flags().StringVar(&importNewField, "new-field", "", "Create a field with this name and link the sample to it")
	importCmd.Flags().BoolVar(&importReview, "review", false, "Review the extraction before saving")
	importCmd.MarkFlagsMutuallyExclusive("field-id", "new-field")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	if importReview && !isTerminal() {
		return errors.New("--review requires an interactive terminal")
	}

	raw, err := readReportFile(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := reportService.Parse(ctx, raw)
	if err != nil {
		return fmt.Errorf("failed to parse report: %w", err)
	}

	doc := result.Document
	if importReview {
		review, err := reviewParse(ctx, result)
		if err != nil {
			return err
		}
		if review.Decision() != messages.DecisionAccepted {
			cmd.Println("Import cancelled")
			return nil
		}
		doc = review.Document()
	} else if doc.HasWarning(domain.WarnNoText) {
		return fmt.Errorf("%s: %w", result.OriginalFilename, domain.ErrNoText)
	}

	saved, err := reportService.Save(ctx, driving.SaveRequest{
		OriginalFilename: result.OriginalFilename,
		Text:             result.Text,
		Document:         doc,
		LinkedFieldID:    importFieldID,
		NewFieldName:     importNewField,
	})
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	cmd.Printf("Saved report: %s\n", saved.ReportID)
	cmd.Printf("  Sample: %s\n", saved.SampleID)
	switch {
	case saved.FieldCreated:
		cmd.Printf("  Field:  %s (created)\n", saved.FieldID)
	case saved.FieldID != "":
		cmd.Printf("  Field:  %s\n", saved.FieldID)
	default:
		cmd.Println("  Field:  not linked")
	}
	printWarnings(cmd, doc.Warnings)
	return nil
}
