package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage tracked fields",
	Long: `Create fields, map report field names onto them, and follow their
nematode counts over time.`,
}

var fieldCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a field",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldCreate,
}

var fieldAliasCmd = &cobra.Command{
	Use:   "alias [field-id] [alias]",
	Short: "Add a report name under which the field appears",
	Args:  cobra.ExactArgs(2),
	RunE:  runFieldAlias,
}

var fieldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fields",
	Args:  cobra.NoArgs,
	RunE:  runFieldList,
}

var fieldShowCmd = &cobra.Command{
	Use:   "show [field-id]",
	Short: "Show field info",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldShow,
}

var fieldTrendCmd = &cobra.Command{
	Use:   "trend [field-id]",
	Short: "Print the nematode counts of a field over time",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldTrend,
}

var fieldExportCmd = &cobra.Command{
	Use:   "export [field-id]",
	Short: "Export the trend of a field as a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldExport,
}

var fieldDeleteSampleCmd = &cobra.Command{
	Use:   "delete-sample [sample-id]",
	Short: "Delete a sample from its field's trend",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldDeleteSample,
}

// Flags for the field commands.
var (
	fieldNotes     string
	fieldExportOut string
)

func init() {
	fieldCreateCmd.Flags().StringVar(&fieldNotes, "notes", "", "Free-form notes")
	fieldExportCmd.Flags().StringVarP(&fieldExportOut, "output", "o", "", "Output file (default <field name>-trend.xlsx)")

	fieldCmd.AddCommand(fieldCreateCmd)
	fieldCmd.AddCommand(fieldAliasCmd)
	fieldCmd.AddCommand(fieldListCmd)
	fieldCmd.AddCommand(fieldShowCmd)
	fieldCmd.AddCommand(fieldTrendCmd)
	fieldCmd.AddCommand(fieldExportCmd)
	fieldCmd.AddCommand(fieldDeleteSampleCmd)
	rootCmd.AddCommand(fieldCmd)
}

func runFieldCreate(cmd *cobra.Command, args []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}

	field, err := fieldService.Create(context.Background(), args[0], fieldNotes)
	if err != nil {
		return fmt.Errorf("failed to create field: %w", err)
	}

	cmd.Printf("Created field: %s\n", field.ID)
	cmd.Printf("  Name: %s\n", field.Name)
	return nil
}

func runFieldAlias(cmd *cobra.Command, args []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}

	if err := fieldService.AddAlias(context.Background(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to add alias: %w", err)
	}

	cmd.Printf("Added alias %q to field %s\n", strings.TrimSpace(args[1]), args[0])
	return nil
}

func runFieldList(cmd *cobra.Command, _ []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}

	fields, err := fieldService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list fields: %w", err)
	}

	if len(fields) == 0 {
		cmd.Println("No fields found")
		return nil
	}

	cmd.Println("Fields:")
	cmd.Println()
	for _, f := range fields {
		cmd.Printf("  %s\n", f.ID)
		cmd.Printf("    Name: %s\n", f.Name)
		if len(f.Aliases) > 0 {
			cmd.Printf("    Aliases: %s\n", strings.Join(f.Aliases, ", "))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d fields\n", len(fields))
	return nil
}

func runFieldShow(cmd *cobra.Command, args []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}

	field, err := fieldService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get field: %w", err)
	}

	cmd.Printf("Field: %s\n\n", field.ID)
	cmd.Printf("  Name:    %s\n", field.Name)
	if field.Notes != "" {
		cmd.Printf("  Notes:   %s\n", field.Notes)
	}
	cmd.Printf("  Created: %s\n", field.CreatedAt.Format("2006-01-02 15:04:05"))
	if len(field.Aliases) > 0 {
		cmd.Println("\n  Aliases:")
		for _, a := range field.Aliases {
			cmd.Printf("    %s\n", a)
		}
	}
	return nil
}

func runFieldTrend(cmd *cobra.Command, args []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}

	trend, err := fieldService.Trend(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get trend: %w", err)
	}

	cmd.Printf("Trend: %s\n\n", trend.Field.Name)
	if len(trend.Points) == 0 {
		cmd.Println("No samples linked to this field")
		return nil
	}

	cmd.Println(renderTrend(trend))
	cmd.Printf("\nCounts per %s\n", strings.TrimPrefix(domain.MeasurementUnit, "aantal per "))
	return nil
}

// renderTrend lays out one row per analyte and one column per sample.
func renderTrend(trend *domain.FieldTrend) string {
	headers := make([]string, 0, len(trend.Points)+1)
	headers = append(headers, "Analyte")
	for _, p := range trend.Points {
		headers = append(headers, p.Date)
	}

	rows := make([][]string, 0, len(trend.Analytes))
	for _, analyte := range trend.Analytes {
		row := make([]string, 0, len(headers))
		row = append(row, analyte)
		for i := range trend.Points {
			if v, ok := trend.Value(i, analyte); ok {
				row = append(row, formatCount(v))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = header
			}
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		}).
		String()
}

func runFieldExport(cmd *cobra.Command, args []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}

	ctx := context.Background()
	data, ext, err := fieldService.ExportTrend(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to export trend: %w", err)
	}

	out := fieldExportOut
	if out == "" {
		field, err := fieldService.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get field: %w", err)
		}
		out = exportFilename(field.Name, ext)
	}

	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	cmd.Printf("Exported trend to %s\n", out)
	return nil
}

// exportFilename derives a file name from a field name.
func exportFilename(fieldName, ext string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.TrimSpace(fieldName))
	name = strings.Trim(name, "-")
	if name == "" {
		name = "field"
	}
	return name + "-trend" + ext
}

func runFieldDeleteSample(cmd *cobra.Command, args []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}

	if err := fieldService.DeleteSample(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete sample: %w", err)
	}

	cmd.Printf("Deleted sample: %s\n", args[0])
	return nil
}
