// Package xlsx exports field trends as Excel workbooks.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.TrendExporter = (*Exporter)(nil)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// fixedHeaders precede one column per analyte.
var fixedHeaders = []string{"Datum", "Monsternummer", "Perceel (rapport)"}

// Exporter writes one row per trend point and one column per analyte.
type Exporter struct {
	sheet string
}

// New creates an exporter writing to the named worksheet.
func New(sheet string) *Exporter {
	if sheet == "" {
		sheet = domain.DefaultSheetName
	}
	return &Exporter{sheet: sheet}
}

// Extension returns the file extension of exported workbooks.
func (e *Exporter) Extension() string {
	return ".xlsx"
}

// Export renders trend as an XLSX workbook. Analytes missing from a
// sample are left blank.
func (e *Exporter) Export(trend *domain.FieldTrend) ([]byte, error) {
	if trend == nil {
		return nil, domain.ErrInvalidInput
	}

	f := excelize.NewFile()
	defer f.Close()

	if index, _ := f.GetSheetIndex(e.sheet); index == -1 {
		if _, err := f.NewSheet(e.sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", e.sheet, err)
		}
	}
	activeIndex, _ := f.GetSheetIndex(e.sheet)
	f.SetActiveSheet(activeIndex)
	if e.sheet != defaultSheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("remove default sheet: %w", err)
		}
	}

	headers := append(append([]string(nil), fixedHeaders...), trend.Analytes...)
	for i, h := range headers {
		if err := e.write(f, i+1, 1, h); err != nil {
			return nil, err
		}
	}

	for p, point := range trend.Points {
		row := p + 2
		fixed := []any{point.Date, point.SampleNumber, point.PDFFieldName}
		for i, v := range fixed {
			if err := e.write(f, i+1, row, v); err != nil {
				return nil, err
			}
		}
		for a, analyte := range trend.Analytes {
			v, ok := point.Values[analyte]
			if !ok {
				continue
			}
			if err := e.write(f, len(fixedHeaders)+a+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(e.sheet, "A", "A", 12) // date
	_ = f.SetColWidth(e.sheet, "B", "C", 18)
	if n := len(trend.Analytes); n > 0 {
		first, _ := excelize.ColumnNumberToName(len(fixedHeaders) + 1)
		last, _ := excelize.ColumnNumberToName(len(fixedHeaders) + n)
		_ = f.SetColWidth(e.sheet, first, last, 24)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) write(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell %d,%d: %w", col, row, err)
	}
	if err := f.SetCellValue(e.sheet, cell, v); err != nil {
		return fmt.Errorf("write %s: %w", cell, err)
	}
	return nil
}
