// Package hlb parses the text of HLB nematode soil analysis reports.
//
// The text usually comes from a PDF text layer or OCR and is treated as
// unreliable: labels and values may be split across lines, columns may
// be interleaved and fields may be missing. The parser applies ordered
// fallback strategies per value and reports what it could not resolve
// as warnings instead of failing.
package hlb

import (
	"strings"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.ReportParser = (*Parser)(nil)

// Parser parses HLB reports. The zero value is ready to use and safe
// for concurrent use.
type Parser struct{}

// New creates a new HLB parser.
func New() *Parser {
	return &Parser{}
}

// Name returns the lab format this parser handles.
func (p *Parser) Name() string {
	return LabName
}

// Parse extracts one sample from text.
func (p *Parser) Parse(text string) domain.ParsedDocument {
	return Parse(text)
}

// ParseDate parses a Dutch report date.
func (p *Parser) ParseDate(raw string) (domain.CalendarDate, bool) {
	return ParseDutchDate(raw)
}

// Parse extracts one sample from the text of an HLB report. It never
// fails; unresolved values are left empty and listed in Warnings.
func Parse(text string) domain.ParsedDocument {
	lines := normalizeLines(text)
	content := strings.Join(lines, "\n")

	sample := domain.Sample{
		SampleNumber: extractSampleNumber(lines, content),
		PDFFieldName: extractFieldName(lines, content),
		ReceivedDate: extractField(lines, receivedDateLabel, dateToken),
		ReportDate:   extractField(lines, reportDateLabel, dateToken),
	}

	// Positional fallback: assumes the received date precedes the
	// report date in the document.
	dates := extractOrderedDates(content)
	if sample.ReceivedDate == "" && len(dates) > 0 {
		sample.ReceivedDate = dates[0]
	}
	if sample.ReportDate == "" && len(dates) > 1 {
		sample.ReportDate = dates[1]
	}

	sample.Measurements = extractMeasurements(lines)
	sample.CystResult = extractCyst(lines)

	warnings := make([]string, 0, 3)
	if sample.SampleNumber == "" {
		warnings = append(warnings, WarnSampleNumberNotFound)
	}
	if sample.PDFFieldName == "" {
		warnings = append(warnings, WarnFieldNameNotFound)
	}
	if len(sample.Measurements) == 0 {
		warnings = append(warnings, WarnNoMeasurements)
	}

	doc := domain.ParsedDocument{
		Samples:  []domain.Sample{sample},
		Warnings: warnings,
	}
	if labMarkerPattern.MatchString(content) {
		doc.LabName = LabName
	}
	return doc
}
