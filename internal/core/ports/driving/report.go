package driving

import (
	"context"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// ReportService parses lab reports and manages saved extractions.
type ReportService interface {
	// Parse extracts the text of raw and parses it. Text extraction
	// failures are not fatal: the result then carries an empty-text parse
	// and a warning.
	Parse(ctx context.Context, raw *domain.RawDocument) (*ParseResult, error)

	// ParseText parses already extracted text.
	ParseText(text string) domain.ParsedDocument

	// Save persists a reviewed extraction.
	Save(ctx context.Context, req SaveRequest) (*SaveResult, error)

	// Get retrieves a saved report by ID.
	Get(ctx context.Context, id string) (*domain.Report, error)

	// List returns all saved reports, newest first.
	List(ctx context.Context) ([]domain.Report, error)

	// Delete removes a report and its samples.
	Delete(ctx context.Context, id string) error
}

// ParseResult is the output of parsing an uploaded report file.
type ParseResult struct {
	// OriginalFilename is the base name of the uploaded file.
	OriginalFilename string

	// Text is the extracted text, empty when extraction failed.
	Text string

	// Document is the parsed extraction.
	Document domain.ParsedDocument
}

// SaveRequest carries a reviewed extraction to persist.
type SaveRequest struct {
	OriginalFilename string
	Text             string
	Document         domain.ParsedDocument

	// LinkedFieldID links the sample to an existing field.
	LinkedFieldID string

	// NewFieldName creates a field and links the sample to it.
	// Ignored when LinkedFieldID is set.
	NewFieldName string
}

// SaveResult identifies what Save created.
type SaveResult struct {
	ReportID string
	SampleID string

	// FieldID is the linked field, empty when the sample is unlinked.
	FieldID string

	// FieldCreated is true when NewFieldName created a field.
	FieldCreated bool
}
