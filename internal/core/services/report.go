package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
	"github.com/custodia-labs/aaltjes/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService parses report files and persists reviewed extractions.
type ReportService struct {
	parser     driven.ReportParser
	extractors driven.ExtractorRegistry
	reports    driven.ReportStore
	fields     driven.FieldStore
	validator  driven.ExtractionValidator
	now        func() time.Time
}

// NewReportService creates a new report service.
// The validator is optional.
func NewReportService(
	parser driven.ReportParser,
	extractors driven.ExtractorRegistry,
	reports driven.ReportStore,
	fields driven.FieldStore,
	validator driven.ExtractionValidator,
) *ReportService {
	return &ReportService{
		parser:     parser,
		extractors: extractors,
		reports:    reports,
		fields:     fields,
		validator:  validator,
		now:        time.Now,
	}
}

// Parse extracts the text of raw and parses it.
func (s *ReportService) Parse(ctx context.Context, raw *domain.RawDocument) (*driving.ParseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if s.parser == nil || s.extractors == nil {
		return nil, domain.ErrNotImplemented
	}

	filename := originalFilename(raw)
	logger.Section("Parse " + filename)

	text, err := s.extractors.Extract(ctx, raw)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedType) {
			return nil, fmt.Errorf("extract %s: %w", filename, err)
		}
		logger.Warn("extracting text from %s failed: %v", filename, err)
		text = ""
	}

	result := &driving.ParseResult{OriginalFilename: filename}
	if strings.TrimSpace(text) == "" {
		result.Document = s.parser.Parse("")
		result.Document.Warnings = append(result.Document.Warnings, domain.WarnNoText)
		return result, nil
	}

	result.Text = text
	result.Document = s.parser.Parse(text)
	logger.Debug("parsed %s: %d measurements, %d warnings",
		filename, len(result.Document.FirstSample().Measurements), len(result.Document.Warnings))
	return result, nil
}

// ParseText parses already extracted text.
func (s *ReportService) ParseText(text string) domain.ParsedDocument {
	return s.parser.Parse(text)
}

// Save persists the first sample of a reviewed extraction. The sample is
// linked to LinkedFieldID, to a new field named NewFieldName, or else to
// the field whose name or alias equals the sample's report field name.
//
//nolint:gocognit // Sequential save pipeline
func (s *ReportService) Save(ctx context.Context, req driving.SaveRequest) (*driving.SaveResult, error) {
	if s.reports == nil || s.fields == nil {
		return nil, domain.ErrNotImplemented
	}

	sample := req.Document.FirstSample()
	if sample == nil {
		return nil, domain.ErrNoSample
	}

	if s.validator != nil {
		if err := s.validator.Validate(&req.Document); err != nil {
			return nil, err
		}
	}

	result := &driving.SaveResult{}

	switch {
	case req.LinkedFieldID != "":
		field, err := s.fields.GetField(ctx, req.LinkedFieldID)
		if err != nil {
			return nil, fmt.Errorf("get field %s: %w", req.LinkedFieldID, err)
		}
		result.FieldID = field.ID

	case strings.TrimSpace(req.NewFieldName) != "":
		field := &domain.Field{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(req.NewFieldName),
			CreatedAt: s.now(),
		}
		if err := s.fields.SaveField(ctx, field); err != nil {
			return nil, fmt.Errorf("create field: %w", err)
		}
		result.FieldID = field.ID
		result.FieldCreated = true

	default:
		field, err := s.fields.FindFieldByName(ctx, sample.PDFFieldName)
		switch {
		case err == nil:
			result.FieldID = field.ID
			logger.Debug("linked sample to field %q via name %q", field.Name, sample.PDFFieldName)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("find field: %w", err)
		}
	}

	extracted, err := json.MarshalIndent(req.Document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode extraction: %w", err)
	}

	reportID := uuid.New().String()
	stored := domain.StoredSample{
		ID:            uuid.New().String(),
		ReportID:      reportID,
		SampleNumber:  sample.SampleNumber,
		PDFFieldName:  sample.PDFFieldName,
		ReceivedDate:  s.parseDate(sample.ReceivedDate),
		ReportDate:    s.parseDate(sample.ReportDate),
		LinkedFieldID: result.FieldID,
		Measurements:  sample.Measurements,
		CystResult:    sample.CystResult,
	}

	report := &domain.Report{
		ID:               reportID,
		OriginalFilename: req.OriginalFilename,
		PDFText:          req.Text,
		ExtractedJSON:    string(extracted),
		LabName:          req.Document.LabName,
		CreatedAt:        s.now(),
		Samples:          []domain.StoredSample{stored},
	}

	if err := s.reports.SaveReport(ctx, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	result.ReportID = report.ID
	result.SampleID = stored.ID
	logger.Info("saved report %s (%s)", report.ID, report.OriginalFilename)
	return result, nil
}

// Get retrieves a saved report by ID.
func (s *ReportService) Get(ctx context.Context, id string) (*domain.Report, error) {
	if s.reports == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.reports.GetReport(ctx, id)
}

// List returns all saved reports, newest first.
func (s *ReportService) List(ctx context.Context) ([]domain.Report, error) {
	if s.reports == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.reports.ListReports(ctx)
}

// Delete removes a report and its samples.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if s.reports == nil {
		return domain.ErrNotImplemented
	}
	return s.reports.DeleteReport(ctx, id)
}

func (s *ReportService) parseDate(raw string) *domain.CalendarDate {
	if raw == "" || s.parser == nil {
		return nil
	}
	date, ok := s.parser.ParseDate(raw)
	if !ok {
		return nil
	}
	return &date
}

// originalFilename prefers the upload name carried in metadata.
func originalFilename(raw *domain.RawDocument) string {
	if raw.Metadata != nil {
		if name, ok := raw.Metadata["filename"].(string); ok && name != "" {
			return name
		}
	}
	return filepath.Base(raw.URI)
}
