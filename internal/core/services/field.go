package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

// Ensure FieldService implements the interface.
var _ driving.FieldService = (*FieldService)(nil)

// FieldService manages tracked fields and builds their trends.
type FieldService struct {
	fields   driven.FieldStore
	reports  driven.ReportStore
	exporter driven.TrendExporter
	now      func() time.Time
}

// NewFieldService creates a new field service.
// The exporter is optional.
func NewFieldService(fields driven.FieldStore, reports driven.ReportStore, exporter driven.TrendExporter) *FieldService {
	return &FieldService{
		fields:   fields,
		reports:  reports,
		exporter: exporter,
		now:      time.Now,
	}
}

// Create registers a new field. Names are unique ignoring case.
func (s *FieldService) Create(ctx context.Context, name, notes string) (*domain.Field, error) {
	if s.fields == nil {
		return nil, domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("field name is required: %w", domain.ErrInvalidInput)
	}

	existing, err := s.fields.ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	for _, f := range existing {
		if strings.EqualFold(f.Name, name) {
			return nil, fmt.Errorf("field %q: %w", name, domain.ErrAlreadyExists)
		}
	}

	field := &domain.Field{
		ID:        uuid.New().String(),
		Name:      name,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: s.now(),
	}
	if err := s.fields.SaveField(ctx, field); err != nil {
		return nil, fmt.Errorf("save field: %w", err)
	}
	return field, nil
}

// AddAlias attaches a report name to a field.
func (s *FieldService) AddAlias(ctx context.Context, fieldID, alias string) error {
	if s.fields == nil {
		return domain.ErrNotImplemented
	}
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return fmt.Errorf("alias is required: %w", domain.ErrInvalidInput)
	}
	return s.fields.AddAlias(ctx, fieldID, alias)
}

// List returns all fields ordered by name.
func (s *FieldService) List(ctx context.Context) ([]domain.Field, error) {
	if s.fields == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.fields.ListFields(ctx)
}

// Get retrieves a field by ID.
func (s *FieldService) Get(ctx context.Context, id string) (*domain.Field, error) {
	if s.fields == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.fields.GetField(ctx, id)
}

// DeleteSample removes one sample.
func (s *FieldService) DeleteSample(ctx context.Context, sampleID string) error {
	if s.reports == nil {
		return domain.ErrNotImplemented
	}
	return s.reports.DeleteSample(ctx, sampleID)
}

// Trend returns one point per linked sample ordered by report date,
// undated samples last. Analytes are listed in order of first appearance.
func (s *FieldService) Trend(ctx context.Context, fieldID string) (*domain.FieldTrend, error) {
	if s.fields == nil || s.reports == nil {
		return nil, domain.ErrNotImplemented
	}

	field, err := s.fields.GetField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	samples, err := s.reports.ListSamplesByField(ctx, fieldID)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}

	sort.SliceStable(samples, func(i, j int) bool {
		a, b := samples[i].ReportDate, samples[j].ReportDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	trend := &domain.FieldTrend{
		Field:    *field,
		Analytes: []string{},
		Points:   make([]domain.TrendPoint, 0, len(samples)),
	}
	seen := make(map[string]struct{})

	for _, sample := range samples {
		point := domain.TrendPoint{
			SampleID:     sample.ID,
			SampleNumber: sample.SampleNumber,
			ReportID:     sample.ReportID,
			PDFFieldName: sample.PDFFieldName,
			Date:         domain.UnknownDate,
			Values:       make(map[string]float64, len(sample.Measurements)),
		}
		if sample.ReportDate != nil {
			point.Date = sample.ReportDate.String()
		}
		for _, m := range sample.Measurements {
			point.Values[m.AnalyteKey] = m.Value
			if _, ok := seen[m.AnalyteKey]; !ok {
				seen[m.AnalyteKey] = struct{}{}
				trend.Analytes = append(trend.Analytes, m.AnalyteKey)
			}
		}
		trend.Points = append(trend.Points, point)
	}

	return trend, nil
}

// ExportTrend renders the trend of a field as a spreadsheet.
func (s *FieldService) ExportTrend(ctx context.Context, fieldID string) ([]byte, string, error) {
	if s.exporter == nil {
		return nil, "", domain.ErrNotImplemented
	}
	trend, err := s.Trend(ctx, fieldID)
	if err != nil {
		return nil, "", err
	}
	data, err := s.exporter.Export(trend)
	if err != nil {
		return nil, "", fmt.Errorf("export trend: %w", err)
	}
	return data, s.exporter.Extension(), nil
}
