package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

// Ensure SeedService implements the interface.
var _ driving.SeedService = (*SeedService)(nil)

// DemoFieldName is the name of the seeded demo field.
const DemoFieldName = "Barlage 4"

// demoReport is one seeded report and its single sample.
type demoReport struct {
	filename     string
	sampleNumber string
	pdfFieldName string
	received     domain.CalendarDate
	reported     domain.CalendarDate
	counts       [3]float64
	cyst         *domain.CystResult
}

var demoAnalytes = [3]string{"Pratylenchus penetrans", "Meloidogyne hapla", "Tylenchorhynchus spp."}

func demoReports() []demoReport {
	cysts, lle := 62, 2525
	return []demoReport{
		{
			filename:     "2004537 - klantnaam - Barlage 4.pdf",
			sampleNumber: "2004537",
			pdfFieldName: "Barlage 4",
			received:     domain.CalendarDate{Year: 2020, Month: time.February, Day: 18},
			reported:     domain.CalendarDate{Year: 2020, Month: time.March, Day: 27},
			counts:       [3]float64{245, 31, 220},
			cyst:         &domain.CystResult{CystCount: &cysts, LLECount: &lle, InfestationGrade: "zwaar besmet"},
		},
		{
			filename:     "2309991001 - klantnaam - H1.pdf",
			sampleNumber: "2309991001",
			pdfFieldName: "H1",
			received:     domain.CalendarDate{Year: 2023, Month: time.February, Day: 17},
			reported:     domain.CalendarDate{Year: 2023, Month: time.March, Day: 22},
			counts:       [3]float64{190, 14, 260},
		},
	}
}

// SeedService loads a demo field with two reports.
type SeedService struct {
	fields  driven.FieldStore
	reports driven.ReportStore
	now     func() time.Time
}

// NewSeedService creates a new seed service.
func NewSeedService(fields driven.FieldStore, reports driven.ReportStore) *SeedService {
	return &SeedService{
		fields:  fields,
		reports: reports,
		now:     time.Now,
	}
}

// Seed creates the demo field and its reports.
func (s *SeedService) Seed(ctx context.Context) (*driving.SeedResult, error) {
	if s.fields == nil || s.reports == nil {
		return nil, domain.ErrNotImplemented
	}

	_, err := s.fields.FindFieldByName(ctx, DemoFieldName)
	switch {
	case err == nil:
		return nil, fmt.Errorf("demo field %q: %w", DemoFieldName, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find demo field: %w", err)
	}

	now := s.now()
	field := &domain.Field{
		ID:        uuid.New().String(),
		Name:      DemoFieldName,
		Notes:     "Demo perceel",
		Aliases:   []string{"H1", DemoFieldName},
		CreatedAt: now,
	}
	if err := s.fields.SaveField(ctx, field); err != nil {
		return nil, fmt.Errorf("save demo field: %w", err)
	}

	result := &driving.SeedResult{FieldID: field.ID}
	for i, demo := range demoReports() {
		report, err := demo.build(field.ID, now.Add(time.Duration(i)*time.Second))
		if err != nil {
			return nil, err
		}
		if err := s.reports.SaveReport(ctx, report); err != nil {
			return nil, fmt.Errorf("save demo report %s: %w", demo.sampleNumber, err)
		}
		result.ReportIDs = append(result.ReportIDs, report.ID)
	}
	return result, nil
}

func (d demoReport) build(fieldID string, createdAt time.Time) (*domain.Report, error) {
	measurements := make([]domain.Measurement, len(demoAnalytes))
	for i, analyte := range demoAnalytes {
		measurements[i] = domain.Measurement{
			AnalyteKey: analyte,
			Value:      d.counts[i],
			Unit:       domain.MeasurementUnit,
		}
	}

	doc := domain.ParsedDocument{
		LabName: "HLB",
		Samples: []domain.Sample{{
			SampleNumber: d.sampleNumber,
			PDFFieldName: d.pdfFieldName,
			Measurements: measurements,
			CystResult:   d.cyst,
		}},
		Warnings: []string{},
	}
	extracted, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode demo extraction: %w", err)
	}

	reportID := uuid.New().String()
	received, reported := d.received, d.reported
	return &domain.Report{
		ID:               reportID,
		OriginalFilename: d.filename,
		ExtractedJSON:    string(extracted),
		LabName:          "HLB",
		CreatedAt:        createdAt,
		Samples: []domain.StoredSample{{
			ID:            uuid.New().String(),
			ReportID:      reportID,
			SampleNumber:  d.sampleNumber,
			PDFFieldName:  d.pdfFieldName,
			ReceivedDate:  &received,
			ReportDate:    &reported,
			LinkedFieldID: fieldID,
			Measurements:  measurements,
			CystResult:    d.cyst,
		}},
	}, nil
}
