package mcp

import (
	"context"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	parsed   domain.ParsedDocument
	lastText string
	reports  []domain.Report
	report   *domain.Report
	err      error
}

func (m *mockReportService) Parse(_ context.Context, _ *domain.RawDocument) (*driving.ParseResult, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockReportService) ParseText(text string) domain.ParsedDocument {
	m.lastText = text
	return m.parsed
}

func (m *mockReportService) Save(_ context.Context, _ driving.SaveRequest) (*driving.SaveResult, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockReportService) Get(_ context.Context, id string) (*domain.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.report == nil || m.report.ID != id {
		return nil, domain.ErrNotFound
	}
	return m.report, nil
}

func (m *mockReportService) List(_ context.Context) ([]domain.Report, error) {
	return m.reports, m.err
}

func (m *mockReportService) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockFieldService is a mock implementation of driving.FieldService.
type mockFieldService struct {
	fields  []domain.Field
	trend   *domain.FieldTrend
	trendID string
	err     error
}

func (m *mockFieldService) Create(_ context.Context, _, _ string) (*domain.Field, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockFieldService) AddAlias(_ context.Context, _, _ string) error {
	return domain.ErrNotImplemented
}

func (m *mockFieldService) List(_ context.Context) ([]domain.Field, error) {
	return m.fields, m.err
}

func (m *mockFieldService) Get(_ context.Context, _ string) (*domain.Field, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockFieldService) DeleteSample(_ context.Context, _ string) error {
	return domain.ErrNotImplemented
}

func (m *mockFieldService) Trend(_ context.Context, fieldID string) (*domain.FieldTrend, error) {
	m.trendID = fieldID
	if m.err != nil {
		return nil, m.err
	}
	return m.trend, nil
}

func (m *mockFieldService) ExportTrend(_ context.Context, _ string) ([]byte, string, error) {
	return nil, "", domain.ErrNotImplemented
}
