package driven

import (
	"context"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// ReportStore persists reports with their samples, measurements and
// cyst results.
type ReportStore interface {
	// SaveReport stores a report and all of its samples atomically.
	SaveReport(ctx context.Context, report *domain.Report) error

	// GetReport retrieves a report with its samples by ID.
	GetReport(ctx context.Context, id string) (*domain.Report, error)

	// ListReports returns all reports with their samples, newest first.
	ListReports(ctx context.Context) ([]domain.Report, error)

	// DeleteReport removes a report and everything stored under it.
	DeleteReport(ctx context.Context, id string) error

	// GetSample retrieves a single stored sample by ID.
	GetSample(ctx context.Context, id string) (*domain.StoredSample, error)

	// ListSamplesByField returns the samples linked to a field.
	ListSamplesByField(ctx context.Context, fieldID string) ([]domain.StoredSample, error)

	// DeleteSample removes a single sample.
	DeleteSample(ctx context.Context, id string) error
}
