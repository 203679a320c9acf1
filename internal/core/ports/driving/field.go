package driving

import (
	"context"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// FieldService manages tracked fields and their measurement trends.
type FieldService interface {
	// Create registers a new field. The name is required.
	Create(ctx context.Context, name, notes string) (*domain.Field, error)

	// AddAlias attaches a report name to a field.
	AddAlias(ctx context.Context, fieldID, alias string) error

	// List returns all fields ordered by name.
	List(ctx context.Context) ([]domain.Field, error)

	// Get retrieves a field by ID.
	Get(ctx context.Context, id string) (*domain.Field, error)

	// DeleteSample removes one sample, dropping it from its field's trend.
	DeleteSample(ctx context.Context, sampleID string) error

	// Trend returns the per-analyte time series of a field.
	Trend(ctx context.Context, fieldID string) (*domain.FieldTrend, error)

	// ExportTrend renders the trend as a spreadsheet.
	// Returns the document bytes and the file extension.
	ExportTrend(ctx context.Context, fieldID string) ([]byte, string, error)
}
