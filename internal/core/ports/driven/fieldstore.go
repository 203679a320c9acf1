package driven

import (
	"context"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// FieldStore persists tracked fields and their aliases.
type FieldStore interface {
	// SaveField stores or updates a field, including its aliases.
	SaveField(ctx context.Context, field *domain.Field) error

	// GetField retrieves a field by ID.
	GetField(ctx context.Context, id string) (*domain.Field, error)

	// FindFieldByName returns the field whose name or alias equals name,
	// ignoring case. Returns domain.ErrNotFound when none matches.
	FindFieldByName(ctx context.Context, name string) (*domain.Field, error)

	// ListFields returns all fields ordered by name.
	ListFields(ctx context.Context) ([]domain.Field, error)

	// AddAlias attaches an alternative report name to a field.
	AddAlias(ctx context.Context, fieldID, alias string) error
}
