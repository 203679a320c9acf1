package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// Ensure FieldStore implements the interface.
var _ driven.FieldStore = (*FieldStore)(nil)

// FieldStore is an in-memory implementation of driven.FieldStore.
type FieldStore struct {
	mu     sync.RWMutex
	fields map[string]domain.Field
}

// NewFieldStore creates a new in-memory field store.
func NewFieldStore() *FieldStore {
	return &FieldStore{
		fields: make(map[string]domain.Field),
	}
}

// SaveField stores or updates a field.
func (s *FieldStore) SaveField(_ context.Context, field *domain.Field) error {
	if field == nil || field.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f := *field
	f.Aliases = slices.Clone(f.Aliases)
	s.fields[f.ID] = f
	return nil
}

// GetField retrieves a field by ID.
func (s *FieldStore) GetField(_ context.Context, id string) (*domain.Field, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	field, ok := s.fields[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	field.Aliases = slices.Clone(field.Aliases)
	return &field, nil
}

// FindFieldByName returns the field whose name or alias matches name.
// When several match, the one with the lowest name sorts first.
func (s *FieldStore) FindFieldByName(ctx context.Context, name string) (*domain.Field, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrNotFound
	}
	fields, err := s.ListFields(ctx)
	if err != nil {
		return nil, err
	}
	for i := range fields {
		if fields[i].Matches(name) {
			return &fields[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListFields returns all fields ordered by name.
func (s *FieldStore) ListFields(_ context.Context) ([]domain.Field, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Field, 0, len(s.fields))
	for _, field := range s.fields {
		field.Aliases = slices.Clone(field.Aliases)
		result = append(result, field)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// AddAlias attaches an alias to a field. Adding an alias the field
// already carries is a no-op.
func (s *FieldStore) AddAlias(_ context.Context, fieldID, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	field, ok := s.fields[fieldID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, a := range field.Aliases {
		if strings.EqualFold(a, alias) {
			return nil
		}
	}
	field.Aliases = append(slices.Clone(field.Aliases), alias)
	s.fields[fieldID] = field
	return nil
}
