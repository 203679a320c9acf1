package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// fieldStore implements driven.FieldStore.
type fieldStore struct {
	store *Store
}

var _ driven.FieldStore = (*fieldStore)(nil)

// SaveField stores or updates a field and replaces its aliases.
func (s *fieldStore) SaveField(ctx context.Context, field *domain.Field) error {
	if field == nil || field.ID == "" {
		return domain.ErrInvalidInput
	}

	return s.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO fields (id, name, notes, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				notes = excluded.notes
		`, field.ID, field.Name, field.Notes, field.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("saving field: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM field_aliases WHERE field_id = ?`, field.ID); err != nil {
			return fmt.Errorf("clearing aliases: %w", err)
		}
		for _, alias := range field.Aliases {
			if err := insertAlias(ctx, tx, field.ID, alias); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertAlias(ctx context.Context, tx *sql.Tx, fieldID, alias string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO field_aliases (field_id, alias) VALUES (?, ?)`, fieldID, alias)
	if err != nil {
		return fmt.Errorf("saving alias %q: %w", alias, err)
	}
	return nil
}

// GetField retrieves a field by ID.
func (s *fieldStore) GetField(ctx context.Context, id string) (*domain.Field, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, notes, created_at FROM fields WHERE id = ?
	`, id)

	var field domain.Field
	if err := row.Scan(&field.ID, &field.Name, &field.Notes, &field.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning field: %w", err)
	}

	aliases, err := s.aliases(ctx, "WHERE field_id = ?", id)
	if err != nil {
		return nil, err
	}
	field.Aliases = aliases[id]
	return &field, nil
}

// FindFieldByName returns the first field, ordered by name, whose name
// or alias matches name ignoring case.
func (s *fieldStore) FindFieldByName(ctx context.Context, name string) (*domain.Field, error) {
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
func (s *fieldStore) ListFields(ctx context.Context) ([]domain.Field, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, notes, created_at FROM fields ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	fields := make([]domain.Field, 0)
	for rows.Next() {
		var field domain.Field
		if err := rows.Scan(&field.ID, &field.Name, &field.Notes, &field.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning field: %w", err)
		}
		fields = append(fields, field)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating fields: %w", err)
	}
	rows.Close()

	aliases, err := s.aliases(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i].Aliases = aliases[fields[i].ID]
	}
	return fields, nil
}

// AddAlias attaches an alias to a field. Adding an alias that already
// exists is a no-op.
func (s *fieldStore) AddAlias(ctx context.Context, fieldID, alias string) error {
	if _, err := s.GetField(ctx, fieldID); err != nil {
		return err
	}
	return s.store.withTx(ctx, func(tx *sql.Tx) error {
		return insertAlias(ctx, tx, fieldID, alias)
	})
}

// aliases returns aliases grouped by field in insertion order.
func (s *fieldStore) aliases(ctx context.Context, where string, args ...any) (map[string][]string, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT field_id, alias FROM field_aliases "+where+" ORDER BY rowid", args...)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var fieldID, alias string
		if err := rows.Scan(&fieldID, &alias); err != nil {
			return nil, fmt.Errorf("scanning alias: %w", err)
		}
		result[fieldID] = append(result[fieldID], alias)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aliases: %w", err)
	}
	return result, nil
}
