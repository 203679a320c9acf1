package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// reportStore implements driven.ReportStore.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

const sampleColumns = `
	s.id, s.report_id, s.sample_number, s.pdf_field_name,
	s.received_date, s.report_date, s.linked_field_id,
	c.sample_id, c.cyst_count, c.lle_count, c.infestation_grade`

const sampleFrom = `
	FROM samples s
	JOIN reports r ON r.id = s.report_id
	LEFT JOIN cyst_results c ON c.sample_id = s.id`

// SaveReport stores or replaces a report with all of its samples.
func (s *reportStore) SaveReport(ctx context.Context, report *domain.Report) error {
	if report == nil || report.ID == "" {
		return domain.ErrInvalidInput
	}

	err := s.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO reports (id, original_filename, pdf_text, extracted_json, lab_name, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				original_filename = excluded.original_filename,
				pdf_text = excluded.pdf_text,
				extracted_json = excluded.extracted_json,
				lab_name = excluded.lab_name,
				created_at = excluded.created_at
		`, report.ID, report.OriginalFilename, report.PDFText, report.ExtractedJSON,
			report.LabName, report.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("saving report: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM samples WHERE report_id = ?`, report.ID); err != nil {
			return fmt.Errorf("clearing samples: %w", err)
		}

		for i := range report.Samples {
			if err := insertSample(ctx, tx, report.ID, i, &report.Samples[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

func insertSample(ctx context.Context, tx *sql.Tx, reportID string, position int, sample *domain.StoredSample) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO samples (id, report_id, position, sample_number, pdf_field_name,
			received_date, report_date, linked_field_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, sample.ID, reportID, position, sample.SampleNumber, sample.PDFFieldName,
		nullDate(sample.ReceivedDate), nullDate(sample.ReportDate), nullString(sample.LinkedFieldID))
	if err != nil {
		return fmt.Errorf("saving sample %s: %w", sample.ID, err)
	}

	for i, m := range sample.Measurements {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO measurements (sample_id, position, analyte_key, value, unit, category)
			VALUES (?, ?, ?, ?, ?, ?)
		`, sample.ID, i, m.AnalyteKey, m.Value, m.Unit, m.Category)
		if err != nil {
			return fmt.Errorf("saving measurement %q: %w", m.AnalyteKey, err)
		}
	}

	if c := sample.CystResult; c != nil {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cyst_results (sample_id, cyst_count, lle_count, infestation_grade)
			VALUES (?, ?, ?, ?)
		`, sample.ID, nullInt(c.CystCount), nullInt(c.LLECount), c.InfestationGrade)
		if err != nil {
			return fmt.Errorf("saving cyst result: %w", err)
		}
	}
	return nil
}

// GetReport retrieves a report by ID.
func (s *reportStore) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, original_filename, pdf_text, extracted_json, lab_name, created_at
		FROM reports WHERE id = ?
	`, id)

	var report domain.Report
	if err := row.Scan(&report.ID, &report.OriginalFilename, &report.PDFText,
		&report.ExtractedJSON, &report.LabName, &report.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	samples, err := s.querySamples(ctx, "s.report_id = ?", id)
	if err != nil {
		return nil, err
	}
	report.Samples = samples
	return &report, nil
}

// ListReports returns all reports, newest first.
func (s *reportStore) ListReports(ctx context.Context) ([]domain.Report, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, original_filename, pdf_text, extracted_json, lab_name, created_at
		FROM reports ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	reports := make([]domain.Report, 0)
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(&report.ID, &report.OriginalFilename, &report.PDFText,
			&report.ExtractedJSON, &report.LabName, &report.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	rows.Close()

	for i := range reports {
		samples, err := s.querySamples(ctx, "s.report_id = ?", reports[i].ID)
		if err != nil {
			return nil, err
		}
		reports[i].Samples = samples
	}
	return reports, nil
}

// DeleteReport removes a report; samples, measurements and cyst
// results cascade.
func (s *reportStore) DeleteReport(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return affectedOne(result)
}

// GetSample retrieves a sample by ID.
func (s *reportStore) GetSample(ctx context.Context, id string) (*domain.StoredSample, error) {
	samples, err := s.querySamples(ctx, "s.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, domain.ErrNotFound
	}
	return &samples[0], nil
}

// ListSamplesByField returns the samples linked to fieldID in report
// creation order.
func (s *reportStore) ListSamplesByField(ctx context.Context, fieldID string) ([]domain.StoredSample, error) {
	return s.querySamples(ctx, "s.linked_field_id = ?", fieldID)
}

// DeleteSample removes a single sample.
func (s *reportStore) DeleteSample(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, `DELETE FROM samples WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting sample: %w", err)
	}
	return affectedOne(result)
}

// querySamples loads the samples matching where, with measurements and
// cyst results, ordered by report creation and position.
func (s *reportStore) querySamples(ctx context.Context, where string, args ...any) ([]domain.StoredSample, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT"+sampleColumns+sampleFrom+" WHERE "+where+
			" ORDER BY r.created_at, r.id, s.position", args...)
	if err != nil {
		return nil, fmt.Errorf("querying samples: %w", err)
	}

	var samples []domain.StoredSample
	for rows.Next() {
		sample, err := scanSample(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		samples = append(samples, *sample)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating samples: %w", err)
	}
	rows.Close()

	for i := range samples {
		measurements, err := s.queryMeasurements(ctx, samples[i].ID)
		if err != nil {
			return nil, err
		}
		samples[i].Measurements = measurements
	}
	return samples, nil
}

func scanSample(rows *sql.Rows) (*domain.StoredSample, error) {
	var sample domain.StoredSample
	var received, reported, linked, cystSample sql.NullString
	var cystCount, lleCount sql.NullInt64
	var grade sql.NullString

	if err := rows.Scan(&sample.ID, &sample.ReportID, &sample.SampleNumber, &sample.PDFFieldName,
		&received, &reported, &linked, &cystSample, &cystCount, &lleCount, &grade); err != nil {
		return nil, fmt.Errorf("scanning sample: %w", err)
	}

	var err error
	if sample.ReceivedDate, err = scanDate(received); err != nil {
		return nil, err
	}
	if sample.ReportDate, err = scanDate(reported); err != nil {
		return nil, err
	}
	sample.LinkedFieldID = linked.String

	if cystSample.Valid {
		sample.CystResult = &domain.CystResult{
			CystCount:        scanInt(cystCount),
			LLECount:         scanInt(lleCount),
			InfestationGrade: grade.String,
		}
	}
	return &sample, nil
}

func (s *reportStore) queryMeasurements(ctx context.Context, sampleID string) ([]domain.Measurement, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT analyte_key, value, unit, category
		FROM measurements WHERE sample_id = ? ORDER BY position
	`, sampleID)
	if err != nil {
		return nil, fmt.Errorf("querying measurements: %w", err)
	}
	defer rows.Close()

	var measurements []domain.Measurement
	for rows.Next() {
		var m domain.Measurement
		if err := rows.Scan(&m.AnalyteKey, &m.Value, &m.Unit, &m.Category); err != nil {
			return nil, fmt.Errorf("scanning measurement: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating measurements: %w", err)
	}
	return measurements, nil
}
