package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: make(map[string]domain.Report),
	}
}

// SaveReport stores or replaces a report and its samples.
func (s *ReportStore) SaveReport(_ context.Context, report *domain.Report) error {
	if report == nil || report.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := cloneReport(*report)
	for i := range r.Samples {
		r.Samples[i].ReportID = r.ID
	}
	s.reports[r.ID] = r
	return nil
}

// GetReport retrieves a report by ID.
func (s *ReportStore) GetReport(_ context.Context, id string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	r := cloneReport(report)
	return &r, nil
}

// ListReports returns all reports, newest first.
func (s *ReportStore) ListReports(_ context.Context) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Report, 0, len(s.reports))
	for _, report := range s.reports {
		result = append(result, cloneReport(report))
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// DeleteReport removes a report and its samples.
func (s *ReportStore) DeleteReport(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.reports, id)
	return nil
}

// GetSample retrieves a stored sample by ID.
func (s *ReportStore) GetSample(_ context.Context, id string) (*domain.StoredSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, report := range s.reports {
		for _, sample := range report.Samples {
			if sample.ID == id {
				c := cloneSample(sample)
				return &c, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

// ListSamplesByField returns the samples linked to fieldID in report
// creation order.
func (s *ReportStore) ListSamplesByField(ctx context.Context, fieldID string) ([]domain.StoredSample, error) {
	reports, err := s.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	var result []domain.StoredSample
	for i := len(reports) - 1; i >= 0; i-- {
		for _, sample := range reports[i].Samples {
			if sample.LinkedFieldID == fieldID {
				result = append(result, sample)
			}
		}
	}
	return result, nil
}

// DeleteSample removes a single sample from its report.
func (s *ReportStore) DeleteSample(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for reportID, report := range s.reports {
		idx := slices.IndexFunc(report.Samples, func(sample domain.StoredSample) bool {
			return sample.ID == id
		})
		if idx < 0 {
			continue
		}
		report.Samples = slices.Delete(slices.Clone(report.Samples), idx, idx+1)
		s.reports[reportID] = report
		return nil
	}
	return domain.ErrNotFound
}

func cloneReport(r domain.Report) domain.Report {
	samples := make([]domain.StoredSample, len(r.Samples))
	for i, sample := range r.Samples {
		samples[i] = cloneSample(sample)
	}
	r.Samples = samples
	return r
}

func cloneSample(s domain.StoredSample) domain.StoredSample {
	s.Measurements = slices.Clone(s.Measurements)
	if s.ReceivedDate != nil {
		d := *s.ReceivedDate
		s.ReceivedDate = &d
	}
	if s.ReportDate != nil {
		d := *s.ReportDate
		s.ReportDate = &d
	}
	if s.CystResult != nil {
		c := *s.CystResult
		s.CystResult = &c
	}
	return s
}
