package driving

import "context"

// SeedService loads demonstration data.
type SeedService interface {
	// Seed creates the demo field and its reports.
	// Returns domain.ErrAlreadyExists when the demo field is present.
	Seed(ctx context.Context) (*SeedResult, error)
}

// SeedResult identifies the created demo data.
type SeedResult struct {
	FieldID   string
	ReportIDs []string
}
