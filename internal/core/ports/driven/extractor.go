package driven

import (
	"context"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// TextExtractor converts report file bytes into plain text.
// Each extractor handles specific MIME types (e.g., PDF, plain text).
type TextExtractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	Priority() int

	// Extract returns the text content of raw.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)
}

// ExtractorRegistry selects the appropriate extractor for a document.
type ExtractorRegistry interface {
	// Extract converts raw using the highest priority matching extractor.
	// Returns domain.ErrUnsupportedType when no extractor matches.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)

	// Register adds an extractor to the registry.
	Register(extractor TextExtractor)

	// SupportedMIMETypes returns all MIME types that can be extracted.
	SupportedMIMETypes() []string
}
