package driven

import "github.com/custodia-labs/aaltjes/internal/core/domain"

// ExtractionValidator checks a (possibly operator-edited) extraction
// before it is persisted.
type ExtractionValidator interface {
	// Validate returns an error wrapping domain.ErrInvalidExtraction when
	// doc does not match the extraction schema.
	Validate(doc *domain.ParsedDocument) error
}
