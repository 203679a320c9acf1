package driven

import "github.com/custodia-labs/aaltjes/internal/core/domain"

// ReportParser turns the text of one lab report into a ParsedDocument.
// Implementations are pure: no I/O, no shared mutable state. Parse never
// fails; unresolved data is reported through the document's warnings.
type ReportParser interface {
	// Name returns the lab format identifier (e.g., "HLB").
	Name() string

	// Parse extracts exactly one sample from text.
	Parse(text string) domain.ParsedDocument

	// ParseDate converts a raw date as found in a report into a calendar
	// date. Reports false when raw is not a valid date.
	ParseDate(raw string) (domain.CalendarDate, bool)
}
