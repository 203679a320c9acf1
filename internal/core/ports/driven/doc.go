// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ReportParser: Turns report text into a ParsedDocument
//   - ExtractorRegistry: Selects the text extractor for a file type
//   - TextExtractor: Converts file bytes into text
//   - ReportStore: Report and sample persistence
//   - FieldStore: Field and alias persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ExtractionValidator: Schema check before saving. Without it, extractions are saved as-is.
//   - TrendExporter: Spreadsheet export. Without it, trend export is unavailable.
//   - Inbox: Watched directory of incoming reports.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, extractor, or parser package
package driven
