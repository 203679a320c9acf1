package domain

import "time"

// Report is a persisted lab report extraction.
type Report struct {
	// ID is the unique identifier for the report.
	ID string

	// OriginalFilename is the name of the uploaded file.
	OriginalFilename string

	// PDFText is the text the upstream extractor produced, if any.
	PDFText string

	// ExtractedJSON is the reviewed ParsedDocument as indented JSON.
	ExtractedJSON string

	// LabName is the issuing lab, if known.
	LabName string

	// CreatedAt is when the report was saved.
	CreatedAt time.Time

	// Samples are the stored samples of the report.
	Samples []StoredSample
}

// StoredSample is a Sample after persistence, with parsed dates and an
// optional link to a tracked Field.
type StoredSample struct {
	// ID is the unique identifier for the sample.
	ID string

	// ReportID links to the owning Report.
	ReportID string

	SampleNumber string
	PDFFieldName string

	// ReceivedDate and ReportDate are nil when the raw value was
	// missing or not a valid Dutch date.
	ReceivedDate *CalendarDate
	ReportDate   *CalendarDate

	// LinkedFieldID is the tracked field, empty if unlinked.
	LinkedFieldID string

	Measurements []Measurement
	CystResult   *CystResult
}
