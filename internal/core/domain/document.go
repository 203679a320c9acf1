package domain

// WarnNoText is added to a parse result when the file yielded no text.
const WarnNoText = "no text could be extracted"

// MeasurementUnit is the only unit the supported lab format reports.
const MeasurementUnit = "aantal per 100 gram grond"

// Measurement is a single analyte count reported for a sample.
type Measurement struct {
	// AnalyteKey is the cleaned nematode taxon name (genus + species).
	AnalyteKey string `json:"analyteKey"`

	// Value is the reported count.
	Value float64 `json:"value"`

	// Unit is always MeasurementUnit for parsed documents.
	Unit string `json:"unit"`

	// Category is the taxonomic header the row appeared under, if any.
	Category string `json:"category,omitempty"`
}

// CystResult holds the counts of the optional cyst nematode section.
type CystResult struct {
	CystCount        *int   `json:"cystCount,omitempty"`
	LLECount         *int   `json:"lleCount,omitempty"`
	InfestationGrade string `json:"infestationGrade,omitempty"`
}

// Sample is one physical soil sample and its lab measurements.
// All scalar fields are raw strings as found in the source text;
// an empty string means the value could not be located.
type Sample struct {
	// SampleNumber is the lab's sample identifier (Monsternummer).
	SampleNumber string `json:"sampleNumber,omitempty"`

	// PDFFieldName is the parcel name printed on the report (Perceel).
	PDFFieldName string `json:"pdfFieldName,omitempty"`

	// ReceivedDate is the raw Dutch date the sample was received.
	ReceivedDate string `json:"receivedDate,omitempty"`

	// ReportDate is the raw Dutch date of the report.
	ReportDate string `json:"reportDate,omitempty"`

	// Measurements are the analyte rows in document order.
	Measurements []Measurement `json:"measurements"`

	// CystResult is set only when the cyst section was located.
	CystResult *CystResult `json:"cystResult,omitempty"`
}

// ParsedDocument is the best-effort structured form of one lab report.
// It always carries exactly one Sample when produced by a parser.
type ParsedDocument struct {
	// LabName identifies the issuing lab when a marker was found.
	LabName string `json:"labName,omitempty"`

	// Samples holds the document's samples.
	Samples []Sample `json:"samples"`

	// Warnings are advisory notes about data that could not be resolved.
	Warnings []string `json:"warnings"`
}

// FirstSample returns the document's sample, or nil when there is none.
func (d *ParsedDocument) FirstSample() *Sample {
	if d == nil || len(d.Samples) == 0 {
		return nil
	}
	return &d.Samples[0]
}

// HasWarning reports whether the given warning was recorded.
func (d *ParsedDocument) HasWarning(warning string) bool {
	for _, w := range d.Warnings {
		if w == warning {
			return true
		}
	}
	return false
}
