package domain

// UnknownDate labels trend points whose sample has no report date.
const UnknownDate = "onbekend"

// TrendPoint is the measurement snapshot of one sample.
type TrendPoint struct {
	SampleID     string
	SampleNumber string
	ReportID     string
	PDFFieldName string

	// Date is the report date as YYYY-MM-DD or UnknownDate.
	Date string

	// Values maps analyte key to its count in this sample.
	Values map[string]float64
}

// FieldTrend is the per-analyte time series of a field.
type FieldTrend struct {
	Field Field

	// Analytes are all analyte keys in first-appearance order.
	Analytes []string

	// Points are ordered by report date, undated samples last.
	Points []TrendPoint
}

// Value returns the count of analyte at point i and whether it exists.
func (t *FieldTrend) Value(i int, analyte string) (float64, bool) {
	if i < 0 || i >= len(t.Points) {
		return 0, false
	}
	v, ok := t.Points[i].Values[analyte]
	return v, ok
}
