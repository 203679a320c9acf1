package hlb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

func measurement(analyte string, value float64, category string) domain.Measurement {
	return domain.Measurement{
		AnalyteKey: analyte,
		Value:      value,
		Unit:       domain.MeasurementUnit,
		Category:   category,
	}
}

func TestExtractMeasurements_SplitLine(t *testing.T) {
	rows := extractMeasurements([]string{"Wortellesieaaltjes", "Pratylenchus penetrans", "245"})

	require.Len(t, rows, 1)
	assert.Equal(t, measurement("Pratylenchus penetrans", 245, "Wortellesieaaltjes"), rows[0])
}

func TestExtractMeasurements_TwoLineName(t *testing.T) {
	rows := extractMeasurements([]string{"Tylenchorhynchus", "spp.", "220"})

	require.Len(t, rows, 1)
	assert.Equal(t, measurement("Tylenchorhynchus spp.", 220, ""), rows[0])
}

func TestExtractMeasurements_SameLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		analyte  string
		expected float64
	}{
		{"plain", "Meloidogyne hapla 31", "Meloidogyne hapla", 31},
		{"one asterisk", "Meloidogyne hapla 31 *", "Meloidogyne hapla", 31},
		{"two asterisks attached", "Pratylenchus penetrans 245**", "Pratylenchus penetrans", 245},
		{"comma decimal", "Ditylenchus dipsaci 0,5", "Ditylenchus dipsaci", 0.5},
		{"dot decimal", "Ditylenchus dipsaci 2.25", "Ditylenchus dipsaci", 2.25},
		{"category prefix stripped", "Stengelaaltjes Ditylenchus dipsaci 4", "Ditylenchus dipsaci", 4},
		{"parentheses stripped", "Trichodoridae (Paratrichodorus) 40", "Trichodoridae Paratrichodorus", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := extractMeasurements([]string{tt.line})
			require.Len(t, rows, 1)
			assert.Equal(t, tt.analyte, rows[0].AnalyteKey)
			assert.Equal(t, tt.expected, rows[0].Value)
			assert.Equal(t, domain.MeasurementUnit, rows[0].Unit)
		})
	}
}

func TestExtractMeasurements_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"single word", []string{"Pratylenchus 245"}},
		{"metadata label", []string{"Soort monster grond 100"}},
		{"colon", []string{"Perceel: Barlage 4"}},
		{"date without year", []string{"27 maart", "2020"}},
		{"date with year", []string{"18 februari 2020"}},
		{"address", []string{"Oude Dijk Smeerling 12"}},
		{"noise line", []string{"IBAN NL12 RABO 0123 4567 89"}},
		{"value not numeric", []string{"Pratylenchus penetrans", "n.b."}},
		{"three asterisks", []string{"Pratylenchus penetrans 245 ***"}},
		{"continuation without value", []string{"Tylenchorhynchus", "spp.", "veel"}},
		{"too short", []string{"A b 3"}},
		{"overflowing number", []string{"Pratylenchus penetrans " + strings.Repeat("9", 400)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, extractMeasurements(tt.lines))
		})
	}
}

func TestExtractMeasurements_Deduplicates(t *testing.T) {
	lines := []string{
		"Pratylenchus penetrans 245",
		"Wortellesieaaltjes",
		"Pratylenchus penetrans",
		"245",
		"Pratylenchus penetrans 250",
	}

	rows := extractMeasurements(lines)

	require.Len(t, rows, 2)
	assert.Equal(t, measurement("Pratylenchus penetrans", 245, ""), rows[0])
	assert.Equal(t, measurement("Pratylenchus penetrans", 250, "Wortellesieaaltjes"), rows[1])
}

func TestExtractMeasurements_DecimalSeparatorsCollapse(t *testing.T) {
	rows := extractMeasurements([]string{"Ditylenchus dipsaci 0,5", "Ditylenchus dipsaci 0.5"})
	require.Len(t, rows, 1)
}

func TestExtractMeasurements_CategoryTracking(t *testing.T) {
	lines := []string{
		"Meloidogyne hapla 31",
		"WORTELKNOBBELAALTJES",
		"Meloidogyne chitwoodi 12",
		"Niet plantparasitaire aaltjes",
		"Saprofage aaltjes 1250",
	}

	rows := extractMeasurements(lines)

	require.Len(t, rows, 3)
	assert.Empty(t, rows[0].Category)
	assert.Equal(t, "Wortelknobbelaaltjes", rows[1].Category)
	assert.Equal(t, "Niet plantparasitaire aaltjes", rows[2].Category)
}

func TestExtractMeasurements_NoiseSkippedBetweenRows(t *testing.T) {
	lines := []string{
		"Cysteaaltjes",
		"Pratylenchus penetrans",
		"245",
		"Een betrouwbare indicatie 12",
	}

	rows := extractMeasurements(lines)

	require.Len(t, rows, 1)
	assert.Equal(t, "Pratylenchus penetrans", rows[0].AnalyteKey)
}

func TestExtractMeasurements_SplitLinePrecedesContinuation(t *testing.T) {
	// The value-on-next-line form wins when the name already has two words.
	lines := []string{"Tylenchorhynchus dubius", "80", "spp.", "120"}

	rows := extractMeasurements(lines)

	require.Len(t, rows, 1)
	assert.Equal(t, measurement("Tylenchorhynchus dubius", 80, ""), rows[0])
}

func TestExtractMeasurements_Empty(t *testing.T) {
	rows := extractMeasurements(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestParseNumber(t *testing.T) {
	v, ok := parseNumber("12,5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = parseNumber("1e999")
	assert.False(t, ok)

	_, ok = parseNumber("abc")
	assert.False(t, ok)
}
