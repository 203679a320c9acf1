package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// TestParsedDocument_JSONShape tests the serialised field names
func TestParsedDocument_JSONShape(t *testing.T) {
	doc := ParsedDocument{
		LabName: "HLB",
		Samples: []Sample{{
			SampleNumber: "2004537",
			PDFFieldName: "Barlage 4",
			Measurements: []Measurement{{
				AnalyteKey: "Pratylenchus penetrans",
				Value:      245,
				Unit:       MeasurementUnit,
				Category:   "Wortellesieaaltjes",
			}},
			CystResult: &CystResult{CystCount: intPtr(62), LLECount: intPtr(2525), InfestationGrade: "zwaar besmet"},
		}},
		Warnings: []string{},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "HLB", decoded["labName"])
	assert.Equal(t, []any{}, decoded["warnings"])

	samples := decoded["samples"].([]any)
	require.Len(t, samples, 1)
	sample := samples[0].(map[string]any)
	assert.Equal(t, "2004537", sample["sampleNumber"])
	assert.Equal(t, "Barlage 4", sample["pdfFieldName"])
	assert.NotContains(t, sample, "receivedDate")

	cyst := sample["cystResult"].(map[string]any)
	assert.Equal(t, float64(62), cyst["cystCount"])
	assert.Equal(t, float64(2525), cyst["lleCount"])
	assert.Equal(t, "zwaar besmet", cyst["infestationGrade"])

	m := sample["measurements"].([]any)[0].(map[string]any)
	assert.Equal(t, "Pratylenchus penetrans", m["analyteKey"])
	assert.Equal(t, MeasurementUnit, m["unit"])
}

// TestParsedDocument_OmitsUnsetOptionals tests omitempty behaviour
func TestParsedDocument_OmitsUnsetOptionals(t *testing.T) {
	doc := ParsedDocument{Samples: []Sample{{}}, Warnings: []string{"x"}}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "labName")
	assert.NotContains(t, string(data), "cystResult")
	assert.NotContains(t, string(data), "category")
	assert.Contains(t, string(data), `"measurements":null`)
}

func TestParsedDocument_FirstSample(t *testing.T) {
	t.Run("nil document", func(t *testing.T) {
		var doc *ParsedDocument
		assert.Nil(t, doc.FirstSample())
	})

	t.Run("no samples", func(t *testing.T) {
		doc := &ParsedDocument{}
		assert.Nil(t, doc.FirstSample())
	})

	t.Run("returns pointer into slice", func(t *testing.T) {
		doc := &ParsedDocument{Samples: []Sample{{SampleNumber: "1"}}}
		doc.FirstSample().SampleNumber = "2"
		assert.Equal(t, "2", doc.Samples[0].SampleNumber)
	})
}

func TestParsedDocument_HasWarning(t *testing.T) {
	doc := &ParsedDocument{Warnings: []string{"a", "b"}}
	assert.True(t, doc.HasWarning("b"))
	assert.False(t, doc.HasWarning("c"))
}
