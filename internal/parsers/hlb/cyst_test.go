package hlb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCyst(t *testing.T) {
	result := extractCyst([]string{
		"Cysteaaltjes",
		"Soort cysten levende eieren en larven besmettingsgraad",
		"Aardappelcysteaaltjes 62 2525 zwaar besmet",
	})

	require.NotNil(t, result)
	require.NotNil(t, result.CystCount)
	require.NotNil(t, result.LLECount)
	assert.Equal(t, 62, *result.CystCount)
	assert.Equal(t, 2525, *result.LLECount)
	assert.Equal(t, "zwaar besmet", result.InfestationGrade)
}

func TestExtractCyst_MarkerLineItself(t *testing.T) {
	result := extractCyst([]string{"Aardappelcysteaaltjes 62 2525 zwaar besmet"})

	require.NotNil(t, result)
	assert.Equal(t, 62, *result.CystCount)
}

func TestExtractCyst_WithoutSpeciesPrefix(t *testing.T) {
	result := extractCyst([]string{"Cysteaaltjes", "3 40 licht besmet"})

	require.NotNil(t, result)
	assert.Equal(t, 3, *result.CystCount)
	assert.Equal(t, 40, *result.LLECount)
	assert.Equal(t, "licht besmet", result.InfestationGrade)
}

func TestExtractCyst_NoSection(t *testing.T) {
	assert.Nil(t, extractCyst([]string{"Pratylenchus penetrans 245", "62 2525 zwaar besmet"}))
}

func TestExtractCyst_NoRow(t *testing.T) {
	assert.Nil(t, extractCyst([]string{"Cysteaaltjes", "niet onderzocht"}))
}

func TestExtractCyst_Window(t *testing.T) {
	lines := []string{"Cysteaaltjes"}
	for i := 0; i < 9; i++ {
		lines = append(lines, "regel")
	}

	t.Run("row just outside the window", func(t *testing.T) {
		assert.Nil(t, extractCyst(append(lines, "62 2525 zwaar besmet")))
	})

	t.Run("row on last line of the window", func(t *testing.T) {
		inside := append(append([]string{}, lines[:9]...), "62 2525 zwaar besmet")
		assert.NotNil(t, extractCyst(inside))
	})
}

func TestExtractCyst_FirstMarkerOnly(t *testing.T) {
	lines := []string{"Cysteaaltjes"}
	for i := 0; i < 12; i++ {
		lines = append(lines, "regel")
	}
	lines = append(lines, "Cysteaaltjes", "62 2525 zwaar besmet")

	assert.Nil(t, extractCyst(lines))
}
