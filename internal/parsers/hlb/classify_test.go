package hlb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNoiseLine(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"Monsternummer: 2004537", true},
		{"IBAN NL12 RABO 0123 4567 89", true},
		{"K.v.K. 01234567", true},
		{"btw NL0012.34.567.B01", true},
		{"HLB research and consultancy", true},
		{"Kampweg 8", true},
		{"Een betrouwbare indicatie van de besmetting", true},
		{"aantallen per 100 gram grond", true},
		{"Aardappelcysteaaltjes 62 2525 zwaar besmet", true},
		{"Pratylenchus penetrans 245", false},
		{"Globodera rostochiensis", false},
		{"Bicornis species", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, isNoiseLine(tt.line))
		})
	}
}

func TestLooksLikeAnalyte(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"Pratylenchus penetrans", true},
		{"Tylenchorhynchus spp.", true},
		{"Meloidogyne hapla", true},
		{"Ab c", true},
		{"Abc", false},
		{"Pratylenchus", false},
		{"Perceel: Barlage", false},
		{"Soort monster grond", false},
		{"27 maart", false},
		{"Oude Dijk Smeerling", false},
		{"Veenhuizen wijk", false},
		{"Postcode 9431", false},
		{"12 34", false},
		{"IBAN NL12", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, looksLikeAnalyte(tt.value))
		})
	}
}

func TestLooksLikeFieldName(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"Barlage 4", true},
		{"H1", true},
		{"SM1", true},
		{"", false},
		{"Vrijlevende aaltjes", false},
		{"AALTJES ANALYSE", false},
		{"Analysemethode trechter", false},
		{"perceel", false},
		{"Monsternummer 2004537", false},
		{"H1 Datum ontvangst", false},
		{"Zie Debiteurnummer", false},
		{"4AB", false},
		{"12 maart", false},
		{"12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, looksLikeFieldName(tt.value))
		})
	}
}

func TestIsDateLikeLabel(t *testing.T) {
	assert.True(t, isDateLikeLabel("27 maart"))
	assert.True(t, isDateLikeLabel("1 December"))
	assert.False(t, isDateLikeLabel("27 maart 2020"))
	assert.False(t, isDateLikeLabel("maart"))
}

func TestIsAddressLikeLabel(t *testing.T) {
	assert.True(t, isAddressLikeLabel("Hoofd straat"))
	assert.True(t, isAddressLikeLabel("POSTCODE 9431"))
	assert.False(t, isAddressLikeLabel("Kampwegen"))
	assert.False(t, isAddressLikeLabel("Pratylenchus penetrans"))
}

func TestIsContinuation(t *testing.T) {
	for _, v := range []string{"spp.", "spp", "SPP.", "cf.", "cf", "sp.", "sp", "species", " spp. "} {
		assert.True(t, isContinuation(v), v)
	}
	for _, v := range []string{"spp..", "sp p", "220", "penetrans"} {
		assert.False(t, isContinuation(v), v)
	}
}

func TestCategoryHeader(t *testing.T) {
	c, ok := categoryHeader("wortellesieaaltjes")
	assert.True(t, ok)
	assert.Equal(t, "Wortellesieaaltjes", c)

	_, ok = categoryHeader("Wortellesieaaltjes Pratylenchus")
	assert.False(t, ok)
}

func TestCleanAnalyteName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Pratylenchus penetrans", "Pratylenchus penetrans"},
		{"Wortellesieaaltjes Pratylenchus penetrans", "Pratylenchus penetrans"},
		{"vrijlevende wortelaaltjes Tylenchorhynchus spp.", "Tylenchorhynchus spp."},
		{"Trichodoridae (Trichodorus)", "Trichodoridae Trichodorus"},
		{"  Meloidogyne   hapla ", "Meloidogyne hapla"},
		{"Stengelaaltjes", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanAnalyteName(tt.input))
		})
	}
}
