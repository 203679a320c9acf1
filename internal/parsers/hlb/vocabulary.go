package hlb

import (
	"regexp"
	"strings"
	"time"
)

// LabName is reported when the HLB marker token occurs in the text.
const LabName = "HLB"

// Warnings appended by the assembler, in this order.
const (
	WarnSampleNumberNotFound = "sample number not found"
	WarnFieldNameNotFound    = "field name not found"
	WarnNoMeasurements       = "no measurements found"
)

// monthNames lists the Dutch month names in calendar order.
var monthNames = []string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// months maps a lowercase Dutch month name to its month.
var months = func() map[string]time.Month {
	m := make(map[string]time.Month, len(monthNames))
	for i, name := range monthNames {
		m[name] = time.Month(i + 1)
	}
	return m
}()

// categories are the taxonomic headers that open a block of analyte rows.
var categories = []string{
	"Vrijlevende aaltjes",
	"Wortellesieaaltjes",
	"Wortelknobbelaaltjes",
	"Vrijlevende wortelaaltjes",
	"Stengelaaltjes",
	"Overige plantparasitaire aaltjes",
	"Niet plantparasitaire aaltjes",
}

// noiseMarkers are boilerplate fragments of the report: labels, banking
// and registration codes, disclaimers and the lab's own address.
var noiseMarkers = []string{
	`Monsternummer`,
	`Debiteurnummer`,
	`Datum ontvangst`,
	`Datum verslag`,
	`Soort monster`,
	`Cysteaaltjes`,
	`besmettingsgraad`,
	`aantallen per`,
	`Een betrouwbare indicatie`,
	`AALTJES ANALYSE`,
	`research and consultancy`,
	`Kampweg`,
	`\bIBAN\b`,
	`\bBIC\b`,
	`K\.v\.K`,
	`\bBTW\b`,
}

// metadataLabels never occur inside an analyte name.
var metadataLabels = []string{
	`Monsternummer`,
	`Debiteurnummer`,
	`Datum ontvangst`,
	`Datum verslag`,
	`Soort monster`,
	`Cysteaaltjes`,
	`besmettingsgraad`,
	`AALTJES ANALYSE`,
	`\bIBAN\b`,
	`\bBIC\b`,
}

// fieldNamePrefixes are section headers that are never a parcel name.
var fieldNamePrefixes = []string{
	`Vrijlevende`,
	`AALTJES ANALYSE`,
	`Analysemethode`,
	`Perceel`,
	`Monsternummer`,
}

// fieldNameLabels are labels that never occur inside a parcel name.
var fieldNameLabels = []string{
	`Monsternummer`,
	`Datum ontvangst`,
	`Datum verslag`,
	`Soort monster`,
	`Debiteurnummer`,
}

// addressWords mark street or postal address fragments.
var addressWords = []string{
	"laan", "straat", "weg", "dijk", "kade", "plein",
	"steeg", "hof", "gracht", "buurt", "wijk", "postcode",
}

// continuationTokens complete a genus name wrapped onto its own line.
var continuationTokens = []string{`spp\.?`, `cf\.?`, `sp\.?`, `species`}

// Compiled vocabulary. Built once, read-only afterwards.
var (
	monthAlternation = strings.Join(monthNames, "|")

	noisePattern        = regexp.MustCompile(`(?i)` + strings.Join(noiseMarkers, "|"))
	metadataPattern     = regexp.MustCompile(`(?i)` + strings.Join(metadataLabels, "|"))
	fieldPrefixPattern  = regexp.MustCompile(`(?i)^(?:` + strings.Join(fieldNamePrefixes, "|") + `)`)
	fieldLabelPattern   = regexp.MustCompile(`(?i)` + strings.Join(fieldNameLabels, "|"))
	leadingCodePattern  = regexp.MustCompile(`^\d+\s*[A-Za-z]`)
	letterPattern       = regexp.MustCompile(`[A-Za-z]`)
	addressPattern      = regexp.MustCompile(`(?i)\b(?:` + strings.Join(addressWords, "|") + `)\b`)
	continuationPattern = regexp.MustCompile(`(?i)^(?:` + strings.Join(continuationTokens, "|") + `)$`)
	dateLabelPattern    = regexp.MustCompile(`(?i)^\d{1,2}\s+(?:` + monthAlternation + `)$`)
	orderedDatePattern  = regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:` + monthAlternation + `)\s+\d{4}\b`)
	calendarDatePattern = regexp.MustCompile(`(\d{1,2})\s+([a-zé]+)\s+(\d{4})`)
	categoryPattern     = regexp.MustCompile(`(?i)` + quoteAll(categories))
	parenthesesPattern  = regexp.MustCompile(`[()]`)
	labMarkerPattern    = regexp.MustCompile(`(?i)\bHLB\b`)
)

// categoryByLine maps a lowercase header line to its canonical spelling.
var categoryByLine = func() map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[strings.ToLower(c)] = c
	}
	return m
}()

func quoteAll(literals []string) string {
	quoted := make([]string, len(literals))
	for i, l := range literals {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(quoted, "|")
}
