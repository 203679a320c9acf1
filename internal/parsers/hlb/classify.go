package hlb

import (
	"strings"
	"unicode/utf8"
)

// isNoiseLine reports whether line is report boilerplate.
func isNoiseLine(line string) bool {
	return noisePattern.MatchString(line)
}

// looksLikeAnalyte reports whether value is a plausible taxon name.
// Taxon names always have at least two words (genus and species or a
// continuation token), which separates them from metadata rows that
// also end in a number.
func looksLikeAnalyte(value string) bool {
	if utf8.RuneCountInString(value) < 4 {
		return false
	}
	if metadataPattern.MatchString(value) {
		return false
	}
	if strings.Contains(value, ":") || isDateLikeLabel(value) || isAddressLikeLabel(value) {
		return false
	}
	if len(strings.Fields(value)) < 2 {
		return false
	}
	return letterPattern.MatchString(value)
}

// looksLikeFieldName reports whether value is a plausible parcel name.
func looksLikeFieldName(value string) bool {
	if value == "" {
		return false
	}
	if fieldPrefixPattern.MatchString(value) || fieldLabelPattern.MatchString(value) {
		return false
	}
	if leadingCodePattern.MatchString(value) {
		return false
	}
	return letterPattern.MatchString(value)
}

// isDateLikeLabel matches a day and month without a year, e.g. "27 maart".
func isDateLikeLabel(value string) bool {
	return dateLabelPattern.MatchString(strings.TrimSpace(value))
}

func isAddressLikeLabel(value string) bool {
	return addressPattern.MatchString(value)
}

// isContinuation reports whether value completes a wrapped genus name.
func isContinuation(value string) bool {
	return continuationPattern.MatchString(strings.TrimSpace(value))
}

// categoryHeader returns the canonical category when line is exactly a
// category header.
func categoryHeader(line string) (string, bool) {
	c, ok := categoryByLine[strings.ToLower(line)]
	return c, ok
}

// cleanAnalyteName strips category headers and parentheses and collapses
// whitespace.
func cleanAnalyteName(value string) string {
	value = categoryPattern.ReplaceAllString(value, "")
	value = parenthesesPattern.ReplaceAllString(value, "")
	return strings.Join(strings.Fields(value), " ")
}
