package hlb

import (
	"regexp"
	"strings"
)

// Label patterns for single-value fields. Each captures everything after
// the label and its optional colon.
var (
	sampleNumberLabel = regexp.MustCompile(`(?i)^Monsternummer\s*:?\s*(.+)$`)
	fieldNameLabel    = regexp.MustCompile(`(?i)^Perceel\s*:?\s*(.+)$`)
	receivedDateLabel = regexp.MustCompile(`(?i)^Datum ontvangst\s*:?\s*(.+)$`)
	reportDateLabel   = regexp.MustCompile(`(?i)^Datum verslag\s*:?\s*(.+)$`)

	sampleNumberToken = regexp.MustCompile(`(\d{5,})`)
	dateToken         = regexp.MustCompile(`(?i)(\d{1,2}\s+[a-zé]+\s+\d{4})`)
)

// Whole-text fallbacks for values the OCR split across lines.
var (
	sampleNumberInText = regexp.MustCompile(`(?i)Monsternummer\s*:?\s*(\d{5,})`)

	fieldNameNearLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Perceel\s*:?\s*([^\n]*?)(?:\s+Monsternummer|\s+Datum ontvangst|\s+Datum verslag|\n|$)`),
		regexp.MustCompile(`(?i)Perceel\s*:?\s*([^\n]+)`),
	}
	fieldNameAfterDebtor = regexp.MustCompile(`(?i)Debiteurnummer\s*:?\s*\n\s*([^\n]+)`)
)

// extractField returns the value of the first line matching label.
// Candidates that are empty or a bare colon are skipped. When narrow is
// non-nil only its first capture is returned, and lines it does not
// match are skipped.
func extractField(lines []string, label, narrow *regexp.Regexp) string {
	for _, line := range lines {
		m := label.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if candidate == "" || candidate == ":" {
			continue
		}
		if narrow == nil {
			return candidate
		}
		if nm := narrow.FindStringSubmatch(candidate); len(nm) > 1 && nm[1] != "" {
			return strings.TrimSpace(nm[1])
		}
	}
	return ""
}

// firstCapture returns the trimmed first capture of the first pattern
// that matches content with a non-empty capture.
func firstCapture(content string, patterns ...*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(content); len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func extractSampleNumber(lines []string, content string) string {
	if v := extractField(lines, sampleNumberLabel, sampleNumberToken); v != "" {
		return v
	}
	return firstCapture(content, sampleNumberInText)
}

func extractFieldName(lines []string, content string) string {
	if v := extractField(lines, fieldNameLabel, nil); v != "" && looksLikeFieldName(v) {
		return v
	}
	return fieldNameFromContent(content)
}

// fieldNameFromContent looks for a parcel name near the Perceel label,
// then on the line after a value-less Debiteurnummer label.
func fieldNameFromContent(content string) string {
	if v := firstCapture(content, fieldNameNearLabels...); v != "" && looksLikeFieldName(v) {
		v, _, _ = strings.Cut(v, " Datum")
		return strings.TrimSpace(v)
	}
	if v := firstCapture(content, fieldNameAfterDebtor); v != "" && looksLikeFieldName(v) && !isNoiseLine(v) {
		return v
	}
	return ""
}
