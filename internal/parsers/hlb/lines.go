package hlb

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var newlinePattern = regexp.MustCompile(`\r\n|\n|\r`)

// normalizeLines splits text into trimmed, whitespace-collapsed,
// non-empty lines. Text is NFC-normalised first so decomposed
// diacritics from PDF text layers match the vocabulary.
func normalizeLines(text string) []string {
	text = norm.NFC.String(text)
	raw := newlinePattern.Split(text, -1)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
