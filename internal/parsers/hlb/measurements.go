package hlb

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

var (
	sameLineRow = regexp.MustCompile(`^(.+?)\s+(\d+(?:[\.,]\d+)?)\s*(\*{0,2})$`)
	valueOnly   = regexp.MustCompile(`^(\d+(?:[\.,]\d+)?)\s*(\*{0,2})$`)
)

type measurementKey struct {
	analyte string
	value   float64
}

// measurementSet collects measurements in order, dropping rows that
// are implausible or repeat an earlier (analyte, value) pair.
type measurementSet struct {
	rows []domain.Measurement
	seen map[measurementKey]struct{}
}

func newMeasurementSet() *measurementSet {
	return &measurementSet{
		rows: make([]domain.Measurement, 0),
		seen: make(map[measurementKey]struct{}),
	}
}

func (s *measurementSet) add(analyte, rawValue, category string) {
	value, ok := parseNumber(rawValue)
	if !ok || analyte == "" || !looksLikeAnalyte(analyte) {
		return
	}
	key := measurementKey{analyte: analyte, value: value}
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	s.rows = append(s.rows, domain.Measurement{
		AnalyteKey: analyte,
		Value:      value,
		Unit:       domain.MeasurementUnit,
		Category:   category,
	})
}

// extractMeasurements scans lines forward, recognising rows whose
// analyte name and value span one to three lines.
func extractMeasurements(lines []string) []domain.Measurement {
	set := newMeasurementSet()
	category := ""

	for i := 0; i < len(lines); {
		line := lines[i]

		if c, ok := categoryHeader(line); ok {
			category = c
			i++
			continue
		}

		if isNoiseLine(line) {
			i++
			continue
		}

		// Name and value on one line.
		if m := sameLineRow.FindStringSubmatch(line); m != nil {
			set.add(cleanAnalyteName(m[1]), m[2], category)
			i++
			continue
		}

		// Value on the next line.
		candidate := cleanAnalyteName(line)
		if looksLikeAnalyte(candidate) && i+1 < len(lines) {
			if m := valueOnly.FindStringSubmatch(lines[i+1]); m != nil {
				set.add(candidate, m[1], category)
				i += 2
				continue
			}
		}

		// Genus, continuation token and value on three lines.
		if i+2 < len(lines) && isContinuation(lines[i+1]) {
			joined := cleanAnalyteName(line + " " + lines[i+1])
			if m := valueOnly.FindStringSubmatch(lines[i+2]); m != nil && looksLikeAnalyte(joined) {
				set.add(joined, m[1], category)
				i += 3
				continue
			}
		}

		i++
	}

	return set.rows
}

// parseNumber parses a count using "." or "," as decimal separator.
func parseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
