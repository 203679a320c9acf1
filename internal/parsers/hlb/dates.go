package hlb

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// extractOrderedDates returns every "<day> <month> <year>" substring of
// text, trimmed and deduplicated, in order of first occurrence.
func extractOrderedDates(text string) []string {
	matches := orderedDatePattern.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	dates := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		dates = append(dates, m)
	}
	return dates
}

// ParseDutchDate converts a raw Dutch date such as "18 februari 2020"
// into a calendar date. It reports false when no date is found, the
// month name is unknown or the day does not exist in that month.
func ParseDutchDate(raw string) (domain.CalendarDate, bool) {
	m := calendarDatePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if m == nil {
		return domain.CalendarDate{}, false
	}
	month, ok := months[m[2]]
	if !ok {
		return domain.CalendarDate{}, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.CalendarDate{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return domain.CalendarDate{}, false
	}
	return domain.NewCalendarDate(year, month, day)
}
