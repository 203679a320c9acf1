package domain

import (
	"fmt"
	"time"
)

// CalendarDate is a timezone-free day/month/year value.
type CalendarDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewCalendarDate returns the date for the triple, or false if the
// triple is not a real calendar date (no rollover of e.g. 31 February).
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, bool) {
	if month < time.January || month > time.December || day < 1 {
		return CalendarDate{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, false
	}
	return CalendarDate{Year: year, Month: month, Day: day}, true
}

// CalendarDateOf returns the calendar date of t in t's location.
func CalendarDateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight UTC on the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the date is unset.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
