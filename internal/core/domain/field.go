package domain

import (
	"strings"
	"time"
)

// Field is an agricultural parcel tracked across samples over time.
// Reports name the same parcel inconsistently, so a field carries
// aliases under which it may appear on a report.
type Field struct {
	// ID is the unique identifier for the field.
	ID string

	// Name is the operator's name for the parcel.
	Name string

	// Notes is free-form operator text.
	Notes string

	// Aliases are alternative names printed on reports.
	Aliases []string

	// CreatedAt is when the field was registered.
	CreatedAt time.Time
}

// Matches reports whether name equals the field name or one of its
// aliases, ignoring case and surrounding whitespace.
func (f Field) Matches(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(f.Name), name) {
		return true
	}
	for _, alias := range f.Aliases {
		if strings.EqualFold(strings.TrimSpace(alias), name) {
			return true
		}
	}
	return false
}
