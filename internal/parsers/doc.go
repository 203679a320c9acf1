// Package parsers holds the lab-report text parsers.
//
// A parser turns the plain text of one report into a domain.ParsedDocument.
// Parsers never fail: data they cannot locate is reported as a warning on
// the returned document so an operator can review and correct it.
package parsers
