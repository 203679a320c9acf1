// Package domain defines the core business entities for aaltjes.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ParsedDocument: The structured result of parsing one lab report
//   - Sample: One soil sample with its nematode measurements
//   - Field: An agricultural parcel tracked across reports
//   - Report: A persisted extraction with its stored samples
//   - RawDocument: Opaque bytes of an uploaded report file
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
