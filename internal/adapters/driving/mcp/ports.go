package mcp

import (
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Report parses report text and reads saved reports.
	Report driving.ReportService

	// Field reads fields and their trends. Optional.
	Field driving.FieldService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Report == nil {
		return ErrMissingReportService
	}
	return nil
}
