// Package mcp provides an MCP (Model Context Protocol) server adapter for aaltjes.
// It lets AI assistants parse lab reports and read field trends.
package mcp

import "errors"

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("mcp: report service is required")

// ErrMissingFieldService is returned by field tools when no field service is configured.
var ErrMissingFieldService = errors.New("mcp: field service is not configured")
