package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// ParseReportInput is the input schema for the parse_report tool.
type ParseReportInput struct {
	Text string `json:"text" jsonschema:"the plain text of an HLB nematode lab report"`
}

// FieldTrendInput is the input schema for the field_trend tool.
type FieldTrendInput struct {
	FieldID string `json:"field_id" jsonschema:"the ID of a tracked field"`
}

// FieldTrendOutput is the output schema for the field_trend tool.
type FieldTrendOutput struct {
	FieldID   string             `json:"field_id"`
	FieldName string             `json:"field_name"`
	Analytes  []string           `json:"analytes"`
	Points    []TrendPointOutput `json:"points"`
}

// TrendPointOutput is one sample of a field trend.
type TrendPointOutput struct {
	SampleID     string             `json:"sample_id"`
	SampleNumber string             `json:"sample_number,omitempty"`
	ReportID     string             `json:"report_id"`
	Date         string             `json:"date"`
	Values       map[string]float64 `json:"values"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_report",
		Description: "Extract the sample, nematode counts and cyst result from HLB report text",
	}, s.handleParseReport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "field_trend",
		Description: "Nematode counts of a tracked field over time, ordered by report date",
	}, s.handleFieldTrend)
}

// handleParseReport handles the parse_report tool invocation.
func (s *Server) handleParseReport(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseReportInput,
) (*mcp.CallToolResult, domain.ParsedDocument, error) {
	doc := s.ports.Report.ParseText(input.Text)
	if doc.Samples == nil {
		doc.Samples = []domain.Sample{}
	}
	if doc.Warnings == nil {
		doc.Warnings = []string{}
	}
	for i := range doc.Samples {
		if doc.Samples[i].Measurements == nil {
			doc.Samples[i].Measurements = []domain.Measurement{}
		}
	}
	return nil, doc, nil
}

// handleFieldTrend handles the field_trend tool invocation.
func (s *Server) handleFieldTrend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FieldTrendInput,
) (*mcp.CallToolResult, FieldTrendOutput, error) {
	if s.ports.Field == nil {
		return nil, FieldTrendOutput{}, ErrMissingFieldService
	}

	fieldID := strings.TrimSpace(input.FieldID)
	if fieldID == "" {
		return nil, FieldTrendOutput{}, fmt.Errorf("field_id: %w", domain.ErrInvalidInput)
	}

	trend, err := s.ports.Field.Trend(ctx, fieldID)
	if err != nil {
		return nil, FieldTrendOutput{}, fmt.Errorf("field trend %s: %w", fieldID, err)
	}

	output := FieldTrendOutput{
		FieldID:   trend.Field.ID,
		FieldName: trend.Field.Name,
		Analytes:  append([]string{}, trend.Analytes...),
		Points:    make([]TrendPointOutput, len(trend.Points)),
	}
	for i, p := range trend.Points {
		values := p.Values
		if values == nil {
			values = map[string]float64{}
		}
		output.Points[i] = TrendPointOutput{
			SampleID:     p.SampleID,
			SampleNumber: p.SampleNumber,
			ReportID:     p.ReportID,
			Date:         p.Date,
			Values:       values,
		}
	}

	return nil, output, nil
}
