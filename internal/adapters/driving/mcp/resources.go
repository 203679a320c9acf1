package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for aaltjes resources.
	uriScheme = "aaltjes://"

	jsonMIMEType = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "fields",
		Name:        "fields",
		Description: "Tracked fields with their report aliases",
		MIMEType:    jsonMIMEType,
	}, s.handleFieldsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "reports",
		Name:        "reports",
		Description: "Saved lab reports, newest first",
		MIMEType:    jsonMIMEType,
	}, s.handleReportsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reports/{reportId}",
		Name:        "report-extraction",
		Description: "Stored extraction of a saved report",
		MIMEType:    jsonMIMEType,
	}, s.handleReportResource)
}

// handleFieldsResource returns all tracked fields.
func (s *Server) handleFieldsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Field == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	fields, err := s.ports.Field.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	type fieldInfo struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Notes   string   `json:"notes,omitempty"`
		Aliases []string `json:"aliases"`
	}

	infos := make([]fieldInfo, len(fields))
	for i, f := range fields {
		infos[i] = fieldInfo{
			ID:      f.ID,
			Name:    f.Name,
			Notes:   f.Notes,
			Aliases: append([]string{}, f.Aliases...),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling fields: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleReportsResource returns a summary of all saved reports.
func (s *Server) handleReportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	reports, err := s.ports.Report.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	type reportInfo struct {
		ID            string    `json:"id"`
		Filename      string    `json:"filename"`
		LabName       string    `json:"lab_name,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
		SampleNumbers []string  `json:"sample_numbers"`
	}

	infos := make([]reportInfo, len(reports))
	for i := range reports {
		numbers := make([]string, 0, len(reports[i].Samples))
		for _, sample := range reports[i].Samples {
			numbers = append(numbers, sample.SampleNumber)
		}
		infos[i] = reportInfo{
			ID:            reports[i].ID,
			Filename:      reports[i].OriginalFilename,
			LabName:       reports[i].LabName,
			CreatedAt:     reports[i].CreatedAt,
			SampleNumbers: numbers,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling reports: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleReportResource returns the stored extraction JSON of one report.
func (s *Server) handleReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract reportId from URI: aaltjes://reports/{reportId}
	reportID := extractReportID(req.Params.URI)
	if reportID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	report, err := s.ports.Report.Get(ctx, reportID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	return jsonResult(req.Params.URI, report.ExtractedJSON), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     text,
		}},
	}
}

// extractReportID extracts the report ID from a URI like aaltjes://reports/{reportId}.
func extractReportID(uri string) string {
	const prefix = uriScheme + "reports/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
