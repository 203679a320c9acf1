package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aaltjes/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can parse
reports and read field trends.

Tools:
  parse_report  - Extract a report from its text
  field_trend   - Counts of a field over time

Resources:
  aaltjes://fields              - Tracked fields
  aaltjes://reports             - Saved reports
  aaltjes://reports/{reportId}  - Stored extraction of a report

By default the server communicates over stdio using JSON-RPC. Use --port
to serve over HTTP instead.

Examples:
  # Stdio mode (default)
  aaltjes mcp serve

  # HTTP mode
  aaltjes mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Report: reportService,
		Field:  fieldService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
