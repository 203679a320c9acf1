package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aaltjes/internal/adapters/driving/mcp"
)

func TestMCPCmd_HasServe(t *testing.T) {
	require.Len(t, mcpCmd.Commands(), 1)
	assert.Equal(t, "serve", mcpCmd.Commands()[0].Name())
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RequiresReportService(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "mcp", "serve")

	require.Error(t, err)
	assert.ErrorIs(t, err, mcp.ErrMissingReportService)
}
