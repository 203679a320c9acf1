package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

func TestConfigGetCmd_All(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "get")

	require.NoError(t, err)
	assert.Contains(t, out, "storage.data_dir       (default)")
	assert.Contains(t, out, "watch.per_minute       30")
	assert.Contains(t, out, "pdf.prefer_pdftotext   true")
	assert.Contains(t, out, "export.sheet_name      Trend")
}

func TestConfigGetCmd_OneKey(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "get", "export.sheet_name")

	require.NoError(t, err)
	assert.Equal(t, "Trend\n", out)
}

func TestConfigGetCmd_UnknownKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "config", "get", "search.mode")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigSetCmd(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "config", "set", "watch.per_minute", "12")

	require.NoError(t, err)
	assert.Contains(t, out, "Set watch.per_minute = 12")
	assert.Equal(t, 12, env.config.GetInt("watch.per_minute"))

	out, err = execute(t, "config", "get", "watch.per_minute")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)
}

func TestConfigSetCmd_Invalid(t *testing.T) {
	setupTestServices(t)

	tests := [][]string{
		{"watch.per_minute", "veel"},
		{"watch.per_minute", "0"},
		{"pdf.prefer_pdftotext", "misschien"},
		{"export.sheet_name", "a/b"},
	}
	for _, tt := range tests {
		_, err := execute(t, "config", "set", tt[0], tt[1])
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tt)
	}
}

func TestConfigSetCmd_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "config", "set", "watch.per_minute")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestConfigPathCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, testConfigPath+"\n", out)
}

func TestConfigCmds_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "config", "get")
	assert.ErrorContains(t, err, "settings service not configured")

	_, err = execute(t, "config", "path")
	assert.ErrorContains(t, err, "config file not configured")
}
