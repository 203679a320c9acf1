package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

func TestWatchCmd_RequiresDirectory(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "watch", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")

	file := filepath.Join(t.TempDir(), "report.txt")
	writeFile(t, file, "Monsternummer: 1")

	_, err = execute(t, "watch", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestWatchCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "watch", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "inbox not configured")
}

func TestWatchCmd_ImportsUntilCancelled(t *testing.T) {
	env := setupTestServices(t)

	// A prior execution must not leave watch bound to its context.
	_, err := execute(t, "watch", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("testdata", "hlb-2004537.txt"))
	require.NoError(t, err)
	writeFile(t, filepath.Join(dir, "2004537.txt"), string(data))
	writeFile(t, filepath.Join(dir, "leeg.txt"), "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", dir})
	resetContexts(rootCmd)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetContexts(rootCmd)
	})

	done := make(chan error, 1)
	go func() { done <- rootCmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		reports, err := env.reports.ListReports(context.Background())
		return err == nil && len(reports) == 2
	}, 5*time.Second, 20*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	out := buf.String()
	assert.Contains(t, out, "Watching "+dir)
	assert.Contains(t, out, "imported "+filepath.Join(dir, "2004537.txt"))
	assert.Contains(t, out, "imported "+filepath.Join(dir, "leeg.txt"))
	assert.Contains(t, out, "(no field)")
	assert.Contains(t, out, "warning: "+domain.WarnNoText)
	assert.Contains(t, out, "Stopped: 2 imported, 0 failed")
}
