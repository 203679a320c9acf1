package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aaltjes/internal/adapters/driven/export/xlsx"
	"github.com/custodia-labs/aaltjes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aaltjes/internal/adapters/driven/validation"
	"github.com/custodia-labs/aaltjes/internal/connectors/inbox"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
	"github.com/custodia-labs/aaltjes/internal/core/services"
	"github.com/custodia-labs/aaltjes/internal/extractors"
	"github.com/custodia-labs/aaltjes/internal/extractors/plaintext"
	"github.com/custodia-labs/aaltjes/internal/parsers/hlb"
)

const testConfigPath = "/home/boer/.aaltjes/config.toml"

// testEnv exposes the in-memory stores behind the wired services.
type testEnv struct {
	reports *memory.ReportStore
	fields  *memory.FieldStore
	config  *memory.ConfigStore
}

// setupTestServices wires the real services over in-memory stores.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		reports: memory.NewReportStore(),
		fields:  memory.NewFieldStore(),
		config:  memory.NewConfigStore(),
	}

	validator, err := validation.New()
	require.NoError(t, err)

	registry := extractors.NewRegistry(plaintext.New())
	report := services.NewReportService(hlb.New(), registry, env.reports, env.fields, validator)

	SetServices(&Services{
		Report:   report,
		Field:    services.NewFieldService(env.fields, env.reports, xlsx.New("")),
		Seed:     services.NewSeedService(env.fields, env.reports),
		Settings: services.NewSettingsService(env.config),
		NewInbox: func(dir string) driving.InboxService {
			return services.NewInboxService(inbox.New(dir), report, 6000)
		},
		ConfigPath: testConfigPath,
	})

	t.Cleanup(func() {
		SetServices(nil)
		resetFlags(rootCmd)
		resetContexts(rootCmd)
	})
	return env
}

// resetFlags restores every flag of cmd and its children to its default,
// so state does not leak between executions of the shared root command.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
		resetContexts(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetContexts clears the context cobra stores on each command during
// execution. A subcommand only inherits the root context while its own is
// nil, so a stale one would hide the context of a later ExecuteContext.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck // nil re-enables inheritance from the root
	for _, child := range cmd.Commands() {
		resetContexts(child)
	}
}

// copyFixture copies a testdata report into a temp dir under name.
func copyFixture(t *testing.T, fixture, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", fixture))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
