// Package cli implements the aaltjes command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
	"github.com/custodia-labs/aaltjes/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the driving ports the commands operate on.
type Services struct {
	Report   driving.ReportService
	Field    driving.FieldService
	Seed     driving.SeedService
	Settings driving.SettingsService

	// NewInbox creates an importer watching dir.
	NewInbox func(dir string) driving.InboxService

	// ConfigPath is the location of the config file.
	ConfigPath string
}

var (
	reportService   driving.ReportService
	fieldService    driving.FieldService
	seedService     driving.SeedService
	settingsService driving.SettingsService
	newInbox        func(dir string) driving.InboxService
	configPath      string
)

// verbose is the global --verbose flag.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "aaltjes",
	Short: "Nematode lab report extraction",
	Long: `aaltjes reads HLB nematode analysis reports (PDF or text), extracts the
sample and its counts per 100 gram of soil, and tracks the results per field
over time.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log the parse and import pipeline")
}

// SetServices sets the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	reportService = s.Report
	fieldService = s.Field
	seedService = s.Seed
	settingsService = s.Settings
	newInbox = s.NewInbox
	configPath = s.ConfigPath
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
