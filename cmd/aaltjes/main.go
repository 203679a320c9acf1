// Command aaltjes parses HLB nematode lab reports and tracks their counts
// per field.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/aaltjes/internal/adapters/driven/config/file"
	"github.com/custodia-labs/aaltjes/internal/adapters/driven/export/xlsx"
	"github.com/custodia-labs/aaltjes/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/aaltjes/internal/adapters/driven/validation"
	"github.com/custodia-labs/aaltjes/internal/adapters/driving/cli"
	"github.com/custodia-labs/aaltjes/internal/connectors/inbox"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
	"github.com/custodia-labs/aaltjes/internal/core/services"
	"github.com/custodia-labs/aaltjes/internal/extractors"
	"github.com/custodia-labs/aaltjes/internal/extractors/pdf"
	"github.com/custodia-labs/aaltjes/internal/extractors/plaintext"
	"github.com/custodia-labs/aaltjes/internal/logger"
	"github.com/custodia-labs/aaltjes/internal/parsers/hlb"
)

// version is set at build time via -ldflags "-X main.version=...".
var version string

func main() {
	os.Exit(run())
}

// run wires the adapters and executes the CLI. Command errors are
// printed by cobra.
func run() int {
	closeStore, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer closeStore()

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

// setup wires the services into the CLI. The returned func closes the
// database.
func setup() (func(), error) {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing database: %v", err)
		}
	}

	validator, err := validation.New()
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("failed to load extraction schema: %w", err)
	}

	registry := extractors.NewRegistry(
		pdf.New(settings.PDF.PreferPDFToText),
		plaintext.New(),
	)

	reportService := services.NewReportService(
		hlb.New(), registry, store.ReportStore(), store.FieldStore(), validator)
	perMinute := settings.Watch.PerMinute

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Report:   reportService,
		Field:    services.NewFieldService(store.FieldStore(), store.ReportStore(), xlsx.New(settings.Export.SheetName)),
		Seed:     services.NewSeedService(store.FieldStore(), store.ReportStore()),
		Settings: settingsService,
		NewInbox: func(dir string) driving.InboxService {
			return services.NewInboxService(inbox.New(dir), reportService, perMinute)
		},
		ConfigPath: configStore.Path(),
	})
	return closeStore, nil
}
