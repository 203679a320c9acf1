package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir         = "storage.data_dir"
	keyWatchPerMinute  = "watch.per_minute"
	keyPreferPDFToText = "pdf.prefer_pdftotext"
	keySheetName       = "export.sheet_name"
)

// maxSheetNameLength is the spreadsheet limit on worksheet names.
const maxSheetNameLength = 31

var settingKeys = []string{keyDataDir, keyWatchPerMinute, keyPreferPDFToText, keySheetName}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings. Unset keys take their
// default values.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyDataDir),
		},
		Watch: domain.WatchSettings{
			PerMinute: s.getInt(keyWatchPerMinute, defaults.Watch.PerMinute),
		},
		PDF: domain.PDFSettings{
			PreferPDFToText: s.getBool(keyPreferPDFToText, defaults.PDF.PreferPDFToText),
		},
		Export: domain.ExportSettings{
			SheetName: s.getString(keySheetName, defaults.Export.SheetName),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := s.configStore.Set(keyDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save data_dir: %w", err)
	}
	if err := s.configStore.Set(keyWatchPerMinute, settings.Watch.PerMinute); err != nil {
		return fmt.Errorf("save watch per_minute: %w", err)
	}
	if err := s.configStore.Set(keyPreferPDFToText, settings.PDF.PreferPDFToText); err != nil {
		return fmt.Errorf("save prefer_pdftotext: %w", err)
	}
	if err := s.configStore.Set(keySheetName, settings.Export.SheetName); err != nil {
		return fmt.Errorf("save sheet_name: %w", err)
	}
	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyDataDir:
		settings.Storage.DataDir = value
	case keyWatchPerMinute:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, domain.ErrInvalidInput)
		}
		settings.Watch.PerMinute = n
	case keyPreferPDFToText:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, domain.ErrInvalidInput)
		}
		settings.PDF.PreferPDFToText = b
	case keySheetName:
		settings.Export.SheetName = value
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	return s.Save(settings)
}

// Value returns the effective value of a setting in its string form.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case keyDataDir:
		return settings.Storage.DataDir, nil
	case keyWatchPerMinute:
		return strconv.Itoa(settings.Watch.PerMinute), nil
	case keyPreferPDFToText:
		return strconv.FormatBool(settings.PDF.PreferPDFToText), nil
	case keySheetName:
		return settings.Export.SheetName, nil
	default:
		return "", fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// Keys returns the supported config keys in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validateSettings(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func validateSettings(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if settings.Watch.PerMinute < 1 {
		return fmt.Errorf("%s must be at least 1: %w", keyWatchPerMinute, domain.ErrInvalidInput)
	}
	name := settings.Export.SheetName
	if name == "" || len([]rune(name)) > maxSheetNameLength || strings.ContainsAny(name, `:\/?*[]`) {
		return fmt.Errorf("%s must be 1-%d characters without :\\/?*[]: %w",
			keySheetName, maxSheetNameLength, domain.ErrInvalidInput)
	}
	return nil
}

// getString returns a string config value or the default if not set.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getInt returns an int config value or the default if not set.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val != 0 {
		return val
	}
	return defaultVal
}

// getBool returns a bool config value or the default if not set.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
