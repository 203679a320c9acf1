package domain

const unknownDescription = "Unknown"

// Default setting values.
const (
	DefaultWatchPerMinute = 30
	DefaultSheetName      = "Trend"
)

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// DataDir is the directory holding the SQLite database.
	// Empty means ~/.aaltjes/data.
	DataDir string
}

// WatchSettings holds inbox watcher configuration.
type WatchSettings struct {
	// PerMinute caps how many inbox files are imported per minute.
	PerMinute int
}

// PDFSettings holds text extraction configuration.
type PDFSettings struct {
	// PreferPDFToText uses the poppler pdftotext binary when installed.
	PreferPDFToText bool
}

// ExportSettings holds trend export configuration.
type ExportSettings struct {
	// SheetName is the worksheet name of exported workbooks.
	SheetName string
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Storage StorageSettings
	Watch   WatchSettings
	PDF     PDFSettings
	Export  ExportSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Watch: WatchSettings{
			PerMinute: DefaultWatchPerMinute,
		},
		PDF: PDFSettings{
			PreferPDFToText: true,
		},
		Export: ExportSettings{
			SheetName: DefaultSheetName,
		},
	}
}
