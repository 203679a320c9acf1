package driven

import "github.com/custodia-labs/aaltjes/internal/core/domain"

// TrendExporter renders a field trend as a spreadsheet document.
type TrendExporter interface {
	// Export returns the encoded workbook.
	Export(trend *domain.FieldTrend) ([]byte, error)

	// Extension returns the file extension of exported documents (e.g., ".xlsx").
	Extension() string
}
