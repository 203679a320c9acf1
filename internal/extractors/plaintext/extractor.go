// Package plaintext extracts text from plain text report files, such as
// OCR output saved next to a scan.
package plaintext

import (
	"bytes"
	"context"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extractor handles plain text files.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 5
}

// Extract returns the file content as text. Content that is not valid
// UTF-8 is decoded as Windows-1252, the usual encoding of Dutch OCR
// exports.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	content := bytes.TrimPrefix(raw.Content, utf8BOM)
	if utf8.Valid(content) {
		return string(content), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(content)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
