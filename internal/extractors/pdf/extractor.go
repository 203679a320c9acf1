// Package pdf extracts the text layer of PDF lab reports.
//
// The poppler pdftotext binary is used when installed and preferred;
// its raw mode keeps table rows on a single line more often. Without it
// the pure Go ledongthuc/pdf reader is used.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
	"github.com/custodia-labs/aaltjes/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

const toolName = "pdftotext"

// ErrPDFToolNotFound is returned by CheckAvailable when pdftotext is
// not on the PATH.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner runs an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor handles PDF files.
type Extractor struct {
	runner   CommandRunner
	useTool  bool
	lookPath func(string) (string, error)
}

// New creates a PDF extractor. When preferTool is set and pdftotext is
// installed it is used before the built-in reader.
func New(preferTool bool) *Extractor {
	return &Extractor{
		runner:   execRunner{},
		useTool:  preferTool,
		lookPath: exec.LookPath,
	}
}

// NewWithRunner creates a PDF extractor that runs pdftotext through
// runner.
func NewWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{
		runner:   runner,
		useTool:  true,
		lookPath: exec.LookPath,
	}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract returns the text of all pages separated by newlines.
func (e *Extractor) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	if e.useTool && e.runner != nil {
		if _, err := e.lookPath(toolName); err == nil {
			text, err := e.extractWithTool(ctx, raw.Content)
			if err == nil {
				return text, nil
			}
			logger.Warn("%s failed for %s, using built-in reader: %v", toolName, raw.URI, err)
		}
	}

	text, err := extractNative(raw.Content)
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return text, nil
}

func (e *Extractor) extractWithTool(ctx context.Context, content []byte) (string, error) {
	tmp, err := os.CreateTemp("", "aaltjes-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	out, err := e.runner.Run(ctx, toolName, "-raw", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return string(out), nil
}

// extractNative reads the text layer with ledongthuc/pdf. The reader
// panics on some malformed files; that is reported as an error.
func extractNative(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			logger.Debug("skipping pdf page %d: %v", i, err)
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// CheckAvailable reports whether pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath(toolName); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns how to install pdftotext.
func InstallInstructions() string {
	return `pdftotext is part of poppler:
  macOS:          brew install poppler
  Debian/Ubuntu:  sudo apt install poppler-utils
  Fedora:         sudo dnf install poppler-utils`
}
