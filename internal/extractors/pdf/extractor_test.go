package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	output []byte
	err    error
	name   string
	args   []string
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.name = name
	m.args = args
	return m.output, m.err
}

func found(string) (string, error)   { return "/usr/bin/pdftotext", nil }
func missing(string) (string, error) { return "", errors.New("not found") }

// minimalPDF builds a one page PDF showing each line with Helvetica.
func minimalPDF(lines ...string) []byte {
	var stream bytes.Buffer
	stream.WriteString("BT /F1 12 Tf 72 720 Td 14 TL\n")
	for _, line := range lines {
		fmt.Fprintf(&stream, "(%s) Tj T*\n", line)
	}
	stream.WriteString("ET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", stream.Len(), stream.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	extractor := New(true)
	require.NotNil(t, extractor)
	assert.True(t, extractor.useTool)
	assert.False(t, New(false).useTool)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New(false).SupportedMIMETypes()
	assert.Equal(t, []string{"application/pdf"}, mimeTypes)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New(false).Priority())
}

func TestExtract_NilDocument(t *testing.T) {
	_, err := New(false).Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_Native(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/inbox/2004537.pdf",
		MIMEType: "application/pdf",
		Content:  minimalPDF("Monsternummer: 2004537", "Perceel: Barlage 4"),
	}

	text, err := New(false).Extract(context.Background(), raw)

	require.NoError(t, err)
	assert.Contains(t, text, "Monsternummer: 2004537")
	assert.Contains(t, text, "Perceel: Barlage 4")
}

func TestExtract_NotAPDF(t *testing.T) {
	raw := &domain.RawDocument{URI: "/inbox/fake.pdf", Content: []byte("this is not a pdf")}

	_, err := New(false).Extract(context.Background(), raw)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract pdf text")
}

func TestNewWithRunner(t *testing.T) {
	runner := &mockRunner{output: []byte("test output")}
	extractor := NewWithRunner(runner)
	require.NotNil(t, extractor)
	assert.Equal(t, runner, extractor.runner)
	assert.True(t, extractor.useTool)
}

func TestExtract_WithMockRunner(t *testing.T) {
	runner := &mockRunner{output: []byte("HLB\nMonsternummer: 2004537\n")}
	extractor := NewWithRunner(runner)
	extractor.lookPath = found

	text, err := extractor.Extract(context.Background(), &domain.RawDocument{
		URI:     "/inbox/2004537.pdf",
		Content: []byte("%PDF-1.4 fake pdf content"),
	})

	require.NoError(t, err)
	assert.Equal(t, "HLB\nMonsternummer: 2004537\n", text)
	assert.Equal(t, "pdftotext", runner.name)
	require.Len(t, runner.args, 5)
	assert.Equal(t, []string{"-raw", "-enc", "UTF-8"}, runner.args[:3])
	assert.Equal(t, "-", runner.args[4])
}

func TestExtract_RunnerErrorFallsBack(t *testing.T) {
	runner := &mockRunner{err: errors.New("pdftotext crashed")}
	extractor := NewWithRunner(runner)
	extractor.lookPath = found

	text, err := extractor.Extract(context.Background(), &domain.RawDocument{
		URI:     "/inbox/2004537.pdf",
		Content: minimalPDF("Datum verslag: 27 maart 2020"),
	})

	require.NoError(t, err)
	assert.Contains(t, text, "Datum verslag: 27 maart 2020")
}

func TestExtract_ToolMissingUsesNative(t *testing.T) {
	runner := &mockRunner{output: []byte("unused")}
	extractor := NewWithRunner(runner)
	extractor.lookPath = missing

	text, err := extractor.Extract(context.Background(), &domain.RawDocument{Content: minimalPDF("HLB")})

	require.NoError(t, err)
	assert.Contains(t, text, "HLB")
	assert.Empty(t, runner.name)
}

func TestErrPDFToolNotFound(t *testing.T) {
	assert.Error(t, ErrPDFToolNotFound)
	assert.Contains(t, ErrPDFToolNotFound.Error(), "pdftotext")
}

func TestCheckAvailable(t *testing.T) {
	err := CheckAvailable()
	if err != nil {
		assert.ErrorIs(t, err, ErrPDFToolNotFound)
	}
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	assert.Contains(t, instructions, "pdftotext")
	assert.Contains(t, instructions, "brew install poppler")
	assert.Contains(t, instructions, "apt install poppler-utils")
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.TextExtractor = (*Extractor)(nil)
}
