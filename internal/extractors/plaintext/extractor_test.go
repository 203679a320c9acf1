package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.IsType(t, &Extractor{}, extractor)
}

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{"text/plain"}, New().SupportedMIMETypes())
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 5, New().Priority())
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected string
	}{
		{"utf-8", []byte("Monsternummer: 2004537\nPerceel: Barlage 4"), "Monsternummer: 2004537\nPerceel: Barlage 4"},
		{"byte order mark", append([]byte{0xEF, 0xBB, 0xBF}, "HLB"...), "HLB"},
		{"windows-1252", []byte("27 f\xe9vrier"), "27 février"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := New().Extract(context.Background(), &domain.RawDocument{
				URI:      "/inbox/rapport.txt",
				MIMEType: "text/plain",
				Content:  tt.content,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestExtract_NilDocument(t *testing.T) {
	_, err := New().Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.TextExtractor = (*Extractor)(nil)
}
