package extractors

import (
	"context"
	"mime"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry holds extractors ordered by priority, highest first.
type Registry struct {
	mu         sync.RWMutex
	extractors []driven.TextExtractor
}

// NewRegistry creates a registry with the given extractors.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	r := &Registry{}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor. Extractors of equal priority keep their
// registration order.
func (r *Registry) Register(extractor driven.TextExtractor) {
	if extractor == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors = append(r.extractors, extractor)
	sort.SliceStable(r.extractors, func(i, j int) bool {
		return r.extractors[i].Priority() > r.extractors[j].Priority()
	})
}

// Extract converts raw with the highest priority extractor supporting
// its MIME type.
func (r *Registry) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	mimeType := baseMIMEType(raw.MIMEType)

	r.mu.RLock()
	var selected driven.TextExtractor
	for _, e := range r.extractors {
		if supports(e, mimeType) {
			selected = e
			break
		}
	}
	r.mu.RUnlock()

	if selected == nil {
		return "", domain.ErrUnsupportedType
	}
	return selected.Extract(ctx, raw)
}

// SupportedMIMETypes returns the sorted union of all registered types.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, e := range r.extractors {
		for _, t := range e.SupportedMIMETypes() {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

// DetectMIMEType returns the MIME type of a report file from its
// extension, or application/octet-stream when unknown.
func DetectMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".txt", ".text":
		return "text/plain"
	}
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return baseMIMEType(t)
	}
	return "application/octet-stream"
}

func supports(e driven.TextExtractor, mimeType string) bool {
	for _, t := range e.SupportedMIMETypes() {
		if t == mimeType {
			return true
		}
	}
	return false
}

// baseMIMEType strips parameters such as charset.
func baseMIMEType(t string) string {
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.ToLower(strings.TrimSpace(t))
}
