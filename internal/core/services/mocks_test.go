package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// stubRegistry returns canned text or an error for every document.
type stubRegistry struct {
	text string
	err  error
}

func (r *stubRegistry) Extract(_ context.Context, _ *domain.RawDocument) (string, error) {
	return r.text, r.err
}

func (r *stubRegistry) Register(driven.TextExtractor) {}

func (r *stubRegistry) SupportedMIMETypes() []string { return []string{"text/plain"} }

// contentRegistry returns the document bytes as text.
type contentRegistry struct{}

func (contentRegistry) Extract(_ context.Context, raw *domain.RawDocument) (string, error) {
	if raw.MIMEType != "text/plain" {
		return "", domain.ErrUnsupportedType
	}
	return string(raw.Content), nil
}

func (contentRegistry) Register(driven.TextExtractor) {}

func (contentRegistry) SupportedMIMETypes() []string { return []string{"text/plain"} }

// stubValidator rejects every extraction when err is set.
type stubValidator struct {
	err   error
	calls int
}

func (v *stubValidator) Validate(_ *domain.ParsedDocument) error {
	v.calls++
	return v.err
}

// stubExporter records the trend it was asked to export.
type stubExporter struct {
	trend *domain.FieldTrend
	err   error
}

func (e *stubExporter) Export(trend *domain.FieldTrend) ([]byte, error) {
	e.trend = trend
	if e.err != nil {
		return nil, e.err
	}
	return []byte("xlsx"), nil
}

func (e *stubExporter) Extension() string { return ".xlsx" }

// failingFieldStore fails every lookup.
type failingFieldStore struct {
	driven.FieldStore
}

var errStoreDown = errors.New("store down")

func (failingFieldStore) FindFieldByName(context.Context, string) (*domain.Field, error) {
	return nil, errStoreDown
}

// chanInbox is a driven.Inbox fed by the test.
type chanInbox struct {
	mu       sync.Mutex
	existing []domain.RawDocument
	changes  chan domain.RawDocumentChange
	watchErr error
	closed   bool
}

func newChanInbox(existing ...domain.RawDocument) *chanInbox {
	return &chanInbox{
		existing: existing,
		changes:  make(chan domain.RawDocumentChange, 16),
	}
}

func (i *chanInbox) Root() string { return "/inbox" }

func (i *chanInbox) Scan(_ context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument, len(i.existing))
	errs := make(chan error)
	for _, d := range i.existing {
		docs <- d
	}
	close(docs)
	close(errs)
	return docs, errs
}

func (i *chanInbox) Watch(_ context.Context) (<-chan domain.RawDocumentChange, error) {
	if i.watchErr != nil {
		return nil, i.watchErr
	}
	return i.changes, nil
}

func (i *chanInbox) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.closed {
		i.closed = true
		close(i.changes)
	}
	return nil
}
