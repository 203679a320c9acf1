package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
	"github.com/custodia-labs/aaltjes/internal/logger"
)

// Ensure InboxService implements the interface.
var _ driving.InboxService = (*InboxService)(nil)

// InboxService imports every report file that appears in an inbox.
// Imports are throttled to a fixed number per minute, and a file is
// imported again only when its content changed.
type InboxService struct {
	inbox   driven.Inbox
	reports driving.ReportService
	limiter *rate.Limiter

	imported map[string][sha256.Size]byte
}

// NewInboxService creates a new inbox service importing at most
// perMinute files per minute.
func NewInboxService(inbox driven.Inbox, reports driving.ReportService, perMinute int) *InboxService {
	if perMinute < 1 {
		perMinute = domain.DefaultWatchPerMinute
	}
	return &InboxService{
		inbox:    inbox,
		reports:  reports,
		limiter:  rate.NewLimiter(rate.Limit(float64(perMinute)/60), 1),
		imported: make(map[string][sha256.Size]byte),
	}
}

// Run imports existing files, then watches for new ones until ctx is
// cancelled. The watch is started before the scan so no file created
// in between is missed.
//
//nolint:gocognit // Orchestration over two event streams
func (s *InboxService) Run(ctx context.Context, onImport func(driving.ImportEvent)) error {
	if s.inbox == nil || s.reports == nil {
		return domain.ErrNotImplemented
	}
	if onImport == nil {
		onImport = func(driving.ImportEvent) {}
	}

	changes, err := s.inbox.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch %s: %w", s.inbox.Root(), err)
	}

	logger.Info("scanning inbox %s", s.inbox.Root())
	docs, errs := s.inbox.Scan(ctx)
	for docs != nil || errs != nil {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("inbox scan: %v", err)
		case doc, ok := <-docs:
			if !ok {
				docs = nil
				continue
			}
			if err := s.importOne(ctx, doc, onImport); err != nil {
				return nil
			}
		}
	}

	logger.Info("watching inbox %s", s.inbox.Root())
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if change.Type == domain.ChangeDeleted {
				delete(s.imported, change.Document.URI)
				continue
			}
			if err := s.importOne(ctx, change.Document, onImport); err != nil {
				return nil
			}
		}
	}
}

// importOne parses and saves doc. It returns an error only when ctx
// was cancelled while waiting for the rate limiter.
func (s *InboxService) importOne(ctx context.Context, doc domain.RawDocument, onImport func(driving.ImportEvent)) error {
	log := logger.With("path", doc.URI)
	sum := sha256.Sum256(doc.Content)
	if prev, ok := s.imported[doc.URI]; ok && prev == sum {
		log.Debug("skipping unchanged file")
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	event := driving.ImportEvent{Path: doc.URI}
	parsed, err := s.reports.Parse(ctx, &doc)
	if err != nil {
		event.Err = err
		if errors.Is(err, domain.ErrUnsupportedType) {
			log.Debug("ignoring unsupported file", "err", err)
			return nil
		}
		logger.Error("import %s failed: %v", doc.URI, err)
		onImport(event)
		return nil
	}

	saved, err := s.reports.Save(ctx, driving.SaveRequest{
		OriginalFilename: parsed.OriginalFilename,
		Text:             parsed.Text,
		Document:         parsed.Document,
	})
	if err != nil {
		logger.Error("saving %s failed: %v", doc.URI, err)
		event.Err = err
		onImport(event)
		return nil
	}

	s.imported[doc.URI] = sum
	event.Result = saved
	event.Warnings = parsed.Document.Warnings
	onImport(event)
	return nil
}
