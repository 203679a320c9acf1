// Package inbox delivers report files dropped into a local directory.
//
// Existing files are streamed by Scan; files created or rewritten later
// are streamed by Watch using fsnotify. Hidden files and directories are
// skipped, as are files whose extension maps to an unsupported MIME type.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
	"github.com/custodia-labs/aaltjes/internal/extractors"
	"github.com/custodia-labs/aaltjes/internal/logger"
)

// Ensure Inbox implements the interface.
var _ driven.Inbox = (*Inbox)(nil)

// DefaultDebounce is how long a file must be quiet before a change is
// delivered. Copying a PDF emits several write events.
const DefaultDebounce = 500 * time.Millisecond

var defaultMIMETypes = []string{"application/pdf", "text/plain"}

// Inbox watches a directory tree for report files.
type Inbox struct {
	rootPath  string
	mimeTypes map[string]struct{}
	debounce  time.Duration

	mu       sync.Mutex
	watchers []*fsnotify.Watcher
	closed   bool
}

// New creates an inbox for rootPath accepting the given MIME types,
// or PDF and plain text when none are given.
func New(rootPath string, mimeTypes ...string) *Inbox {
	if len(mimeTypes) == 0 {
		mimeTypes = defaultMIMETypes
	}
	set := make(map[string]struct{}, len(mimeTypes))
	for _, t := range mimeTypes {
		set[t] = struct{}{}
	}
	return &Inbox{
		rootPath:  rootPath,
		mimeTypes: set,
		debounce:  DefaultDebounce,
	}
}

// Root returns the watched directory.
func (i *Inbox) Root() string {
	return i.rootPath
}

// Scan streams the report files currently in the inbox, in lexical
// order. Unreadable files are reported on the error channel.
func (i *Inbox) Scan(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		err := filepath.WalkDir(i.rootPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == i.rootPath {
					return err
				}
				i.report(ctx, errs, fmt.Errorf("walk %s: %w", path, err))
				return nil
			}
			if path != i.rootPath && isHidden(path) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !i.accepts(path) {
				return nil
			}

			doc, err := i.readDocument(path)
			if err != nil {
				i.report(ctx, errs, err)
				return nil
			}

			select {
			case docs <- *doc:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			i.report(ctx, errs, fmt.Errorf("root path error: %w", err))
		}
	}()

	return docs, errs
}

// Watch streams changes below the root until ctx is cancelled or Close
// is called. Changes to the same file within the debounce window are
// merged into one.
func (i *Inbox) Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error) {
	info, err := os.Stat(i.rootPath)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", i.rootPath)
	}

	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return nil, errors.New("inbox closed")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		i.mu.Unlock()
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	i.watchers = append(i.watchers, watcher)
	i.mu.Unlock()

	if err := i.addTree(watcher, i.rootPath); err != nil {
		watcher.Close()
		return nil, err
	}

	changes := make(chan domain.RawDocumentChange)
	go i.loop(ctx, watcher, changes)
	return changes, nil
}

func (i *Inbox) loop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- domain.RawDocumentChange) {
	defer close(changes)
	defer watcher.Close()

	pending := make(map[string]fsnotify.Event)
	var order []string
	timer := time.NewTimer(i.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) && !isHidden(event.Name) {
				if err := i.addTree(watcher, event.Name); err != nil {
					logger.Warn("watch %s: %v", event.Name, err)
				}
				continue
			}
			if isHidden(event.Name) || !i.accepts(event.Name) {
				continue
			}
			prev, seen := pending[event.Name]
			if !seen {
				order = append(order, event.Name)
			}
			event.Op |= prev.Op
			pending[event.Name] = event
			timer.Reset(i.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("inbox watcher: %v", err)

		case <-timer.C:
			for _, name := range order {
				change := i.handleFsEvent(pending[name])
				if change == nil {
					continue
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			}
			pending = make(map[string]fsnotify.Event)
			order = nil
		}
	}
}

// handleFsEvent converts an event into a change, or nil when it is not
// relevant. The file's current state decides between created, updated
// and deleted.
func (i *Inbox) handleFsEvent(event fsnotify.Event) *domain.RawDocumentChange {
	if isHidden(event.Name) || !i.accepts(event.Name) {
		return nil
	}

	doc, err := i.readDocument(event.Name)
	if err != nil {
		if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
			return &domain.RawDocumentChange{
				Type:     domain.ChangeDeleted,
				Document: domain.RawDocument{URI: event.Name, MIMEType: detectMIMEType(event.Name)},
			}
		}
		return nil
	}

	switch {
	case event.Has(fsnotify.Create):
		return &domain.RawDocumentChange{Type: domain.ChangeCreated, Document: *doc}
	case event.Has(fsnotify.Write):
		return &domain.RawDocumentChange{Type: domain.ChangeUpdated, Document: *doc}
	default:
		return nil
	}
}

// Close stops all watches. It is safe to call more than once.
func (i *Inbox) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return nil
	}
	i.closed = true

	var errs []error
	for _, w := range i.watchers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	i.watchers = nil
	return errors.Join(errs...)
}

// addTree watches dir and its non-hidden subdirectories.
func (i *Inbox) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != i.rootPath && isHidden(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (i *Inbox) readDocument(path string) (*domain.RawDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &domain.RawDocument{
		URI:      path,
		MIMEType: detectMIMEType(path),
		Content:  content,
		Metadata: map[string]any{
			"filename": filepath.Base(path),
			"size":     info.Size(),
			"modified": info.ModTime(),
		},
	}, nil
}

func (i *Inbox) accepts(path string) bool {
	_, ok := i.mimeTypes[detectMIMEType(path)]
	return ok
}

func (i *Inbox) report(ctx context.Context, errs chan<- error, err error) {
	select {
	case errs <- err:
	case <-ctx.Done():
	}
}

// detectMIMEType maps a file extension to a MIME type.
func detectMIMEType(path string) string {
	return extractors.DetectMIMEType(path)
}

// isHidden reports whether the base name starts with a dot.
func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
