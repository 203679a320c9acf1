package driven

import (
	"context"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// Inbox delivers report files dropped into a local directory.
type Inbox interface {
	// Root returns the watched directory.
	Root() string

	// Scan streams the report files currently in the inbox.
	// Both channels are closed when the scan completes.
	Scan(ctx context.Context) (<-chan domain.RawDocument, <-chan error)

	// Watch streams files created or rewritten after the call.
	// The channel is closed when ctx is cancelled or Close is called.
	Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error)

	// Close releases resources.
	Close() error
}
