package ports

import "context"

// Watcher observes a directory tree and reports batches of changed paths.
type Watcher interface {
	// Start begins watching root recursively. Events are debounced and
	// delivered as coalesced batches on the returned channel until ctx is
	// cancelled or Stop is called.
	Start(ctx context.Context, root string) (<-chan []string, error)

	// Stop releases watcher resources and closes the event channel.
	Stop() error
}
