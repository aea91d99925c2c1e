package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/emforge/internal/core/ports"
)

// skipDirectories are directory names that never trigger rebuilds.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	".hg":          true,
	".emforge":     true,
	"node_modules": true,
}

// cmakeBuildPrefix matches the out-of-source build trees emforge creates;
// watching them would retrigger builds from their own output.
const cmakeBuildPrefix = "cmake-build-"

const (
	batchChannelBuffer = 4
	debounceWindow     = 300 * time.Millisecond
)

// Watcher implements ports.Watcher using fsnotify with debounced batches.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	batches   chan []string
	debouncer *Debouncer
	done      chan struct{}
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(domain.ErrWatchFailed, err)
	}

	w := &Watcher{
		fsWatcher: fsw,
		batches:   make(chan []string, batchChannelBuffer),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(debounceWindow, func(paths []string) {
		// done unblocks a delivery racing shutdown; batches is only
		// closed after the debouncer is stopped.
		select {
		case w.batches <- paths:
		case <-w.done:
		}
	})
	return w, nil
}

// Start begins watching root recursively and returns the batch channel.
func (w *Watcher) Start(ctx context.Context, root string) (<-chan []string, error) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped rather than fatal.
			return nil //nolint:nilerr // intentional
		}
		if !d.IsDir() {
			return nil
		}
		if shouldSkip(d.Name()) {
			return fs.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
	if err != nil {
		return nil, errors.Join(domain.ErrWatchFailed, err)
	}

	go w.processEvents(ctx)
	return w.batches, nil
}

// Stop releases watcher resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	// Shutdown order matters: unblock any in-flight delivery, quiesce the
	// debouncer so an armed window can no longer fire, then close.
	defer func() {
		close(w.done)
		w.debouncer.Stop()
		close(w.batches)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Individual watch errors are non-fatal; the next event
			// batch still triggers a rebuild.
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if shouldSkip(filepath.Base(event.Name)) || shouldSkipPath(event.Name) {
		return
	}

	// New directories must be added to the watch set to stay recursive.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.fsWatcher.Add(event.Name)
		}
	}

	if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		w.debouncer.Add(event.Name)
	}
}

func shouldSkip(name string) bool {
	return skipDirectories[name] || strings.HasPrefix(name, cmakeBuildPrefix)
}

func shouldSkipPath(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if shouldSkip(part) {
			return true
		}
	}
	return false
}

var _ ports.Watcher = (*Watcher)(nil)
