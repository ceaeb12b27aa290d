// Package watcher reports changes to the store file made by other processes.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/runoshun/goals/internal/domain"
)

// ErrWatcherFailed indicates the filesystem watcher failed to initialize.
var ErrWatcherFailed = errors.New("failed to initialize filesystem watcher")

// DefaultDebounce coalesces the bursts of events a single save produces
// (temp file write, rename).
const DefaultDebounce = 150 * time.Millisecond

// Watcher watches one file and emits a signal after it changes.
// The parent directory is watched so atomic renames are seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	changes  chan struct{}
	stop     chan struct{}
	logger   domain.Logger
	path     string
	debounce time.Duration
	stopOnce sync.Once
}

// New creates a Watcher for path.
func New(path string, logger domain.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Watcher{
		watcher:  fw,
		changes:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
		logger:   logger,
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce changes the quiet period before a change is reported.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins watching in a background goroutine.
// The parent directory is created if missing. Call Stop to clean up resources.
func (w *Watcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o750); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(w.path), err)
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		_ = w.watcher.Close()
	})
}

// Changes returns the channel signalled after the file changes.
// Signals are coalesced: at most one is pending at a time.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *Watcher) processEvents(ctx context.Context) {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			w.notify()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("", "watcher", err.Error())
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
