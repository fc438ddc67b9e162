// Package watch turns a directory into an upload feed. New PDF files
// dropped into the watched directory are reported once they settle,
// i.e. once no further writes arrive for a quiet period, so half-copied
// files are never picked up.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/logger"
)

// DefaultSettle is the quiet period used when none is configured.
const DefaultSettle = 2 * time.Second

// Watcher reports settled PDF files appearing in one directory.
type Watcher struct {
	dir    string
	settle time.Duration

	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	closed bool
}

// New creates a watcher for dir. Files are reported settle after
// their last write; settle <= 0 falls back to DefaultSettle.
func New(dir string, settle time.Duration) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{dir: dir, settle: settle}
}

// Watch starts watching and returns a channel of settled file paths.
// The channel closes when ctx is cancelled or the watcher is closed.
// Only events after the call are reported; files already present are
// not replayed.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, fmt.Errorf("watcher closed")
	}
	if w.fsw != nil {
		return nil, fmt.Errorf("already watching %s", w.dir)
	}

	info, err := os.Stat(w.dir)
	if err != nil {
		return nil, fmt.Errorf("watch dir error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch dir error: %s is not a directory", w.dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.fsw = fsw
	out := make(chan string, 8)
	go w.loop(ctx, fsw, out)

	logger.Info("watching %s (settle %s)", w.dir, w.settle)
	return out, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

// loop owns the pending map; timers only communicate through the
// settled channel, so no locking is needed here.
func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- string) {
	defer close(out)

	pending := make(map[string]*time.Timer)
	settled := make(chan string, 8)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case path := <-settled:
			delete(pending, path)
			logger.Debug("settled: %s", path)
			select {
			case out <- path:
			case <-ctx.Done():
				return
			}

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event, pending, settled)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event, pending map[string]*time.Timer, settled chan<- string) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || !domain.IsSupportedFile(name) {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Write):
		if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
			return
		}
		// Another write restarts the quiet period.
		if t, ok := pending[event.Name]; ok {
			t.Stop()
		}
		path := event.Name
		pending[path] = time.AfterFunc(w.settle, func() {
			select {
			case settled <- path:
			case <-ctx.Done():
			}
		})

	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		if t, ok := pending[event.Name]; ok {
			t.Stop()
			delete(pending, event.Name)
		}
	}
}
