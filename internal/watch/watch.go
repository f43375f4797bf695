// Package watch reports changes to the keystroke log made by anyone,
// including other processes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event represents a change to the watched file.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Removed reports whether the file is gone after this event.
func (e Event) Removed() bool {
	return e.Op.Has(fsnotify.Remove) || e.Op.Has(fsnotify.Rename)
}

// Watcher monitors a single file through its parent directory, so the file
// may be created and deleted any number of times while it is watched.
type Watcher struct {
	fsw    *fsnotify.Watcher
	target string
	logger *slog.Logger
	Events chan Event
}

// New creates a Watcher for path. The parent directory must exist.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		fsw:    fsw,
		target: abs,
		logger: logger,
		Events: make(chan Event, 64),
	}, nil
}

// Start forwards create, write, remove and rename events for the target
// file. It blocks until ctx is cancelled, then closes Events.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer close(w.Events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.Events <- Event{Path: ev.Name, Op: ev.Op}:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("log watcher error", "error", err)
		}
	}
}
