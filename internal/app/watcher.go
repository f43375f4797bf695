package app

import (
	"context"
	"log/slog"

	"github.com/five82/keylog/internal/watch"
)

// StartWatcher launches a background goroutine that reports changes to the
// log file until ctx is cancelled. It returns immediately. When the watcher
// cannot be created it logs a warning and returns nil, and the UI runs
// without live updates.
func StartWatcher(ctx context.Context, path string, logger *slog.Logger) <-chan watch.Event {
	w, err := watch.New(path, logger)
	if err != nil {
		logger.Warn("log watcher disabled", "path", path, "error", err)
		return nil
	}
	go w.Start(ctx)
	return w.Events
}
