// Package watcher hands new recordings in the voice-notes folder to the
// pipeline.
package watcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Start handles recordings already in the folder, then watches for new
// ones until ctx is cancelled. The handler runs on this goroutine, so items
// are processed strictly one after another.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.dir)
	w.logger.Info(ctx, "Supported formats: %v", w.filter.Extensions)

	w.processExisting(ctx)

	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.track(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// processExisting handles files already in the folder. Files modified
// within TempAge may still be recording; they go to pending so flush picks
// them up once they are old enough.
func (w *implWatcher) processExisting(ctx context.Context) {
	files, err := scan(w.dir, w.filter, w.ledger)
	if err != nil {
		w.logger.Error(ctx, "Failed to scan existing files: %v", err)
		return
	}
	if len(files) > 0 {
		w.logger.Info(ctx, "Found %d unprocessed file(s) in folder", len(files))
	}
	// Oldest first, the order they were recorded.
	for i := len(files) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			return
		}
		c := files[i]
		if w.filter.inProgress(c.modTime) {
			w.logger.Debug(ctx, "Waiting for recent file to settle: %s", c.path)
			w.pending[c.path] = time.Now()
			continue
		}
		w.handle(ctx, c.path)
	}
}

// track records write activity on an audio file so it is only handled once
// it has been quiet for the settle period.
func (w *implWatcher) track(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.filter.IsAudio(event.Name) {
		w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
		return
	}
	if w.filter.IsTempName(event.Name) {
		w.logger.Debug(ctx, "Ignoring temporary recording: %s", event.Name)
		return
	}
	if _, ok := w.handled[event.Name]; ok {
		return
	}
	if _, ok := w.pending[event.Name]; !ok {
		w.logger.Info(ctx, "New audio file detected: %s", event.Name)
	}
	w.pending[event.Name] = time.Now()
}

func (w *implWatcher) flush(ctx context.Context) {
	now := time.Now()
	for path, last := range w.pending {
		if now.Sub(last) < w.settle {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			// Renamed or deleted while recording.
			delete(w.pending, path)
			continue
		}
		if w.filter.IsTemp(path, info) {
			continue
		}
		delete(w.pending, path)
		w.handle(ctx, path)
	}
}

func (w *implWatcher) handle(ctx context.Context, path string) {
	w.handled[path] = struct{}{}

	done, err := w.ledger.Entries()
	if err == nil {
		if _, ok := done[path]; ok {
			w.logger.Debug(ctx, "Already processed: %s", path)
			return
		}
	}

	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
}
