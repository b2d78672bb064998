package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jnxjent/gijiro3/internal/logger"
)

type implWatcher struct {
	jobsDir       string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start first sweeps work items already sitting in the jobs directory,
// then blocks monitoring it for new ones until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Job watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.jobsDir)

	if err := w.sweepExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight jobs to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Job watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if isWorkItem(event.Name) {
					w.logger.Info(ctx, "New work item detected: %s", event.Name)

					// Small delay to ensure the file is fully written.
					time.Sleep(500 * time.Millisecond)

					if err := w.dispatch(ctx, event.Name); err != nil {
						return err
					}
				} else {
					w.logger.Debug(ctx, "Ignoring non-work-item file: %s", event.Name)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// sweepExisting dispatches work items dropped while the service was
// down, so a restart never strands queued jobs.
func (w *implWatcher) sweepExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.jobsDir)
	if err != nil {
		return fmt.Errorf("read jobs dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isWorkItem(entry.Name()) {
			continue
		}
		path := filepath.Join(w.jobsDir, entry.Name())
		w.logger.Info(ctx, "Queued work item found at startup: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return err
		}
	}

	return nil
}

// dispatch runs the handler in a goroutine, blocking while all
// concurrency slots are taken.
func (w *implWatcher) dispatch(ctx context.Context, filePath string) error {
	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer func() { <-w.semaphore }()

			if err := w.handler(ctx, filePath); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
			}
		}()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isWorkItem(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}
