package watcher

import "context"

// Watcher defines the interface for job-directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles one work-item file
type EventHandler func(ctx context.Context, filePath string) error
