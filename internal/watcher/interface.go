package watcher

import "context"

// Watcher monitors a directory tree for new media files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly observed file. Handlers are invoked
// inline, one at a time, preserving the pipeline's sequential model.
type EventHandler func(ctx context.Context, filePath string) error
