package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"vidscribe/internal/logger"
)

// New creates a Watcher over dir that hands files matching exts to handler.
func New(dir string, exts []string, handler EventHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		dir:     dir,
		exts:    exts,
		handler: handler,
		logger:  log,
		watcher: fsw,
	}, nil
}
