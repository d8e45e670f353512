package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Next after Close.
var ErrWatcherClosed = errors.New("config watcher closed")

// Watcher reports changes to configuration files. It watches the parent
// directories so editors that replace files on save are still noticed.
type Watcher struct {
	w     *fsnotify.Watcher
	files map[string]bool
}

// NewWatcher watches paths, typically Config.Sources.
func NewWatcher(paths []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	cw := &Watcher{w: w, files: make(map[string]bool)}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		cw.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return cw, nil
}

// Next blocks until a watched file is written, created or renamed into
// place and returns its path. It returns ctx.Err() when ctx is done and
// ErrWatcherClosed once the watcher is closed.
func (cw *Watcher) Next(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev, ok := <-cw.w.Events:
			if !ok {
				return "", ErrWatcherClosed
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if path := filepath.Clean(ev.Name); cw.files[path] {
				return path, nil
			}
		case err, ok := <-cw.w.Errors:
			if !ok {
				return "", ErrWatcherClosed
			}
			return "", err
		}
	}
}

// Close stops watching.
func (cw *Watcher) Close() error {
	return cw.w.Close()
}
