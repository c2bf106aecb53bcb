package watcher

import (
	"context"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/ngpack/internal/adapters/fs"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// ignoredDirs are never watched.
var ignoredDirs = []string{"node_modules"}

const eventChannelBuffer = 100

// Watcher watches several directory trees with fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	walker    *fs.Walker
	events    chan ports.WatchEvent
	errors    chan error
}

// NewWatcher creates a new file system watcher. The walker enumerates the
// directories to register.
func NewWatcher(walker *fs.Walker) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return &Watcher{
		fsWatcher: w,
		walker:    walker,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		errors:    make(chan error, 1),
	}, nil
}

// Start registers every directory below the roots and starts forwarding events.
// Roots that are files are watched directly.
func (w *Watcher) Start(ctx context.Context, roots ...string) error {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
		}
		if !info.IsDir() {
			if err := w.fsWatcher.Add(root); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
			}
			continue
		}
		if err := w.addTree(root); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events. It ends when the watcher
// stops or its context is done.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// Err returns the first error reported by fsnotify, if any.
func (w *Watcher) Err() error {
	select {
	case err := <-w.errors:
		return err
	default:
		return nil
	}
}

func (w *Watcher) addTree(root string) error {
	for dir := range w.walker.WalkDirs(root, ignoredDirs) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "dir", dir)
		}
	}
	return nil
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			op, ok := convertOp(event.Op)
			if !ok {
				continue
			}

			select {
			case w.events <- ports.WatchEvent{Path: event.Name, Operation: op}:
			case <-ctx.Done():
				return
			}

			if op == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addTree(filepath.Clean(event.Name))
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- zerr.Wrap(err, domain.ErrWatchFailed.Error()):
			default:
			}
		}
	}
}

// convertOp maps an fsnotify operation to a WatchOp. Chmod-only events are dropped.
func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	default:
		return 0, false
	}
}
