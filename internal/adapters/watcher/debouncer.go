// Package watcher turns file system changes into settled rebuild batches.
package watcher

import (
	"slices"
	"sync"
	"time"
)

// Debouncer coalesces bursts of changed paths. A batch becomes ready once no
// path has been added for the window; ready batches merge until taken, so no
// change is lost while a consumer is busy.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timer   *time.Timer
	pending map[string]struct{}
	settled map[string]struct{}
	ready   chan struct{}
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]struct{}),
		settled: make(map[string]struct{}),
		ready:   make(chan struct{}, 1),
	}
}

// Add records a changed path and restarts the quiet window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.settle)
}

// Ready signals when at least one settled batch is waiting in Take.
func (d *Debouncer) Ready() <-chan struct{} {
	return d.ready
}

// Take returns the settled paths in sorted order and clears them.
func (d *Debouncer) Take() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	paths := make([]string, 0, len(d.settled))
	for p := range d.settled {
		paths = append(paths, p)
	}
	clear(d.settled)
	slices.Sort(paths)
	return paths
}

// Flush settles pending paths immediately.
func (d *Debouncer) Flush() {
	d.settle()
}

// Stop cancels the quiet window. Pending paths are kept but never settle on their own.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) settle() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if len(d.pending) == 0 {
		return
	}
	for p := range d.pending {
		d.settled[p] = struct{}{}
	}
	clear(d.pending)

	select {
	case d.ready <- struct{}{}:
	default:
	}
}
