package application

import (
	"sync"
	"time"

	"aliashist/internal/config"
	"aliashist/internal/ports"
)

// SettleFunc commits queued candidate names for the file at path once its
// debounce window elapses.
type SettleFunc func(path string, names []string)

// pendingEntry is one in-flight debounce window. At most one timer exists per
// entry; seq invalidates stale timer firings after a re-arm.
type pendingEntry struct {
	names []string
	timer ports.Timer
	path  string
	seq   uint64
}

// Coordinator debounces rename bursts. It keeps one pending entry per file,
// keyed by the file's most recent path, re-keying entries as the same file is
// renamed again before its window elapses.
type Coordinator struct {
	scheduler ports.Scheduler
	settle    SettleFunc

	mu      sync.Mutex
	pending map[string]*pendingEntry
	closed  bool
}

// NewCoordinator creates a coordinator that fires settle on the given
// scheduler once a file's quiet period elapses.
func NewCoordinator(scheduler ports.Scheduler, settle SettleFunc) *Coordinator {
	return &Coordinator{
		scheduler: scheduler,
		settle:    settle,
		pending:   make(map[string]*pendingEntry),
	}
}

// Enqueue records a candidate name for the file renamed from oldPath to
// newPath and (re)arms its debounce timer. An existing entry is looked up
// first under newPath, then under oldPath so a second rename of the same file
// re-keys the entry instead of duplicating it. The chain policy decides what
// the queue holds across a burst: ChainFirst collapses it to the first-ever
// queued name, ChainAll accumulates distinct names in arrival order.
func (c *Coordinator) Enqueue(oldPath, newPath, name string, delay time.Duration, policy string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	entry, ok := c.pending[newPath]
	if !ok {
		if entry, ok = c.pending[oldPath]; ok {
			delete(c.pending, oldPath)
		}
	}

	if ok {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		if policy == config.ChainAll {
			entry.names = appendDistinct(entry.names, name)
		}
		// ChainFirst: the queue already holds the earliest known name.
	} else {
		entry = &pendingEntry{names: []string{name}}
	}

	entry.path = newPath
	entry.seq++
	c.pending[newPath] = entry
	entry.timer = c.scheduler.After(delay, c.fire(entry, entry.seq))
}

// fire returns the timer callback for one arm of an entry's timer. The
// callback settles only if the entry is still current under its path with the
// same sequence, so re-keyed or cancelled arms are no-ops even if the
// underlying timer wins the race against Stop.
func (c *Coordinator) fire(entry *pendingEntry, seq uint64) func() {
	return func() {
		c.mu.Lock()
		current, ok := c.pending[entry.path]
		if !ok || current != entry || current.seq != seq || c.closed {
			c.mu.Unlock()
			return
		}
		delete(c.pending, entry.path)
		path := entry.path
		names := append([]string(nil), entry.names...)
		c.mu.Unlock()

		c.settle(path, names)
	}
}

// CancelAll stops every outstanding timer and discards all pending entries
// without settling them. Used at teardown; queued candidates are dropped.
func (c *Coordinator) CancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for path, entry := range c.pending {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		delete(c.pending, path)
	}
}

// PendingCount reports how many files currently have an unsettled window.
func (c *Coordinator) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func appendDistinct(names []string, name string) []string {
	for _, existing := range names {
		if existing == name {
			return names
		}
	}
	return append(names, name)
}
