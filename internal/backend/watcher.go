package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/option"
	"github.com/atomicstack/popup-select/internal/source"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	// KindLoading announces that a changed options file is being read.
	KindLoading Kind = iota
	// KindOptions carries a freshly parsed option list or a read error.
	KindOptions
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind    Kind
	Options []option.Option[string]
	Err     error
}

type loader func(path string, format source.Format) ([]option.Option[string], error)

// Watcher polls an options file at a fixed interval and publishes an event
// pair whenever the file changes.
type Watcher struct {
	path     string
	format   source.Format
	interval time.Duration
	load     loader

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for path. The first poll always reports.
func NewWatcher(path string, format source.Format, interval time.Duration) *Watcher {
	return newWatcher(path, format, interval, source.Load)
}

func newWatcher(path string, format source.Format, interval time.Duration, load loader) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		format:   format,
		interval: interval,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startFilePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current read
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

type fileStamp struct {
	size    int64
	modTime time.Time
	missing bool
}

func (w *Watcher) stamp() fileStamp {
	info, err := os.Stat(w.path)
	if err != nil {
		return fileStamp{missing: true}
	}
	return fileStamp{size: info.Size(), modTime: info.ModTime()}
}

func (w *Watcher) startFilePoller() {
	throttle := newThrottle(w.interval)
	var last *fileStamp
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) bool {
		current := w.stamp()
		if last != nil && *last == current {
			return true
		}
		if !throttle.wait(ctx) {
			return false
		}
		last = &current
		if !w.send(Event{Kind: KindLoading}) {
			return false
		}
		opts, err := w.load(w.path, w.format)
		if err != nil {
			events.Source.Error(w.path, err)
		} else {
			events.Source.Reload(w.path, len(opts))
		}
		return w.send(Event{Kind: KindOptions, Options: opts, Err: err})
	})
}

func (w *Watcher) send(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func (w *Watcher) poll(check func(context.Context) bool) {
	defer w.wg.Done()

	if !check(w.ctx) {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !check(w.ctx) {
				return
			}
		}
	}
}
