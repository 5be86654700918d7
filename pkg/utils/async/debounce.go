package async

import (
	"context"
	"sync"
	"time"
)

// Debouncer runs a function once a burst of triggers has settled. Every
// Trigger restarts the delay; only the last one in a burst fires.
type Debouncer struct {
	delay time.Duration
	fn    func(ctx context.Context)

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	stopped bool
}

// NewDebouncer creates a trailing debouncer
func NewDebouncer(delay time.Duration, fn func(ctx context.Context)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn to run after the delay, cancelling a pending run
func (d *Debouncer) Trigger(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	bgCtx := newBackgroundContext(ctx)

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A Trigger that raced with the timer firing owns the next run
		if d.stopped || seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		defer recoverPanic(bgCtx)
		d.fn(bgCtx)
	})
}

// Pending reports whether a run is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels a pending run and ignores later triggers
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
