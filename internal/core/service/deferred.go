package service

import (
	"sync"
	"time"
)

type deferredState int

const (
	deferredPending deferredState = iota
	deferredFired
	deferredCancelled
)

// Deferred is a callback scheduled to run once after a delay. It can be
// cancelled up to the moment it starts running.
type Deferred struct {
	mu    sync.Mutex
	state deferredState
	timer *time.Timer
	done  chan struct{}
}

// Defer schedules fn to run after delay.
func Defer(delay time.Duration, fn func()) *Deferred {
	d := &Deferred{done: make(chan struct{})}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		if d.state != deferredPending {
			d.mu.Unlock()
			return
		}
		d.state = deferredFired
		d.mu.Unlock()

		defer close(d.done)
		fn()
	})
	return d
}

// Cancel prevents the callback from running. It returns false if the
// callback already started or the Deferred was already cancelled.
func (d *Deferred) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != deferredPending {
		return false
	}
	d.state = deferredCancelled
	d.timer.Stop()
	close(d.done)
	return true
}

// Done is closed once the callback has returned or the Deferred was
// cancelled.
func (d *Deferred) Done() <-chan struct{} { return d.done }

// Fired reports whether the callback ran (or is running).
func (d *Deferred) Fired() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == deferredFired
}
