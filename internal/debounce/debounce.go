// Package debounce coalesces bursts of triggers into a single task that runs
// after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used for search input.
const DefaultDelay = 500 * time.Millisecond

// Timer is a scheduled task that can be cancelled.
type Timer interface {
	// Stop cancels the task. It reports false if the task already ran.
	Stop() bool
}

// Scheduler runs f once after d elapses.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler is backed by time.AfterFunc.
var RealScheduler Scheduler = realScheduler{}

// Debouncer holds at most one pending task. Every Trigger cancels the
// pending task and schedules a new one.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	scheduler Scheduler
	timer     Timer
	task      func()
	gen       uint64
}

// NewWithScheduler returns a Debouncer on s. A zero delay means DefaultDelay
// and a nil s means RealScheduler.
func NewWithScheduler(delay time.Duration, s Scheduler) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if s == nil {
		s = RealScheduler
	}
	return &Debouncer{
		delay:     delay,
		scheduler: s,
	}
}

// Trigger cancels any pending task and schedules fn after the quiet period.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.task = fn
	d.timer = d.scheduler.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// fire runs the task only if no later Trigger or Cancel superseded it.
// Stop on a timer that already fired cannot retract it, so the generation
// check is what guarantees a single run.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.task == nil {
		d.mu.Unlock()
		return
	}
	task := d.task
	d.task = nil
	d.timer = nil
	d.mu.Unlock()

	task()
}

// Cancel drops the pending task. It reports whether a task was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	pending := d.task != nil
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.task = nil
	d.timer = nil
	return pending
}

// Flush runs the pending task now, if there is one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	task := d.task
	if task == nil {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.task = nil
	d.timer = nil
	d.mu.Unlock()

	task()
	return true
}
