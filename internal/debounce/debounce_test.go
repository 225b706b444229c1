package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTimer struct {
	s       *fakeScheduler
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler is a manual clock: Advance fires every timer that is due.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{s: s, at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

func TestTriggerRunsAfterQuietPeriod(t *testing.T) {
	s := &fakeScheduler{}
	d := NewWithScheduler(500*time.Millisecond, s)

	var runs int32
	d.Trigger(func() { atomic.AddInt32(&runs, 1) })

	s.Advance(499 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&runs))

	s.Advance(time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
	assert.False(t, d.Flush())
}

func TestTriggerReschedulesOnEveryKeystroke(t *testing.T) {
	s := &fakeScheduler{}
	d := NewWithScheduler(500*time.Millisecond, s)

	var got []string
	for _, q := range []string{"v", "vp", "vpn"} {
		q := q
		d.Trigger(func() { got = append(got, q) })
		s.Advance(300 * time.Millisecond)
	}
	assert.Empty(t, got)

	s.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"vpn"}, got)

	s.Advance(time.Second)
	assert.Equal(t, []string{"vpn"}, got)
}

func TestCancel(t *testing.T) {
	s := &fakeScheduler{}
	d := NewWithScheduler(time.Second, s)

	ran := false
	d.Trigger(func() { ran = true })
	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	s.Advance(2 * time.Second)
	assert.False(t, ran)
}

func TestFlush(t *testing.T) {
	s := &fakeScheduler{}
	d := NewWithScheduler(time.Second, s)

	assert.False(t, d.Flush())

	runs := 0
	d.Trigger(func() { runs++ })
	assert.True(t, d.Flush())
	assert.Equal(t, 1, runs)

	s.Advance(2 * time.Second)
	assert.Equal(t, 1, runs)
}

func TestStaleFireIsIgnored(t *testing.T) {
	s := &fakeScheduler{}
	d := NewWithScheduler(time.Second, s)

	d.Trigger(func() { t.Fatal("superseded task ran") })
	first := s.timers[0]

	runs := 0
	d.Trigger(func() { runs++ })

	// A timer that slipped past Stop must not run the superseded task.
	first.f()
	assert.Equal(t, 0, runs)

	s.Advance(time.Second)
	assert.Equal(t, 1, runs)
}

func TestRealScheduler(t *testing.T) {
	d := NewWithScheduler(20*time.Millisecond, RealScheduler)

	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		d.Trigger(func() { close(done) })
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced task did not run")
	}
}

func TestDefaultDelay(t *testing.T) {
	s := &fakeScheduler{}
	d := NewWithScheduler(0, s)

	runs := 0
	d.Trigger(func() { runs++ })
	s.Advance(DefaultDelay - time.Millisecond)
	assert.Equal(t, 0, runs)
	s.Advance(time.Millisecond)
	assert.Equal(t, 1, runs)
}
