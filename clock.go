package animator

import (
	"context"
	"sync"
	"time"
)

// Clock is the animator's view of time. Now must be monotonic. Every and
// After schedule callbacks that run on the clock's own goroutine; the
// animator never calls them concurrently.
type Clock interface {
	Now() time.Duration
	Every(interval time.Duration, fn func()) Timer
	After(delay time.Duration, fn func()) Timer
}

// Timer cancels a scheduled callback. Stop is idempotent.
type Timer interface {
	Stop()
}

// ManualClock is a single-threaded Clock advanced explicitly by its owner:
// a frame loop calling Advance once per frame, Run for wall-clock time, or a
// test stepping through time deterministically.
type ManualClock struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer

	mu     sync.Mutex
	posted []func()
}

type manualTimer struct {
	due      time.Duration
	interval time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

// NewManualClock creates a clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the current time. Inside a timer callback this is the time the
// timer was due.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Every schedules fn to run every interval, first after one interval.
// Intervals below one nanosecond are raised to one nanosecond.
func (c *ManualClock) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		interval = 1
	}
	return c.schedule(interval, interval, fn)
}

// After schedules fn to run once after delay.
func (c *ManualClock) After(delay time.Duration, fn func()) Timer {
	if delay < 0 {
		delay = 0
	}
	return c.schedule(delay, 0, fn)
}

func (c *ManualClock) schedule(delay, interval time.Duration, fn func()) Timer {
	c.seq++
	t := &manualTimer{due: c.now + delay, interval: interval, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Stop cancels the timer.
func (t *manualTimer) Stop() {
	t.stopped = true
}

// Pending returns the number of scheduled, unstopped timers.
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every timer that falls due in
// due-time order (ties in scheduling order). Timers scheduled by callbacks run
// within the same call if they fall due before the new time.
func (c *ManualClock) Advance(d time.Duration) {
	c.drainPosted()
	target := c.now + d
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			t.stopped = true
		}
		t.fn()
		c.compact()
	}
	if target > c.now {
		c.now = target
	}
	c.compact()
}

func (c *ManualClock) nextDue(limit time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range c.timers {
		if t.stopped || t.due > limit {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (c *ManualClock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}

// Post queues fn to run on the clock's goroutine before the next Advance
// processes timers. It is the only ManualClock method safe to call from other
// goroutines.
func (c *ManualClock) Post(fn func()) {
	c.mu.Lock()
	c.posted = append(c.posted, fn)
	c.mu.Unlock()
}

func (c *ManualClock) drainPosted() {
	c.mu.Lock()
	posted := c.posted
	c.posted = nil
	c.mu.Unlock()
	for _, fn := range posted {
		fn()
	}
}

// Run advances the clock by elapsed wall time once per frame until ctx is
// cancelled. It blocks; all timer callbacks run on the calling goroutine.
func (c *ManualClock) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = 10 * time.Millisecond
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			c.Advance(now.Sub(last))
			last = now
		}
	}
}
