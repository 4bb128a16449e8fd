package animator

import (
	"context"
	"testing"
	"time"
)

func TestManualClockEvery(t *testing.T) {
	c := NewManualClock()
	var at []time.Duration
	timer := c.Every(10*time.Millisecond, func() { at = append(at, c.Now()) })

	c.Advance(35 * time.Millisecond)
	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("fired at %v, want %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("fire %d at %v, want %v", i, at[i], want[i])
		}
	}
	if c.Now() != 35*time.Millisecond {
		t.Errorf("Now = %v, want 35ms", c.Now())
	}

	timer.Stop()
	timer.Stop()
	c.Advance(50 * time.Millisecond)
	if len(at) != 3 {
		t.Errorf("stopped timer fired %d more times", len(at)-3)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", c.Pending())
	}
}

func TestManualClockAfterFiresOnce(t *testing.T) {
	c := NewManualClock()
	n := 0
	c.After(5*time.Millisecond, func() { n++ })
	c.Advance(4 * time.Millisecond)
	if n != 0 {
		t.Fatal("fired early")
	}
	c.Advance(10 * time.Millisecond)
	if n != 1 {
		t.Errorf("fired %d times, want 1", n)
	}
}

func TestManualClockOrder(t *testing.T) {
	c := NewManualClock()
	var order []string
	c.After(10*time.Millisecond, func() { order = append(order, "a") })
	c.After(5*time.Millisecond, func() { order = append(order, "b") })
	c.After(10*time.Millisecond, func() { order = append(order, "c") })
	c.Advance(10 * time.Millisecond)

	want := []string{"b", "a", "c"}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestManualClockNestedScheduling(t *testing.T) {
	c := NewManualClock()
	fired := false
	c.After(5*time.Millisecond, func() {
		c.After(3*time.Millisecond, func() { fired = true })
	})
	c.Advance(10 * time.Millisecond)
	if !fired {
		t.Error("timer scheduled by a callback should fire within the same Advance")
	}
}

func TestManualClockPost(t *testing.T) {
	c := NewManualClock()
	done := make(chan struct{})
	go func() {
		c.Post(func() {})
		close(done)
	}()
	<-done

	ran := false
	c.Post(func() { ran = true })
	c.Advance(0)
	if !ran {
		t.Error("posted function should run on Advance")
	}
}

func TestManualClockRun(t *testing.T) {
	c := NewManualClock()
	ctx, cancel := context.WithCancel(context.Background())
	c.Post(func() {
		c.After(0, cancel)
	})
	err := c.Run(ctx, time.Millisecond)
	if err != context.Canceled {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
