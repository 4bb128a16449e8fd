package animator

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsNilSafe(t *testing.T) {
	var m *metrics
	m.setActors(3)
	m.enqueued()
	m.prunedSegments(2)
	m.completed()
	m.tick()
	m.transition(outcomeAnimated)
	if newMetrics(nil) != nil {
		t.Error("newMetrics(nil) should disable metrics")
	}
}

func TestMetricsRecordAnimation(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, clock, box := newTestAnimator(t, ".box { opacity: 1; }", WithMetrics(reg))

	a.Animate(box, Values(map[string]string{"opacity": "0"}), Options{Duration: 100 * time.Millisecond})
	if got := testutil.ToFloat64(a.metrics.actors); got != 1 {
		t.Errorf("actors = %v, want 1", got)
	}
	clock.Advance(20 * time.Millisecond)
	a.Animate(box, Values(map[string]string{"opacity": "1"}), Options{Duration: 100 * time.Millisecond})
	clock.Advance(time.Second)

	if got := testutil.ToFloat64(a.metrics.enqueuedC); got != 2 {
		t.Errorf("enqueued = %v, want 2", got)
	}
	if got := testutil.ToFloat64(a.metrics.prunedC); got != 1 {
		t.Errorf("pruned = %v, want 1", got)
	}
	if got := testutil.ToFloat64(a.metrics.completedC); got != 1 {
		t.Errorf("completed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(a.metrics.actors); got != 0 {
		t.Errorf("actors after completion = %v, want 0", got)
	}
	if got := testutil.ToFloat64(a.metrics.ticks); got != 12 {
		t.Errorf("ticks = %v, want 12", got)
	}
}

func TestMetricsRecordTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, _, box := newTestAnimator(t, morphCSS, WithMetrics(reg))

	a.AddClassName(box, "wide", Options{Duration: 100 * time.Millisecond})
	a.ToggleClassName(box, Options{Add: []string{"tall"}}, false)
	a.AddClassName(NewNode("loose", ""), "wide", Options{})

	if got := testutil.ToFloat64(a.metrics.transitions.WithLabelValues(outcomeAnimated)); got != 1 {
		t.Errorf("animated transitions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(a.metrics.transitions.WithLabelValues(outcomeImmediate)); got != 2 {
		t.Errorf("immediate transitions = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(reg); n != 7 {
		t.Errorf("collected %d series, want 7", n)
	}
}
