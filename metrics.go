package animator

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeAnimated  = "animated"
	outcomeImmediate = "immediate"
)

// metrics holds the animator's Prometheus collectors. A nil *metrics records
// nothing.
type metrics struct {
	actors      prometheus.Gauge
	enqueuedC   prometheus.Counter
	prunedC     prometheus.Counter
	completedC  prometheus.Counter
	ticks       prometheus.Counter
	transitions *prometheus.CounterVec
}

// newMetrics creates the collectors and registers them with reg. A nil reg
// disables metrics.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	m := &metrics{
		actors: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "animator_active_actors",
			Help: "Number of nodes with running animations",
		}),
		enqueuedC: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "animator_segments_enqueued_total",
			Help: "Total number of property segments enqueued",
		}),
		prunedC: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "animator_segments_pruned_total",
			Help: "Total number of queued segments discarded by a colliding request",
		}),
		completedC: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "animator_segments_completed_total",
			Help: "Total number of property segments that ran to completion",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "animator_ticks_total",
			Help: "Total number of scheduler ticks",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "animator_class_transitions_total",
			Help: "Total number of class transitions by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.actors, m.enqueuedC, m.prunedC, m.completedC, m.ticks, m.transitions)
	return m
}

func (m *metrics) setActors(n int) {
	if m != nil {
		m.actors.Set(float64(n))
	}
}

func (m *metrics) enqueued() {
	if m != nil {
		m.enqueuedC.Inc()
	}
}

func (m *metrics) prunedSegments(n int) {
	if m != nil {
		m.prunedC.Add(float64(n))
	}
}

func (m *metrics) completed() {
	if m != nil {
		m.completedC.Inc()
	}
}

func (m *metrics) tick() {
	if m != nil {
		m.ticks.Inc()
	}
}

func (m *metrics) transition(outcome string) {
	if m != nil {
		m.transitions.WithLabelValues(outcome).Inc()
	}
}
