package animator

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/phanxgames/animator/internal/logging"
)

// Animator owns the actor store and the tick timer. All methods must be
// called from the goroutine that drives the clock.
type Animator struct {
	scene    *Scene
	clock    Clock
	cfg      Config
	curve    Curve
	steppers StepperRegistry
	logger   *slog.Logger
	events   EventSink
	metrics  *metrics
	tracer   trace.Tracer

	store    *actorStore
	timer    Timer
	lastStep time.Duration
	epoch    uint64

	debug *ownerCheck
}

// Option configures an Animator.
type Option func(*Animator)

// WithLogger configures the structured logger. The default discards. The
// scene's debug mode warnings go to the same logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Animator) {
		if logger != nil {
			a.logger = logger
			a.scene.SetLogger(logger)
		}
	}
}

// WithStepperRegistry replaces DefaultSteppers.
func WithStepperRegistry(r StepperRegistry) Option {
	return func(a *Animator) {
		if r != nil {
			a.steppers = r
		}
	}
}

// WithEventSink forwards animation events to sink.
func WithEventSink(sink EventSink) Option {
	return func(a *Animator) {
		a.events = sink
	}
}

// WithMetrics registers the animator's Prometheus collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(a *Animator) {
		a.metrics = newMetrics(reg)
	}
}

// WithTracerProvider records a span per class transition.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *Animator) {
		if tp != nil {
			a.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithConfig replaces DefaultConfig. Invalid curve names fall back to linear.
func WithConfig(cfg Config) Option {
	return func(a *Animator) {
		a.cfg = cfg.withDefaults()
	}
}

// WithDebug enables the single-goroutine ownership check and per-tick
// timing logs.
func WithDebug(enabled bool) Option {
	return func(a *Animator) {
		a.cfg.Debug = enabled
	}
}

const tracerName = "github.com/phanxgames/animator"

// New creates an Animator for the nodes of scene, driven by clock.
func New(scene *Scene, clock Clock, opts ...Option) *Animator {
	if scene == nil {
		panic("animator: nil scene")
	}
	if clock == nil {
		panic("animator: nil clock")
	}
	a := &Animator{
		scene:    scene,
		clock:    clock,
		cfg:      DefaultConfig(),
		steppers: DefaultSteppers,
		logger:   logging.NewNop(),
		tracer:   noop.NewTracerProvider().Tracer(tracerName),
		store:    newActorStore(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.curve, _ = CurveByName(a.cfg.Curve)
	if a.cfg.Debug {
		a.debug = newOwnerCheck()
	}
	return a
}

// Scene returns the scene the animator measures styles in.
func (a *Animator) Scene() *Scene {
	return a.scene
}

// Config returns the effective configuration.
func (a *Animator) Config() Config {
	return a.cfg
}

// Active reports whether the tick timer is running.
func (a *Animator) Active() bool {
	return a.timer != nil
}

// ActorCount returns the number of nodes with running animations.
func (a *Animator) ActorCount() int {
	return a.store.len()
}

// Animating reports whether property of n has queued segments. An empty
// property reports whether n has any.
func (a *Animator) Animating(n *Node, property string) bool {
	if n == nil {
		return false
	}
	act := a.store.get(n.id)
	if act == nil {
		return false
	}
	if property == "" {
		return true
	}
	_, ok := act.props[property]
	return ok
}

// Queued returns the number of segments queued for property of n.
func (a *Animator) Queued(n *Node, property string) int {
	if n == nil {
		return 0
	}
	act := a.store.get(n.id)
	if act == nil {
		return 0
	}
	return len(act.props[property])
}

// Abort stops every running animation. Inline styles keep whatever value they
// were last given; pending completion callbacks are dropped.
func (a *Animator) Abort() {
	a.checkOwner("Abort")
	a.epoch++
	count := a.store.len()
	a.store.clear()
	a.metrics.setActors(0)
	a.stop()
	a.logger.Debug("animations aborted", "actors", count)
	a.emit(AnimationEvent{Type: EventAborted})
}

func (a *Animator) withDefaults(opts Options) Options {
	if opts.Duration <= 0 {
		opts.Duration = a.cfg.Duration
	}
	if opts.DiscreteTransitionPoint <= 0 {
		opts.DiscreteTransitionPoint = a.cfg.DiscreteTransitionPoint
	}
	if opts.Curve == nil {
		opts.Curve = a.curve
	}
	return opts
}
