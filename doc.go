// Package animator animates style properties and class name changes of an
// element tree over time.
//
// Elements are [Node] values attached to a [Scene], whose [Stylesheet]
// computes each node's style from its class string. An [Animator] owns the
// running animations and advances them on a [Clock].
//
// # Quick start
//
//	ss := animator.MustParseStylesheet(`
//		.card        { opacity: 1; width: 100px; }
//		.card.open   { width: 300px; }
//		.card.closed { display: none; }
//	`)
//	scene := animator.NewScene(ss)
//	card := animator.NewNodeWithID("card", "card", "card")
//	scene.Root().AddChild(card)
//
//	clock := animator.NewManualClock()
//	anim := animator.New(scene, clock)
//	anim.AddClassName(card, "open", animator.Options{Duration: 300 * time.Millisecond})
//
//	clock.Advance(16 * time.Millisecond) // once per frame
//
// # Property animations
//
// [Animator.Animate] interpolates properties from their current computed
// values to target values. Steppers from a [StepperRegistry] write the
// intermediate values to the node's inline style: lengths and numbers are
// tweened with [gween], colours are blended with go-colorful, and
// everything else switches at the discrete transition point.
//
// A new request for a property discards every queued segment of the same
// property whose time range it overlaps, so the newest request wins.
//
// # Class transitions
//
// [Animator.SetClassName], [Animator.AddClassName],
// [Animator.RemoveClassName], [Animator.ReplaceClassName] and
// [Animator.ToggleClassName] measure the subtree's styles with the old and
// the new class, then animate every difference. Per node, an [Action]
// chooses how: morph the changed properties, fade, or ignore. Nodes that
// appear or disappear through display none fade in or out by default.
//
// # Clocks and goroutines
//
// The animator is single-threaded. All calls must come from the goroutine
// that drives the clock; [WithDebug] enforces this. [ManualClock] is driven
// by a frame loop (see package ebitenhost), by [ManualClock.Run] for wall
// time, or by tests.
//
// # Observability
//
// [WithLogger] takes a slog logger, [WithMetrics] registers Prometheus
// collectors, [WithTracerProvider] records an OpenTelemetry span per class
// transition, and [WithEventSink] forwards completion events, for example
// into a Donburi world (package ecs) or over MQTT (package mqttsink).
//
// [gween]: https://github.com/tanema/gween
package animator
