package animator

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// snapshot is the captured computed style of a subtree, in traversal order.
type snapshot struct {
	order  []*Node
	styles map[string]Styles
}

// capture measures the subtree rooted at root. Nodes whose configured action
// needs no measurement are skipped, and so are the children of nodes whose
// action leaves them alone.
func (a *Animator) capture(root *Node, only []string, actions map[string]Action) snapshot {
	snap := snapshot{styles: map[string]Styles{}}
	root.Walk(func(n *Node) bool {
		action := actions[n.id]
		if action.measured() {
			snap.order = append(snap.order, n)
			snap.styles[n.id] = a.scene.ComputedStyle(n, only)
		}
		return !action.skipsChildren()
	})
	return snap
}

// plan collects the property requests of a class transition per node, in
// the order the nodes were first given a request.
type plan struct {
	nodes []*Node
	props map[string]Properties
}

func (p *plan) set(n *Node, property string, req PropertyRequest) {
	props, ok := p.props[n.id]
	if !ok {
		props = Properties{}
		p.props[n.id] = props
		p.nodes = append(p.nodes, n)
	}
	props[property] = req
}

// transition animates the change of n's class name to className across
// n's subtree.
func (a *Animator) transition(n *Node, className string, opts Options) {
	if n == nil || n.IsDisposed() {
		return
	}
	opts = a.withDefaults(opts)
	if opts.Delay > 0 {
		delay := opts.Delay
		opts.Delay = 0
		a.clock.After(delay, func() { a.transition(n, className, opts) })
		return
	}

	if !a.scene.Contains(n) {
		n.SetClassName(className)
		a.metrics.transition(outcomeImmediate)
		if opts.Callback != nil {
			opts.Callback(n, ClassNameProperty)
		}
		return
	}

	if opts.Setup != nil {
		opts, className = opts.Setup(n, opts, className)
		opts = a.withDefaults(opts)
	}

	oldClassName := n.className
	_, span := a.tracer.Start(context.Background(), "animator.transition", trace.WithAttributes(
		attribute.String("node.id", n.id),
		attribute.String("class.from", oldClassName),
		attribute.String("class.to", className),
	))
	defer span.End()

	before := a.capture(n, opts.Only, opts.Actions)

	n.className = className
	for _, c := range before.order {
		act := a.store.get(c.id)
		if act == nil {
			continue
		}
		for p := range act.props {
			if p != ClassNameProperty {
				c.ClearInlineStyle(p)
			}
		}
	}
	after := a.capture(n, opts.Only, opts.Actions)
	n.className = oldClassName

	work := plan{props: map[string]Properties{}}
	work.set(n, ClassNameProperty, PropertyRequest{
		Value:    className,
		Duration: opts.Duration,
		Callback: opts.Callback,
	})
	opts.Callback = nil

	counts := map[ActionKind]int{}
	n.Walk(func(c *Node) bool {
		from, to := before.styles[c.id], after.styles[c.id]
		action := a.classify(c, opts.Actions, from, to)
		counts[action.Kind]++

		switch action.Kind {
		case ActionIgnore:
			return false

		case ActionFade:
			work.set(c, "opacity", PropertyRequest{
				Value:    "0",
				Duration: opts.Duration,
				Curve:    LinearCompleteAndReverse,
			})
			return false

		case ActionFadeOut:
			work.set(c, "opacity", PropertyRequest{
				Value:    "0",
				Duration: opts.Duration / 2,
				Cleanup:  boolPtr(false),
			})
			return false

		case ActionFadeIn:
			if from == nil {
				from = Styles{}
				before.styles[c.id] = from
			}
			from["opacity"] = "0"
			work.set(c, "opacity", PropertyRequest{
				Value:    "1",
				Duration: opts.Duration / 2,
				Delay:    opts.Duration / 2,
			})
			return false
		}

		a.morph(&work, c, action, from, to)
		return action.Kind != ActionMorphIgnoreChildren
	})

	attrs := make([]attribute.KeyValue, 0, len(counts))
	for kind, count := range counts {
		attrs = append(attrs, attribute.Int("actions."+kind.String(), count))
	}
	span.SetAttributes(attrs...)
	a.logger.Debug("class transition",
		"node", n.String(),
		"from", oldClassName,
		"to", className,
		"nodes", len(work.nodes),
	)

	opts.StepBackToZero = true
	opts.Cleanup = true
	for _, c := range work.nodes {
		if c.IsDisposed() {
			continue
		}
		nodeOpts := opts
		nodeOpts.StartStyles = before.styles[c.id]
		a.animate(c, work.props[c.id], nodeOpts)
	}
	a.metrics.transition(outcomeAnimated)
}

// classify returns the effective action of n. Without a configured action
// the change of display picks a fade, and anything else morphs.
func (a *Animator) classify(n *Node, actions map[string]Action, from, to Styles) Action {
	action, configured := actions[n.id]
	if !configured || action.Kind == ActionDefault {
		fromNone, toNone := from["display"] == "none", to["display"] == "none"
		switch {
		case from == nil || to == nil:
			return Morph
		case fromNone && toNone:
			return Ignore
		case fromNone:
			return FadeIn
		case toNone:
			return FadeOut
		}
		return Morph
	}
	if action.Kind == ActionDynamic {
		if action.Resolve == nil {
			return Morph
		}
		action = action.Resolve(n, from, to)
		if action.Kind == ActionDefault || action.Kind == ActionDynamic {
			action.Kind = ActionMorph
		}
	}
	return action
}

// morph adds a request for every measured property of n that changes, or
// that is animating already and so must be retargeted.
func (a *Animator) morph(work *plan, n *Node, action Action, from, to Styles) {
	names := make([]string, 0, len(from))
	for p := range from {
		if p != ClassNameProperty {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	for _, p := range names {
		override, overridden := action.Overrides[p]
		final := to[p]
		if overridden && override.Value != "" {
			final = override.Value
		}
		if !a.Animating(n, p) && from[p] == final {
			continue
		}
		if overridden {
			if override.Value == "" {
				override.Value = to[p]
			}
			override.Cleanup = boolPtr(false)
			work.set(n, p, override)
			continue
		}
		work.set(n, p, Value(final))
	}
}
