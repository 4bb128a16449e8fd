package animator

import "sort"

// Animate interpolates the given properties of n from their current values
// to the requested ones and applies them on every tick.
//
// A non-zero Options.Delay defers the whole request once. Shorthand
// properties (margin, padding, borderColor, borderWidth) are expanded to
// their four directional properties. A new request for a property discards
// any queued segment of that property whose time range it overlaps.
func (a *Animator) Animate(n *Node, props Properties, opts Options) {
	a.checkOwner("Animate")
	opts = a.withDefaults(opts)
	if opts.Delay > 0 {
		delay := opts.Delay
		opts.Delay = 0
		props = props.Clone()
		a.clock.After(delay, func() { a.animate(n, props, opts) })
		return
	}
	a.animate(n, props, opts)
}

// animate schedules props with defaults already applied and no delay.
func (a *Animator) animate(n *Node, props Properties, opts Options) {
	if n == nil || n.IsDisposed() || len(props) == 0 {
		return
	}
	act, created := a.store.getOrCreate(n)
	if created {
		a.metrics.setActors(a.store.len())
		a.logger.Debug("actor created", "node", n.String())
	}
	if opts.Callback != nil {
		act.callback = opts.Callback
	}

	groupStart := a.clock.Now()
	groupEnd := groupStart + opts.Duration

	props = normaliseProperties(props)
	names := make([]string, 0, len(props))
	for p := range props {
		names = append(names, p)
	}
	sort.Strings(names)

	from := a.startValues(n, names, opts.StartStyles)

	for _, p := range names {
		req := props[p]

		start := groupStart + req.Delay
		end := groupEnd
		if req.Duration > 0 {
			end = start + req.Duration
		}
		if end < start {
			end = start
		}

		curve := req.Curve
		if curve == nil {
			curve = opts.Curve
		}
		point := req.DiscreteTransitionPoint
		if point <= 0 {
			point = opts.DiscreteTransitionPoint
		}
		cleanup := opts.Cleanup
		if req.Cleanup != nil {
			cleanup = *req.Cleanup
		}

		seg := &segment{
			start:         start,
			end:           end,
			total:         end - start,
			curve:         curve,
			discretePoint: point,
			from:          from[p],
			to:            req.Value,
			callback:      req.Callback,
			cleanup:       cleanup,
		}
		seg.stepper = a.steppers.NewStepper(n, p, seg.from, seg.to, StepParams{
			Curve:                   curve,
			DiscreteTransitionPoint: point,
		})
		if opts.StepBackToZero {
			seg.stepper.Step(0)
		}

		_, pruned := act.enqueue(p, seg)
		a.metrics.enqueued()
		if pruned > 0 {
			a.metrics.prunedSegments(pruned)
			a.logger.Debug("collision resolved", "node", n.String(), "property", p, "pruned", pruned)
		}
	}

	a.start()
}

// startValues returns the starting value of every property in names, taken
// from hint when present and from the computed style otherwise.
func (a *Animator) startValues(n *Node, names []string, hint Styles) Styles {
	from := make(Styles, len(names))
	var missing []string
	for _, p := range names {
		if v, ok := hint[p]; ok {
			from[p] = v
			continue
		}
		missing = append(missing, p)
	}
	if len(missing) > 0 {
		for p, v := range a.scene.ComputedStyle(n, missing) {
			from[p] = v
		}
	}
	return from
}

// normaliseProperties returns a copy of props with shorthand properties
// replaced by their directional properties. An explicit directional entry
// wins over the value replicated from its shorthand.
func normaliseProperties(props Properties) Properties {
	out := make(Properties, len(props))
	for p, req := range props {
		if _, ok := shorthands[p]; ok {
			continue
		}
		out[p] = req
	}
	for p, req := range props {
		sides, ok := shorthands[p]
		if !ok {
			continue
		}
		for _, side := range sides {
			if _, explicit := out[side]; !explicit {
				out[side] = req
			}
		}
	}
	return out
}
