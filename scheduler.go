package animator

import "time"

// completion is a callback collected during a tick and run after every actor
// has been advanced.
type completion struct {
	fn       Callback
	node     *Node
	property string
}

// start begins ticking. It is a no-op while the timer runs.
func (a *Animator) start() {
	if a.timer != nil {
		return
	}
	a.lastStep = a.clock.Now()
	a.timer = a.clock.Every(a.cfg.TickInterval, a.step)
	a.logger.Debug("scheduler started", "interval", a.cfg.TickInterval)
}

// stop cancels the timer and empties the store. It is a no-op when stopped.
func (a *Animator) stop() {
	if a.timer == nil {
		return
	}
	a.timer.Stop()
	a.timer = nil
	a.store.clear()
	a.logger.Debug("scheduler stopped")
}

// step advances the head segment of every property of every actor. Segments
// that reached their end are completed within the same tick; their callbacks
// run once the whole store has been advanced.
func (a *Animator) step() {
	if a.timer == nil {
		return
	}
	var t0 time.Time
	if a.cfg.Debug {
		t0 = time.Now()
	}
	now := a.clock.Now()
	var done []completion

	for _, act := range a.store.snapshot() {
		if a.store.get(act.id) != act {
			continue
		}
		if act.node.IsDisposed() {
			a.drop(act)
			continue
		}
		for _, p := range act.properties() {
			seg := act.head(p)
			if seg == nil {
				continue
			}
			switch {
			case now >= seg.end:
				seg.stepper.Step(1)
				done = a.complete(act, p, done)
			case now >= seg.start:
				seg.stepper.Step(float64(now-seg.start) / float64(seg.total))
			}
		}
	}
	a.lastStep = now
	a.metrics.tick()

	if a.cfg.Debug {
		a.logger.Debug("tick", "actors", a.store.len(), "completions", len(done), "elapsed", time.Since(t0))
	}
	for _, c := range done {
		c.fn(c.node, c.property)
	}
}

// complete pops the head segment of property and performs the bookkeeping
// that follows: cleanup, property removal, actor removal with a deferred
// actor callback, and stopping the scheduler once the store is empty.
// Property callbacks are appended to done.
func (a *Animator) complete(act *actor, property string, done []completion) []completion {
	seg := act.pop(property)
	if seg == nil {
		return done
	}
	if seg.cleanup {
		seg.stepper.Cleanup()
	}
	a.metrics.completed()
	a.emit(AnimationEvent{Type: EventPropertyComplete, NodeID: act.id, NodeName: act.node.Name, Property: property, Value: seg.to})
	if seg.callback != nil {
		done = append(done, completion{fn: seg.callback, node: act.node, property: property})
	}

	if act.activePropertyCount() == 0 {
		a.store.remove(act.id)
		a.metrics.setActors(a.store.len())
		a.logger.Debug("actor finished", "node", act.node.String())
		a.settle(act, property)
	}
	if a.store.len() == 0 {
		a.stop()
	}
	return done
}

// settle runs the actor's completion callback shortly after the tick that
// finished it, once this tick's style writes have been applied.
func (a *Animator) settle(act *actor, property string) {
	if act.callback == nil && a.events == nil {
		return
	}
	epoch := a.epoch
	cb, node := act.callback, act.node
	a.clock.After(a.cfg.SettleDelay, func() {
		if a.epoch != epoch {
			return
		}
		a.emit(AnimationEvent{Type: EventActorComplete, NodeID: node.id, NodeName: node.Name, Property: property})
		if cb != nil {
			cb(node, property)
		}
	})
}

// drop removes an actor whose node was disposed, without callbacks.
func (a *Animator) drop(act *actor) {
	a.store.remove(act.id)
	a.metrics.setActors(a.store.len())
	a.logger.Debug("actor dropped, node disposed", "node", act.id)
	if a.store.len() == 0 {
		a.stop()
	}
}
