package animator

import "time"

// segment is one scheduled interpolation of a property.
type segment struct {
	start, end time.Duration
	total      time.Duration

	stepper       Stepper
	curve         Curve
	discretePoint float64
	from, to      string

	callback Callback
	cleanup  bool
}

// overlaps reports whether s contests the interval [start, end]: its end or
// start falls strictly inside the interval, or it contains the interval.
func (s *segment) overlaps(start, end time.Duration) bool {
	endInside := s.end > start && s.end < end
	startInside := s.start > start && s.start < end
	contains := s.start <= start && s.end >= end
	return endInside || startInside || contains
}

// actor is the per-node animation state. An actor exists in the store only
// while it has at least one animating property, and no property maps to an
// empty queue.
type actor struct {
	node     *Node
	id       string
	props    map[string][]*segment
	order    []string
	callback Callback
}

func newActor(n *Node) *actor {
	return &actor{node: n, id: n.id, props: map[string][]*segment{}}
}

// activePropertyCount returns the number of properties animating.
func (a *actor) activePropertyCount() int {
	return len(a.props)
}

// enqueue appends seg to the property's queue after discarding every queued
// segment it overlaps. It reports whether the property is new and how many
// segments were discarded.
func (a *actor) enqueue(property string, seg *segment) (added bool, pruned int) {
	queue, ok := a.props[property]
	if !ok {
		a.order = append(a.order, property)
	}
	kept := make([]*segment, 0, len(queue)+1)
	for _, s := range queue {
		if s.overlaps(seg.start, seg.end) {
			pruned++
			continue
		}
		kept = append(kept, s)
	}
	a.props[property] = append(kept, seg)
	return !ok, pruned
}

// pop removes the head segment of property. When the queue empties the
// property is removed.
func (a *actor) pop(property string) *segment {
	queue := a.props[property]
	if len(queue) == 0 {
		return nil
	}
	head := queue[0]
	queue[0] = nil
	queue = queue[1:]
	if len(queue) == 0 {
		delete(a.props, property)
		for i, p := range a.order {
			if p == property {
				a.order = append(a.order[:i:i], a.order[i+1:]...)
				break
			}
		}
	} else {
		a.props[property] = queue
	}
	return head
}

// head returns the segment currently advanced for property.
func (a *actor) head(property string) *segment {
	queue := a.props[property]
	if len(queue) == 0 {
		return nil
	}
	return queue[0]
}

// properties returns a copy of the animating property names in the order
// they started.
func (a *actor) properties() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// actorStore maps node ids to actors, remembering insertion order so ticks
// visit actors deterministically.
type actorStore struct {
	actors map[string]*actor
	order  []string
}

func newActorStore() *actorStore {
	return &actorStore{actors: map[string]*actor{}}
}

func (s *actorStore) get(id string) *actor {
	return s.actors[id]
}

// getOrCreate returns the actor for n, creating it when missing.
func (s *actorStore) getOrCreate(n *Node) (*actor, bool) {
	if a := s.actors[n.id]; a != nil {
		return a, false
	}
	a := newActor(n)
	s.actors[n.id] = a
	s.order = append(s.order, n.id)
	return a, true
}

func (s *actorStore) remove(id string) {
	if _, ok := s.actors[id]; !ok {
		return
	}
	delete(s.actors, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// snapshot returns the actors in insertion order. Mutating the store while
// ranging over the snapshot is safe.
func (s *actorStore) snapshot() []*actor {
	out := make([]*actor, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.actors[id])
	}
	return out
}

func (s *actorStore) len() int {
	return len(s.actors)
}

func (s *actorStore) clear() {
	s.actors = map[string]*actor{}
	s.order = nil
}
