package animator

import "time"

// EventType identifies a kind of animation event.
type EventType uint8

const (
	EventPropertyComplete EventType = iota // a property's segment finished
	EventActorComplete                     // a node has no animations left (fires after the settle delay)
	EventAborted                           // Abort cleared every running animation
)

func (t EventType) String() string {
	switch t {
	case EventPropertyComplete:
		return "property-complete"
	case EventActorComplete:
		return "actor-complete"
	case EventAborted:
		return "aborted"
	}
	return "unknown"
}

// AnimationEvent carries animation lifecycle data to an EventSink.
type AnimationEvent struct {
	Type     EventType     `json:"type"`
	NodeID   string        `json:"nodeId,omitempty"`
	NodeName string        `json:"nodeName,omitempty"`
	Property string        `json:"property,omitempty"`
	Value    string        `json:"value,omitempty"`
	Time     time.Duration `json:"time"`
}

// EventSink is the interface for optional event forwarding, e.g. into an ECS
// world or over a message broker. Emit runs on the animator's goroutine and
// must not block.
type EventSink interface {
	Emit(event AnimationEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(AnimationEvent)

// Emit calls f.
func (f EventSinkFunc) Emit(e AnimationEvent) {
	f(e)
}

func (a *Animator) emit(e AnimationEvent) {
	if a.events == nil {
		return
	}
	e.Time = a.clock.Now()
	a.events.Emit(e)
}
