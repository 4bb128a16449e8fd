package ecs

import (
	"github.com/phanxgames/animator"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for animator events.
var AnimationEventType = events.NewEventType[animator.AnimationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on AnimationEventType until the world processes them.
func NewDonburiSink(world donburi.World) animator.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event animator.AnimationEvent) {
	AnimationEventType.Publish(s.world, event)
}
