package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/animator"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []animator.AnimationEvent
	AnimationEventType.Subscribe(world, func(w donburi.World, e animator.AnimationEvent) {
		received = append(received, e)
	})

	sink.Emit(animator.AnimationEvent{Type: animator.EventPropertyComplete, NodeID: "box", Property: "opacity", Value: "0"})
	sink.Emit(animator.AnimationEvent{Type: animator.EventAborted})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	AnimationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != animator.EventPropertyComplete || e.NodeID != "box" || e.Value != "0" {
		t.Errorf("event 0: %+v", e)
	}
	if received[1].Type != animator.EventAborted {
		t.Errorf("event 1 type = %v, want %v", received[1].Type, animator.EventAborted)
	}
}

func TestDonburiSink_FromAnimator(t *testing.T) {
	world := donburi.NewWorld()
	scene := animator.NewScene(nil)
	box := animator.NewNodeWithID("box", "box", "")
	scene.Root().AddChild(box)

	clock := animator.NewManualClock()
	anim := animator.New(scene, clock, animator.WithEventSink(NewDonburiSink(world)))

	var types []animator.EventType
	AnimationEventType.Subscribe(world, func(w donburi.World, e animator.AnimationEvent) {
		types = append(types, e.Type)
	})

	anim.Animate(box, animator.Values(map[string]string{"opacity": "0"}), animator.Options{Duration: 100 * time.Millisecond})
	clock.Advance(200 * time.Millisecond)
	events.ProcessAllEvents(world)

	want := []animator.EventType{animator.EventPropertyComplete, animator.EventActorComplete}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	AnimationEventType.Subscribe(world, func(w donburi.World, e animator.AnimationEvent) {
		count1++
	})
	AnimationEventType.Subscribe(world, func(w donburi.World, e animator.AnimationEvent) {
		count2++
	})

	sink.Emit(animator.AnimationEvent{Type: animator.EventActorComplete})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
