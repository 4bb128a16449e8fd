// Package ecs bridges animator events into a [Donburi] world.
//
// [NewDonburiSink] returns an animator.EventSink that publishes every
// animation event to [AnimationEventType]. Subscribe to it in your ECS
// systems and drain it with ProcessEvents once per frame:
//
//	sink := ecs.NewDonburiSink(world)
//	anim := animator.New(scene, clock, animator.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
