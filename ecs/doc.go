// Package ecs provides ECS adapters for glide's gesture event stream.
//
// [NewDonburiSink] bridges engine gesture events (pan, pinch, wheel, rubber
// band, settle) into a [Donburi] world as typed events. Subscribe to
// [GestureEventType] in your ECS systems to receive them. [TrackViewport]
// mirrors the engine's transform onto an entity so systems can read it like
// any other component.
//
// Usage:
//
//	engine, _ := glide.New(cfg, glide.WithEventSink(ecs.NewDonburiSink(world)))
//	ecs.TrackViewport(world, engine)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
