package ecs

import (
	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for glide gesture events.
// Subscribe to this in your ECS systems to receive pan, pinch, and zoom
// notifications.
var GestureEventType = events.NewEventType[glide.GestureEvent]()

// ViewportComponent holds the latest engine transform on the entity created
// by TrackViewport.
var ViewportComponent = donburi.NewComponentType[glide.Transform]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) glide.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event glide.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}

// Viewport is a mirror of an engine's transform in a Donburi world.
type Viewport struct {
	Entity donburi.Entity
	handle glide.CallbackHandle
}

// TrackViewport creates an entity carrying ViewportComponent and keeps it in
// sync with the engine's transform after every frame in which it changes.
func TrackViewport(world donburi.World, engine *glide.Engine) *Viewport {
	entity := world.Create(ViewportComponent)
	ViewportComponent.SetValue(world.Entry(entity), engine.Transform())
	v := &Viewport{Entity: entity}
	v.handle = engine.Subscribe(func(xf glide.Transform) {
		if !world.Valid(entity) {
			return
		}
		ViewportComponent.SetValue(world.Entry(entity), xf)
	})
	return v
}

// Stop ends the mirroring. The entity is left in the world.
func (v *Viewport) Stop() {
	v.handle.Remove()
}
