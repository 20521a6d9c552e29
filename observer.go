package glide

// EventSink is the interface for optional gesture event forwarding, e.g. into
// an ECS world. Set it with WithEventSink.
type EventSink interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries a gesture notification and the engine status at the
// time it happened.
type GestureEvent struct {
	Type      EventType
	State     GestureState
	Transform Transform
	// Focal is the current zoom anchor in screen space.
	Focal Vec2
	// Overscroll is how far the pan target sits past the legal rectangle.
	Overscroll Vec2
}

type transformHandler struct {
	id uint32
	fn func(Transform)
}

type observerRegistry struct {
	handlers []transformHandler
	nextID   uint32
}

// CallbackHandle allows removing a transform subscription.
type CallbackHandle struct {
	id  uint32
	reg *observerRegistry
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = transformHandler{}
			h.reg.handlers = s[:len(s)-1]
			return
		}
	}
}

// Subscribe registers fn to be called with the new transform at the end of
// every frame in which it changed. Callbacks run on the frame goroutine and
// may call back into the engine.
func (e *Engine) Subscribe(fn func(Transform)) CallbackHandle {
	e.observers.nextID++
	id := e.observers.nextID
	e.observers.handlers = append(e.observers.handlers, transformHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.observers}
}

// publish notifies subscribers if the transform moved since the last
// notification.
func (e *Engine) publish() {
	if e.m.xf == e.published {
		return
	}
	e.published = e.m.xf
	xf := e.m.xf
	for _, h := range e.observers.handlers {
		h.fn(xf)
	}
}

func (e *Engine) emit(t EventType) {
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(GestureEvent{
		Type:       t,
		State:      e.state,
		Transform:  e.m.xf,
		Focal:      e.m.focal,
		Overscroll: e.Overscroll(),
	})
}
