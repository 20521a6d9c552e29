package glide

import (
	"time"

	"go.uber.org/zap"
)

// Engine turns raw pointer, touch, and wheel input into a continuously
// evolving viewport Transform.
//
// An Engine is not safe for concurrent use. Input methods, Resize, and the
// host's FrameSource callbacks must all run on one goroutine.
type Engine struct {
	settings Settings
	viewport Size

	m         motion
	published Transform

	// Gesture state
	state             GestureState
	pointers          []trackedPointer
	panPointer        PointerID
	panStartPointer   Vec2
	panStartTranslate Vec2
	pinch             pinchState
	overscroll        bool
	regions           []interactiveRegion
	nextRegionID      uint32

	sched     scheduler
	observers observerRegistry
	sink      EventSink
	flight    *flight

	log    *zap.Logger
	debug  bool
	closed bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithFrameSource sets the display-refresh primitive that paces physics.
// Without one the engine creates a FrameQueue, reachable via Frames.
func WithFrameSource(fs FrameSource) Option {
	return func(e *Engine) { e.sched.frames = fs }
}

// WithEventSink forwards gesture events to sink.
func WithEventSink(sink EventSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// New resolves cfg and creates an engine. The transform is the identity
// until the first Resize reports the viewport size.
func New(cfg Config, opts ...Option) (*Engine, error) {
	settings, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	e := &Engine{
		settings:  settings,
		m:         motion{xf: IdentityTransform, targetScale: 1},
		published: IdentityTransform,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sched.frames == nil {
		e.sched.frames = NewFrameQueue()
	}
	e.sched.step = e.step
	return e, nil
}

// Settings returns the resolved configuration.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Frames returns the engine's FrameSource.
func (e *Engine) Frames() FrameSource {
	return e.sched.frames
}

// Transform returns the current world-to-screen transform.
func (e *Engine) Transform() Transform {
	return e.m.xf
}

// Viewport returns the last size passed to Resize.
func (e *Engine) Viewport() Size {
	return e.viewport
}

// State returns the current gesture state.
func (e *Engine) State() GestureState {
	return e.state
}

// IsDragging reports whether a single-pointer pan is in progress.
func (e *Engine) IsDragging() bool {
	return e.state == GesturePanning
}

// IsPinching reports whether a two-pointer pinch is in progress.
func (e *Engine) IsPinching() bool {
	return e.state == GesturePinching
}

// Settled reports whether the animation loop is asleep.
func (e *Engine) Settled() bool {
	return !e.sched.pending()
}

// Bounds returns the legal translation range at the current scale. ok is
// false until the viewport size is known.
func (e *Engine) Bounds() (TranslateBounds, bool) {
	return e.bounds()
}

func (e *Engine) bounds() (TranslateBounds, bool) {
	return ComputeBounds(e.viewport, e.settings.World, e.m.xf.Scale)
}

// Overscroll returns how far the pan target lies outside the legal
// rectangle, signed per axis. It is zero when the target is in bounds.
func (e *Engine) Overscroll() Vec2 {
	b, ok := e.bounds()
	if !ok {
		return Vec2{}
	}
	cx, cy := b.Clamp(e.m.target.X, e.m.target.Y)
	return Vec2{X: e.m.target.X - cx, Y: e.m.target.Y - cy}
}

// Resize reports a new viewport pixel size. The first valid size centers the
// world origin in the viewport; later sizes keep the world point at the old
// center under the new center. Physics is not run here; the animation loop
// is woken to settle any resulting overflow.
func (e *Engine) Resize(width, height float64) {
	if e.closed {
		return
	}
	next := Size{Width: width, Height: height}
	if !next.known() || next == e.viewport {
		return
	}
	if e.viewport.known() {
		dx := (next.Width - e.viewport.Width) / 2
		dy := (next.Height - e.viewport.Height) / 2
		e.m.xf.X += dx
		e.m.xf.Y += dy
		e.m.target.X += dx
		e.m.target.Y += dy
		e.panStartTranslate.X += dx
		e.panStartTranslate.Y += dy
	} else {
		e.m.xf.X = next.Width / 2
		e.m.xf.Y = next.Height / 2
		e.m.target = Vec2{X: e.m.xf.X, Y: e.m.xf.Y}
		e.panStartTranslate = e.m.target
	}
	e.viewport = next
	e.m.focal = e.center()
	e.log.Debug("viewport resized", zap.Float64("width", width), zap.Float64("height", height))
	e.sched.wake()
}

func (e *Engine) center() Vec2 {
	return Vec2{X: e.viewport.Width / 2, Y: e.viewport.Height / 2}
}

// ZoomIn adds a positive scale impulse anchored at the viewport center.
func (e *Engine) ZoomIn() {
	e.buttonZoom(e.settings.ButtonZoomImpulse)
}

// ZoomOut adds a negative scale impulse anchored at the viewport center.
func (e *Engine) ZoomOut() {
	e.buttonZoom(-e.settings.ButtonZoomImpulse)
}

func (e *Engine) buttonZoom(delta float64) {
	if e.closed || !e.viewport.known() {
		return
	}
	e.cancelFlight()
	e.m.impulse(delta, e.center())
	e.emit(EventButtonZoom)
	e.sched.wake()
}

// CenterOn moves the viewport so the world point (wx, wy) sits at the
// viewport center, then lets physics settle it into bounds. An active drag
// continues from the new position.
func (e *Engine) CenterOn(wx, wy float64) {
	if e.closed || !e.viewport.known() {
		return
	}
	e.cancelFlight()
	c := e.center()
	e.m.xf.X = c.X - wx*e.m.xf.Scale
	e.m.xf.Y = c.Y - wy*e.m.xf.Scale
	e.m.target = Vec2{X: e.m.xf.X, Y: e.m.xf.Y}
	e.m.vel = Vec2{}
	if e.state == GesturePanning {
		// Keep dragging from the new position.
		if i := e.pointerIndex(e.panPointer); i >= 0 {
			e.panStartPointer = e.pointers[i].pos
		}
		e.panStartTranslate = e.m.target
	}
	e.sched.wake()
}

// Close detaches the engine from its host: the pending frame is cancelled,
// subscribers are dropped, and later input is ignored. Close is idempotent.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.sched.stop()
	e.flight = nil
	e.observers.handlers = nil
	e.regions = nil
	e.pointers = nil
	e.log.Debug("engine closed")
}

// integrate runs pan then zoom over dt in slices of at most one nominal
// frame, stopping early once both have settled.
func (e *Engine) integrate(dt time.Duration) bool {
	p := e.settings.Profile
	for {
		slice := min(dt, nominalFrameStep)
		dt -= slice
		timeScale := float64(slice) / float64(nominalFrameStep)

		b, ok := e.bounds()
		panSettled := e.m.stepPan(e.state == GesturePanning, b, ok, p, timeScale)
		zoomSettled := true
		if e.viewport.known() {
			zoomSettled = e.m.stepZoom(e.state == GesturePinching, e.settings.Scale, p, timeScale)
		}
		if (panSettled && zoomSettled) || dt <= 0 {
			return panSettled && zoomSettled
		}
	}
}

// step is the per-frame physics update run by the scheduler.
func (e *Engine) step(dt time.Duration) bool {
	var settled bool
	if e.flight != nil {
		settled = e.stepFlight(dt)
	} else {
		settled = e.integrate(dt)
	}

	e.publish()
	if settled {
		e.debugSleep()
		e.emit(EventSettled)
	}
	return settled
}
