package glide

import "math"

// --- Interactive regions ---

// HitShape is a screen-space region test used for interactive regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular region.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular region.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon region.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

type interactiveRegion struct {
	id    uint32
	shape HitShape
}

// RegionHandle allows removing a registered interactive region.
type RegionHandle struct {
	id uint32
	e  *Engine
}

// Remove unregisters the region. Removing twice is a no-op.
func (h RegionHandle) Remove() {
	if h.e == nil {
		return
	}
	rs := h.e.regions
	for i := range rs {
		if rs[i].id == h.id {
			copy(rs[i:], rs[i+1:])
			rs[len(rs)-1] = interactiveRegion{}
			h.e.regions = rs[:len(rs)-1]
			return
		}
	}
}

// AddInteractiveRegion marks a screen-space region as belonging to a
// control. Pointer-downs and wheel events inside it never reach the gesture
// state machine, so the control's own handlers receive them unobstructed.
func (e *Engine) AddInteractiveRegion(shape HitShape) RegionHandle {
	e.nextRegionID++
	e.regions = append(e.regions, interactiveRegion{id: e.nextRegionID, shape: shape})
	return RegionHandle{id: e.nextRegionID, e: e}
}

func (e *Engine) excluded(x, y float64, interactive bool) bool {
	if interactive {
		return true
	}
	for _, r := range e.regions {
		if r.shape.Contains(x, y) {
			return true
		}
	}
	return false
}

// --- Pointer tracking ---

type trackedPointer struct {
	id  PointerID
	pos Vec2
}

type pinchState struct {
	p0, p1   PointerID
	lastDist float64
}

func (e *Engine) pointerIndex(id PointerID) int {
	for i := range e.pointers {
		if e.pointers[i].id == id {
			return i
		}
	}
	return -1
}

func distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func midpoint(a, b Vec2) Vec2 {
	return Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// --- Input entry points ---

// PointerDown starts tracking a contact. The first contact starts a pan, the
// second turns it into a pinch. Further contacts are tracked but do not take
// part in the pinch. Contacts held after a wheel cancelled their pan stay
// inert, and new ones join them, until every contact is released.
func (e *Engine) PointerDown(ev PointerEvent) {
	if e.closed || e.excluded(ev.X, ev.Y, ev.Interactive) {
		return
	}
	if e.pointerIndex(ev.ID) >= 0 {
		e.PointerMove(ev)
		return
	}
	e.cancelFlight()
	e.pointers = append(e.pointers, trackedPointer{id: ev.ID, pos: Vec2{X: ev.X, Y: ev.Y}})

	switch {
	case len(e.pointers) == 1 && e.state == GestureIdle:
		e.enterPanning(e.pointers[0])
	case len(e.pointers) == 2 && e.state == GesturePanning:
		e.enterPinching()
	}
}

// PointerMove updates a tracked contact. Unknown ids are ignored.
func (e *Engine) PointerMove(ev PointerEvent) {
	if e.closed {
		return
	}
	i := e.pointerIndex(ev.ID)
	if i < 0 {
		return
	}
	pos := Vec2{X: ev.X, Y: ev.Y}
	e.pointers[i].pos = pos

	switch e.state {
	case GesturePanning:
		if ev.ID == e.panPointer {
			e.updatePanTarget(pos)
			e.sched.wake()
		}
	case GesturePinching:
		if ev.ID == e.pinch.p0 || ev.ID == e.pinch.p1 {
			e.updatePinch()
			e.sched.wake()
		}
	}
}

// PointerUp stops tracking a contact. Unknown ids are ignored.
func (e *Engine) PointerUp(ev PointerEvent) {
	if e.closed {
		return
	}
	i := e.pointerIndex(ev.ID)
	if i < 0 {
		return
	}
	e.pointers[i].pos = Vec2{X: ev.X, Y: ev.Y}
	e.release(i)
}

// PointerCancel drops a contact without a final position, as when the
// platform takes over the gesture.
func (e *Engine) PointerCancel(id PointerID) {
	if e.closed {
		return
	}
	if i := e.pointerIndex(id); i >= 0 {
		e.release(i)
	}
}

func (e *Engine) release(i int) {
	id := e.pointers[i].id
	e.pointers = append(e.pointers[:i], e.pointers[i+1:]...)

	switch e.state {
	case GesturePanning:
		if id == e.panPointer {
			e.enterIdle()
		}
	case GesturePinching:
		if len(e.pointers) < 2 {
			// Go through idle so the remaining contact starts a fresh pan from
			// where it is now instead of resuming an old anchor.
			e.enterIdle()
			if len(e.pointers) == 1 {
				e.enterPanning(e.pointers[0])
			}
		} else if id == e.pinch.p0 || id == e.pinch.p1 {
			e.seedPinch()
		}
	}
	if len(e.pointers) == 0 && e.state != GestureIdle {
		e.enterIdle()
	}
	e.sched.wake()
}

// Wheel applies a zoom impulse anchored at the cursor. It is ignored during
// a pinch or before the viewport has been measured, and cancels an active pan.
func (e *Engine) Wheel(ev WheelEvent) {
	if e.closed || !e.viewport.known() || e.state == GesturePinching || e.excluded(ev.X, ev.Y, ev.Interactive) {
		return
	}
	e.cancelFlight()
	if e.state == GesturePanning {
		e.enterIdle()
	}
	delta := -ev.DeltaY * e.settings.WheelSensitivity
	e.m.impulse(delta, Vec2{X: ev.X, Y: ev.Y})
	e.emit(EventWheelZoom)
	e.sched.wake()
}

// --- Transitions ---

func (e *Engine) enterIdle() {
	prev := e.state
	e.state = GestureIdle
	e.overscroll = false
	switch prev {
	case GesturePanning:
		e.emit(EventPanEnd)
	case GesturePinching:
		e.emit(EventPinchEnd)
	}
	e.logTransition(prev, GestureIdle)
}

func (e *Engine) enterPanning(p trackedPointer) {
	prev := e.state
	e.state = GesturePanning
	e.panPointer = p.id
	e.panStartPointer = p.pos
	e.panStartTranslate = Vec2{X: e.m.xf.X, Y: e.m.xf.Y}
	e.m.vel = Vec2{}
	e.m.scaleVel = 0
	e.m.target = e.panStartTranslate
	e.overscroll = false
	e.logTransition(prev, GesturePanning)
	e.emit(EventPanStart)
	e.sched.wake()
}

func (e *Engine) enterPinching() {
	prev := e.state
	if prev == GesturePanning {
		e.emit(EventPanEnd)
	}
	e.state = GesturePinching
	e.overscroll = false
	e.m.targetScale = e.m.xf.Scale
	e.seedPinch()
	e.logTransition(prev, GesturePinching)
	e.emit(EventPinchStart)
	e.sched.wake()
}

// seedPinch (re)binds the pinch to the first two tracked contacts without
// disturbing the accumulated target scale.
func (e *Engine) seedPinch() {
	a, b := e.pointers[0], e.pointers[1]
	e.pinch = pinchState{p0: a.id, p1: b.id, lastDist: distance(a.pos, b.pos)}
	e.m.focal = midpoint(a.pos, b.pos)
}

func (e *Engine) updatePinch() {
	i0, i1 := e.pointerIndex(e.pinch.p0), e.pointerIndex(e.pinch.p1)
	if i0 < 0 || i1 < 0 {
		return
	}
	a, b := e.pointers[i0].pos, e.pointers[i1].pos
	e.m.focal = midpoint(a, b)
	d := distance(a, b)
	if d <= 0 {
		return
	}
	if e.pinch.lastDist > 0 {
		e.m.targetScale *= d / e.pinch.lastDist
	}
	e.pinch.lastDist = d
}

// updatePanTarget derives the pan target from the total pointer travel since
// the gesture started, so frame-to-frame rounding never accumulates.
func (e *Engine) updatePanTarget(pos Vec2) {
	raw := Vec2{
		X: e.panStartTranslate.X + (pos.X - e.panStartPointer.X),
		Y: e.panStartTranslate.Y + (pos.Y - e.panStartPointer.Y),
	}
	b, ok := e.bounds()
	if !ok {
		e.m.target = raw
		return
	}
	k := e.settings.Profile.RubberBandStiffness
	e.m.target = Vec2{
		X: RubberBand(raw.X, b.MinX, b.MaxX, k),
		Y: RubberBand(raw.Y, b.MinY, b.MaxY, k),
	}
	over := !b.Contains(raw.X, raw.Y)
	if over && !e.overscroll {
		e.emit(EventRubberBand)
	}
	e.overscroll = over
}
