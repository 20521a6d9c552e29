package glide

// Vec2 is a 2D vector used for screen points, world points, and velocities.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair, used for both the world and the viewport.
type Size struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// known reports whether both dimensions have been measured.
func (s Size) known() bool {
	return s.Width > 0 && s.Height > 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Transform maps world space to screen space:
//
//	screen = (X, Y) + world * Scale
//
// It is owned by the Engine and handed out by value.
type Transform struct {
	X, Y  float64
	Scale float64
}

// IdentityTransform is the transform reported before the first resize.
var IdentityTransform = Transform{Scale: 1}

// WorldToScreen converts world coordinates to screen coordinates.
func (t Transform) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return t.X + wx*t.Scale, t.Y + wy*t.Scale
}

// ScreenToWorld converts screen coordinates to world coordinates.
// A non-positive scale maps every point to the world origin.
func (t Transform) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	if t.Scale <= 0 {
		return 0, 0
	}
	return (sx - t.X) / t.Scale, (sy - t.Y) / t.Scale
}

// VisibleBounds returns the world-space rectangle covered by a viewport of
// the given pixel size. Renderers use it for visibility culling.
func (t Transform) VisibleBounds(viewport Size) Rect {
	if t.Scale <= 0 || !viewport.known() {
		return Rect{}
	}
	x0, y0 := t.ScreenToWorld(0, 0)
	return Rect{X: x0, Y: y0, Width: viewport.Width / t.Scale, Height: viewport.Height / t.Scale}
}

// GestureState is the gesture state machine's current classification of
// pointer input.
type GestureState uint8

const (
	GestureIdle     GestureState = iota // no active gesture
	GesturePanning                      // one pointer drives the pan target
	GesturePinching                     // two pointers drive scale and focal point
)

// String returns the lower-case state name.
func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GesturePanning:
		return "panning"
	case GesturePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of gesture event delivered to an EventSink.
type EventType uint8

const (
	EventPanStart    EventType = iota // a single pointer started panning
	EventPanEnd                       // panning ended (release, wheel, or second pointer)
	EventPinchStart                   // a second pointer started a pinch
	EventPinchEnd                     // the pinch pair was broken
	EventWheelZoom                    // a wheel impulse was applied
	EventButtonZoom                   // ZoomIn or ZoomOut was called
	EventRubberBand                   // the pan target crossed into the elastic region
	EventSettled                      // both physics systems settled and the loop slept
)

// String returns a short event name for logs.
func (e EventType) String() string {
	switch e {
	case EventPanStart:
		return "pan_start"
	case EventPanEnd:
		return "pan_end"
	case EventPinchStart:
		return "pinch_start"
	case EventPinchEnd:
		return "pinch_end"
	case EventWheelZoom:
		return "wheel_zoom"
	case EventButtonZoom:
		return "button_zoom"
	case EventRubberBand:
		return "rubber_band"
	case EventSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// PointerID is a stable per-contact identifier. Hosts conventionally use 0
// for the mouse and positive values for touch contacts.
type PointerID int

// PointerEvent carries a screen-space pointer position.
type PointerEvent struct {
	ID   PointerID
	X, Y float64
	// Interactive marks events whose target is a control (button, form field)
	// that must receive the input unobstructed.
	Interactive bool
}

// WheelEvent carries a wheel delta at a screen-space cursor position.
// Negative DeltaY zooms in.
type WheelEvent struct {
	X, Y        float64
	DeltaY      float64
	Interactive bool
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
