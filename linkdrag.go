package glide

// LinkDrag is the one connector drag in progress, shared by every connector
// widget on a canvas. Create one per canvas and hand it to each connector;
// at most one drag is active at a time.
//
// Positions are stored in world space so the wire stays attached to the
// content while the viewport pans or zooms underneath it.
type LinkDrag struct {
	active bool
	cur    LinkDragState
	seq    uint64
}

// LinkDragState describes an active connector drag.
type LinkDragState struct {
	// Seq increases with every Begin, letting connectors tell drags apart.
	Seq    uint64
	Source string
	From   Vec2
	Cursor Vec2
}

// NewLinkDrag creates an idle drag context.
func NewLinkDrag() *LinkDrag {
	return &LinkDrag{}
}

// Begin starts a drag from the connector named source at world point from.
// It returns false if another drag is already active.
func (d *LinkDrag) Begin(source string, from Vec2) bool {
	if d.active {
		return false
	}
	d.seq++
	d.active = true
	d.cur = LinkDragState{Seq: d.seq, Source: source, From: from, Cursor: from}
	return true
}

// MoveScreen updates the cursor from a screen-space pointer position.
func (d *LinkDrag) MoveScreen(xf Transform, sx, sy float64) {
	if !d.active {
		return
	}
	wx, wy := xf.ScreenToWorld(sx, sy)
	d.cur.Cursor = Vec2{X: wx, Y: wy}
}

// Current returns the active drag, if any.
func (d *LinkDrag) Current() (LinkDragState, bool) {
	return d.cur, d.active
}

// End finishes the active drag and returns its final state.
func (d *LinkDrag) End() (LinkDragState, bool) {
	if !d.active {
		return LinkDragState{}, false
	}
	st := d.cur
	d.active = false
	d.cur = LinkDragState{}
	return st, true
}
