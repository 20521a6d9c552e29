package glide

// TranslateBounds is the legal range for Transform.X and Transform.Y at a
// particular scale.
type TranslateBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp returns (x, y) restricted to the bounds.
func (b TranslateBounds) Clamp(x, y float64) (float64, float64) {
	return clamp(x, b.MinX, b.MaxX), clamp(y, b.MinY, b.MaxY)
}

// Contains reports whether (x, y) lies inside the bounds, edges included.
func (b TranslateBounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// ComputeBounds returns the allowed translation range for a world of the
// given size, centered on the world origin, shown at scale inside a
// viewport. On an axis where the scaled world is smaller than the viewport
// the content is centered and min equals max; otherwise it must cover the
// viewport edge to edge.
//
// ok is false while the viewport has not been measured or scale is not
// positive; callers skip any bounds-dependent work in that case.
func ComputeBounds(viewport, world Size, scale float64) (b TranslateBounds, ok bool) {
	if !viewport.known() || scale <= 0 {
		return TranslateBounds{}, false
	}
	b.MinX, b.MaxX = axisBounds(viewport.Width, world.Width, scale)
	b.MinY, b.MaxY = axisBounds(viewport.Height, world.Height, scale)
	return b, true
}

func axisBounds(view, size, scale float64) (lo, hi float64) {
	scaled := size * scale
	origin := -size / 2
	if scaled <= view {
		c := (view-scaled)/2 - origin*scale
		return c, c
	}
	return view - (origin+size)*scale, -origin * scale
}
