package glide

// Status is a snapshot of everything a HUD typically shows.
type Status struct {
	Transform Transform
	Viewport  Size
	State     GestureState
	Settled   bool
	Flying    bool
	Scale     ScaleLimits
}

// Status returns the engine's current status snapshot.
func (e *Engine) Status() Status {
	return Status{
		Transform: e.m.xf,
		Viewport:  e.viewport,
		State:     e.state,
		Settled:   e.Settled(),
		Flying:    e.flight != nil,
		Scale:     e.settings.Scale,
	}
}

// WorldRenderer draws world content into a host surface of type T. visible
// is the world-space rectangle covered by the viewport; content outside it
// can be skipped.
type WorldRenderer[T any] interface {
	DrawWorld(dst T, xf Transform, visible Rect)
}

// HudRenderer draws screen-space overlays into a host surface of type T.
type HudRenderer[T any] interface {
	DrawHUD(dst T, status Status)
}

// WorldRendererFunc adapts a plain function to WorldRenderer.
type WorldRendererFunc[T any] func(dst T, xf Transform, visible Rect)

// DrawWorld calls f.
func (f WorldRendererFunc[T]) DrawWorld(dst T, xf Transform, visible Rect) {
	f(dst, xf, visible)
}

// HudRendererFunc adapts a plain function to HudRenderer.
type HudRendererFunc[T any] func(dst T, status Status)

// DrawHUD calls f.
func (f HudRendererFunc[T]) DrawHUD(dst T, status Status) {
	f(dst, status)
}
