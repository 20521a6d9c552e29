package glide

import "testing"

type fakeSurface struct {
	worldCalls int
	hudCalls   int
	visible    Rect
	status     Status
}

func TestRendererFuncAdapters(t *testing.T) {
	e, _ := newTestEngine(t)
	var world WorldRenderer[*fakeSurface] = WorldRendererFunc[*fakeSurface](
		func(dst *fakeSurface, xf Transform, visible Rect) {
			dst.worldCalls++
			dst.visible = visible
		})
	var hud HudRenderer[*fakeSurface] = HudRendererFunc[*fakeSurface](
		func(dst *fakeSurface, st Status) {
			dst.hudCalls++
			dst.status = st
		})

	dst := &fakeSurface{}
	xf := e.Transform()
	world.DrawWorld(dst, xf, xf.VisibleBounds(e.Viewport()))
	hud.DrawHUD(dst, e.Status())

	if dst.worldCalls != 1 || dst.hudCalls != 1 {
		t.Fatalf("calls = %d/%d, want 1/1", dst.worldCalls, dst.hudCalls)
	}
	want := Rect{X: -400, Y: -300, Width: 800, Height: 600}
	if dst.visible != want {
		t.Errorf("visible = %+v, want %+v", dst.visible, want)
	}
	if dst.status.Viewport != (Size{Width: 800, Height: 600}) {
		t.Errorf("status viewport = %+v", dst.status.Viewport)
	}
}

func TestVisibleBoundsCulling(t *testing.T) {
	xf := Transform{X: 100, Y: 100, Scale: 2}
	vis := xf.VisibleBounds(Size{Width: 400, Height: 200})
	if vis != (Rect{X: -50, Y: -50, Width: 200, Height: 100}) {
		t.Fatalf("VisibleBounds = %+v", vis)
	}
	if !vis.Intersects(Rect{X: 140, Y: 40, Width: 20, Height: 20}) {
		t.Error("overlapping rect should intersect")
	}
	if vis.Intersects(Rect{X: 151, Y: 0, Width: 10, Height: 10}) {
		t.Error("rect past the right edge should not intersect")
	}
	if (Transform{}).VisibleBounds(Size{Width: 1, Height: 1}) != (Rect{}) {
		t.Error("zero scale should yield an empty rect")
	}
}
