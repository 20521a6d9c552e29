package glide

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// flight holds the tweens of an animated FlyTo.
type flight struct {
	tweenX     *gween.Tween
	tweenY     *gween.Tween
	tweenScale *gween.Tween
	to         Transform
}

// FlyTo animates the viewport so the world point (wx, wy) ends at the
// viewport center at the given scale, over duration seconds. The scale is
// clamped to the configured limits and the end position to the bounds at
// that scale. Any new pan, pinch, wheel, or zoom button input cancels the
// flight; physics then takes over from wherever it stopped.
func (e *Engine) FlyTo(wx, wy, scale float64, duration float32, fn ease.TweenFunc) {
	if e.closed || !e.viewport.known() {
		return
	}
	if fn == nil {
		fn = ease.InOutCubic
	}
	scale = clamp(scale, e.settings.Scale.Min, e.settings.Scale.Max)
	c := e.center()
	to := Transform{X: c.X - wx*scale, Y: c.Y - wy*scale, Scale: scale}
	if b, ok := ComputeBounds(e.viewport, e.settings.World, scale); ok {
		to.X, to.Y = b.Clamp(to.X, to.Y)
	}

	from := e.m.xf
	e.flight = &flight{
		tweenX:     gween.New(float32(from.X), float32(to.X), duration, fn),
		tweenY:     gween.New(float32(from.Y), float32(to.Y), duration, fn),
		tweenScale: gween.New(float32(from.Scale), float32(to.Scale), duration, fn),
		to:         to,
	}
	e.m.vel = Vec2{}
	e.m.scaleVel = 0
	e.log.Debug("flight started",
		zap.Float64("x", to.X), zap.Float64("y", to.Y), zap.Float64("scale", to.Scale),
		zap.Float32("duration", duration))
	e.sched.wake()
}

// ResetView flies back to the world origin at scale 1 (clamped to limits).
func (e *Engine) ResetView(duration float32) {
	e.FlyTo(0, 0, 1, duration, ease.OutCubic)
}

// Flying reports whether a FlyTo animation is in progress.
func (e *Engine) Flying() bool {
	return e.flight != nil
}

func (e *Engine) cancelFlight() {
	if e.flight != nil {
		e.flight = nil
		e.log.Debug("flight cancelled")
	}
}

// stepFlight advances the flight tweens. It never reports settled so the
// frame after the flight lands runs normal physics.
func (e *Engine) stepFlight(dt time.Duration) bool {
	f := e.flight
	sec := float32(dt.Seconds())
	x, doneX := f.tweenX.Update(sec)
	y, doneY := f.tweenY.Update(sec)
	s, doneS := f.tweenScale.Update(sec)

	if doneX && doneY && doneS {
		e.m.xf = f.to
		e.flight = nil
	} else {
		e.m.xf = Transform{X: float64(x), Y: float64(y), Scale: float64(s)}
	}
	e.m.target = Vec2{X: e.m.xf.X, Y: e.m.xf.Y}
	e.m.targetScale = e.m.xf.Scale
	e.m.focal = e.center()
	return false
}
