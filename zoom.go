package glide

import "math"

const (
	scaleVelocityEpsilon = 1e-4
	scalePositionEpsilon = 1e-4

	// minimumScale keeps the focal ratio finite however hard a zoom-out
	// impulse is.
	minimumScale = 1e-3
)

// rescale changes the scale to s while keeping the focal point fixed on
// screen. Both the rendered translation and the pan target are re-anchored so
// pan physics does not pull against the zoom-induced shift on its next step.
func (m *motion) rescale(s float64) {
	if s < minimumScale {
		s = minimumScale
	}
	old := m.xf.Scale
	if old <= 0 || s == old {
		m.xf.Scale = s
		return
	}
	ratio := s / old
	f := m.focal
	m.xf.X = f.X - (f.X-m.xf.X)*ratio
	m.xf.Y = f.Y - (f.Y-m.xf.Y)*ratio
	m.target.X = f.X - (f.X-m.target.X)*ratio
	m.target.Y = f.Y - (f.Y-m.target.Y)*ratio
	m.xf.Scale = s
}

// stepZoom advances the scale by one step of timeScale nominal frames and
// reports whether zoom motion has settled.
//
// While pinching the scale follows the rubber-banded pinch target directly.
// Otherwise a spring returns it into limits, damped by zoom friction, which
// also coasts out any impulse from the wheel or the zoom buttons.
func (m *motion) stepZoom(pinching bool, limits ScaleLimits, p PhysicsProfile, timeScale float64) bool {
	if pinching {
		goal := RubberBand(m.targetScale, limits.Min, limits.Max, p.PinchRubberBandStiffness)
		lerp := 1 - math.Pow(1-p.ZoomLerpFactor, timeScale)
		m.scaleVel = (goal - m.xf.Scale) * lerp
		m.rescale(m.xf.Scale + m.scaleVel)
		if math.Abs(goal-m.xf.Scale) < scalePositionEpsilon {
			m.rescale(goal)
			m.scaleVel = 0
			return true
		}
		return false
	}

	clamped := clamp(m.xf.Scale, limits.Min, limits.Max)
	m.scaleVel += (clamped - m.xf.Scale) * p.ZoomSnapBackStiffness * timeScale
	m.scaleVel *= math.Pow(p.ZoomFriction, timeScale)
	m.rescale(m.xf.Scale + m.scaleVel*timeScale)

	clamped = clamp(m.xf.Scale, limits.Min, limits.Max)
	if math.Abs(m.scaleVel) < scaleVelocityEpsilon && math.Abs(clamped-m.xf.Scale) < scalePositionEpsilon {
		m.rescale(clamped)
		m.scaleVel = 0
		m.targetScale = clamped
		return true
	}
	return false
}

// impulse adds a signed scale velocity anchored at focal.
func (m *motion) impulse(delta float64, focal Vec2) {
	m.focal = focal
	m.scaleVel += delta
}
