package glide

import "math"

// Settle thresholds for pan physics, in screen pixels (per nominal frame for
// velocity).
const (
	panVelocityEpsilon = 0.01
	panPositionEpsilon = 0.1
)

// motion is the mutable physics state shared by pan and zoom integration.
// xf is the rendered transform; target and targetScale are where input wants
// it to go.
type motion struct {
	xf       Transform
	vel      Vec2
	target   Vec2
	scaleVel float64
	// targetScale is the pinch-implied scale, rubber banded at step time.
	targetScale float64
	focal       Vec2
}

// RubberBand compresses the part of raw that lies outside [lo, hi]:
//
//	bound + (raw - bound) * (1 - stiffness)
//
// Values inside the range are returned unchanged.
func RubberBand(raw, lo, hi, stiffness float64) float64 {
	switch {
	case raw < lo:
		return lo + (raw-lo)*(1-stiffness)
	case raw > hi:
		return hi + (raw-hi)*(1-stiffness)
	default:
		return raw
	}
}

// stepPan advances translation by one step of timeScale nominal frames and
// reports whether pan motion has settled.
//
// While panning the transform chases the drag target. Otherwise a spring
// pulls it toward the nearest legal position while friction bleeds off the
// release velocity.
func (m *motion) stepPan(panning bool, bounds TranslateBounds, ok bool, p PhysicsProfile, timeScale float64) bool {
	if panning {
		lerp := 1 - math.Pow(1-p.PanLerpFactor, timeScale)
		nx := m.xf.X + (m.target.X-m.xf.X)*lerp
		ny := m.xf.Y + (m.target.Y-m.xf.Y)*lerp
		m.vel = Vec2{X: nx - m.xf.X, Y: ny - m.xf.Y}
		m.xf.X, m.xf.Y = nx, ny

		if math.Abs(m.target.X-m.xf.X) < panPositionEpsilon && math.Abs(m.target.Y-m.xf.Y) < panPositionEpsilon {
			m.xf.X, m.xf.Y = m.target.X, m.target.Y
			return true
		}
		return false
	}

	if !ok {
		m.vel = Vec2{}
		return true
	}

	cx, cy := bounds.Clamp(m.xf.X, m.xf.Y)
	friction := math.Pow(p.PanFriction, timeScale)

	m.vel.X += (cx - m.xf.X) * p.SnapBackStiffness * timeScale
	m.vel.Y += (cy - m.xf.Y) * p.SnapBackStiffness * timeScale
	m.vel.X *= friction
	m.vel.Y *= friction
	m.xf.X += m.vel.X * timeScale
	m.xf.Y += m.vel.Y * timeScale

	cx, cy = bounds.Clamp(m.xf.X, m.xf.Y)
	if math.Abs(m.vel.X) < panVelocityEpsilon && math.Abs(m.vel.Y) < panVelocityEpsilon &&
		math.Abs(cx-m.xf.X) < panPositionEpsilon && math.Abs(cy-m.xf.Y) < panPositionEpsilon {
		m.xf.X, m.xf.Y = cx, cy
		m.vel = Vec2{}
		m.target = Vec2{X: cx, Y: cy}
		return true
	}
	return false
}
