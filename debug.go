package glide

import "go.uber.org/zap"

// SetDebugMode enables or disables debug logging. When enabled, gesture
// transitions and per-wake frame counts are written to the engine's logger
// at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// logTransition records a gesture state change.
func (e *Engine) logTransition(from, to GestureState) {
	if !e.debug || from == to {
		return
	}
	e.log.Debug("gesture",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("pointers", len(e.pointers)),
	)
}

// debugSleep reports how many frames the loop ran since it last woke.
func (e *Engine) debugSleep() {
	frames := e.sched.run
	e.sched.run = 0
	if !e.debug {
		return
	}
	xf := e.m.xf
	e.log.Debug("settled",
		zap.Int("frames", frames),
		zap.Float64("x", xf.X),
		zap.Float64("y", xf.Y),
		zap.Float64("scale", xf.Scale),
	)
}
