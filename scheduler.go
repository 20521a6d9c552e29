package glide

import "time"

const (
	// nominalFrameStep is the frame length the physics constants are tuned
	// for. Steps of other lengths are scaled by their ratio to it.
	nominalFrameStep = time.Second / 60
	// maxFrameStep caps a single step after a host stall.
	maxFrameStep = 100 * time.Millisecond
)

// scheduler drives the physics step once per display refresh while motion is
// unsettled and sleeps otherwise. At most one frame request is outstanding.
type scheduler struct {
	frames FrameSource
	cancel func()
	step   func(dt time.Duration) (settled bool)

	// last is the time of the previous frame; valid only while awake.
	last   time.Time
	awake  bool
	closed bool

	// frames run since the last wake, for debug stats.
	run int
}

// wake requests a frame unless one is already pending.
func (s *scheduler) wake() {
	if s.closed || s.cancel != nil || s.frames == nil {
		return
	}
	s.cancel = s.frames.RequestFrame(s.onFrame)
}

func (s *scheduler) onFrame(now time.Time) {
	s.cancel = nil
	if s.closed {
		return
	}

	// The first frame after a sleep has no meaningful baseline.
	dt := nominalFrameStep
	if s.awake {
		dt = now.Sub(s.last)
		if dt <= 0 {
			dt = nominalFrameStep
		}
		if dt > maxFrameStep {
			dt = maxFrameStep
		}
	}
	s.last = now
	s.awake = true
	s.run++

	if s.step(dt) {
		s.awake = false
		return
	}
	s.wake()
}

// pending reports whether a frame request is outstanding.
func (s *scheduler) pending() bool {
	return s.cancel != nil
}

// stop cancels the outstanding request and refuses further ones.
func (s *scheduler) stop() {
	s.closed = true
	s.awake = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
