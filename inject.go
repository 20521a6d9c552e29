package glide

import "time"

type syntheticKind uint8

const (
	synthDown syntheticKind = iota
	synthMove
	synthUp
	synthWheel
	synthResize
	synthZoomIn
	synthZoomOut
)

// syntheticEvent is a single injected input event. Screen coordinates are
// used, exactly as a host would forward them.
type syntheticEvent struct {
	kind   syntheticKind
	id     PointerID
	x, y   float64
	deltaY float64
}

// Simulator drives an Engine headlessly: injected events are applied one
// frame's worth at a time and the engine's FrameQueue is pumped with a fixed
// clock. It is the harness behind the script runner and the CLI.
type Simulator struct {
	engine *Engine
	frames *FrameQueue
	now    time.Time
	frame  int

	// FrameStep is the simulated time between frames.
	FrameStep time.Duration

	queue [][]syntheticEvent
}

// NewSimulator creates an engine backed by a FrameQueue and reports the
// given viewport size to it.
func NewSimulator(cfg Config, viewport Size, opts ...Option) (*Simulator, error) {
	q := NewFrameQueue()
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithFrameSource(q))
	e, err := New(cfg, all...)
	if err != nil {
		return nil, err
	}
	e.Resize(viewport.Width, viewport.Height)
	return &Simulator{
		engine:    e,
		frames:    q,
		now:       time.Unix(0, 0),
		FrameStep: nominalFrameStep,
	}, nil
}

// Engine returns the simulated engine.
func (s *Simulator) Engine() *Engine {
	return s.engine
}

// Now returns the simulated clock.
func (s *Simulator) Now() time.Time {
	return s.now
}

// Frame returns the number of frames advanced so far.
func (s *Simulator) Frame() int {
	return s.frame
}

// Idle reports whether no injected events are waiting.
func (s *Simulator) Idle() bool {
	return len(s.queue) == 0
}

// Advance applies the next frame of injected events, moves the clock one
// FrameStep forward, and pumps the frame queue.
func (s *Simulator) Advance() {
	if len(s.queue) > 0 {
		batch := s.queue[0]
		copy(s.queue, s.queue[1:])
		s.queue[len(s.queue)-1] = nil
		s.queue = s.queue[:len(s.queue)-1]
		for _, ev := range batch {
			s.apply(ev)
		}
	}
	s.now = s.now.Add(s.FrameStep)
	s.frame++
	s.frames.Pump(s.now)
}

// AdvanceFrames calls Advance n times.
func (s *Simulator) AdvanceFrames(n int) {
	for i := 0; i < n; i++ {
		s.Advance()
	}
}

// RunUntilSettled advances until the injected events are drained and the
// engine's animation loop sleeps, or max frames have passed. It returns the
// number of frames advanced and whether the engine settled.
func (s *Simulator) RunUntilSettled(max int) (int, bool) {
	for i := 0; i < max; i++ {
		if s.Idle() && s.engine.Settled() {
			return i, true
		}
		s.Advance()
	}
	return max, s.Idle() && s.engine.Settled()
}

func (s *Simulator) apply(ev syntheticEvent) {
	e := s.engine
	switch ev.kind {
	case synthDown:
		e.PointerDown(PointerEvent{ID: ev.id, X: ev.x, Y: ev.y})
	case synthMove:
		e.PointerMove(PointerEvent{ID: ev.id, X: ev.x, Y: ev.y})
	case synthUp:
		e.PointerUp(PointerEvent{ID: ev.id, X: ev.x, Y: ev.y})
	case synthWheel:
		e.Wheel(WheelEvent{X: ev.x, Y: ev.y, DeltaY: ev.deltaY})
	case synthResize:
		e.Resize(ev.x, ev.y)
	case synthZoomIn:
		e.ZoomIn()
	case synthZoomOut:
		e.ZoomOut()
	}
}

func (s *Simulator) push(evs ...syntheticEvent) {
	s.queue = append(s.queue, evs)
}

// InjectDown queues a pointer press at the given screen coordinates.
func (s *Simulator) InjectDown(id PointerID, x, y float64) {
	s.push(syntheticEvent{kind: synthDown, id: id, x: x, y: y})
}

// InjectMove queues a pointer move.
func (s *Simulator) InjectMove(id PointerID, x, y float64) {
	s.push(syntheticEvent{kind: synthMove, id: id, x: x, y: y})
}

// InjectUp queues a pointer release.
func (s *Simulator) InjectUp(id PointerID, x, y float64) {
	s.push(syntheticEvent{kind: synthUp, id: id, x: x, y: y})
}

// InjectWheel queues a wheel event at the cursor position.
func (s *Simulator) InjectWheel(x, y, deltaY float64) {
	s.push(syntheticEvent{kind: synthWheel, x: x, y: y, deltaY: deltaY})
}

// InjectResize queues a viewport resize.
func (s *Simulator) InjectResize(width, height float64) {
	s.push(syntheticEvent{kind: synthResize, x: width, y: height})
}

// InjectZoomIn queues a zoom-in button press.
func (s *Simulator) InjectZoomIn() {
	s.push(syntheticEvent{kind: synthZoomIn})
}

// InjectZoomOut queues a zoom-out button press.
func (s *Simulator) InjectZoomOut() {
	s.push(syntheticEvent{kind: synthZoomOut})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Simulator) InjectDrag(id PointerID, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectDown(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectUp(id, toX, toY)
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy)
// whose finger spacing goes from fromDist to toDist. Pointer ids 1 and 2 are
// used. The sequence consumes `frames` frames, minimum 2.
func (s *Simulator) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h := fromDist / 2
	s.push(
		syntheticEvent{kind: synthDown, id: 1, x: cx - h, y: cy},
		syntheticEvent{kind: synthDown, id: 2, x: cx + h, y: cy},
	)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		h = (fromDist + (toDist-fromDist)*t) / 2
		s.push(
			syntheticEvent{kind: synthMove, id: 1, x: cx - h, y: cy},
			syntheticEvent{kind: synthMove, id: 2, x: cx + h, y: cy},
		)
	}
	h = toDist / 2
	s.push(
		syntheticEvent{kind: synthUp, id: 1, x: cx - h, y: cy},
		syntheticEvent{kind: synthUp, id: 2, x: cx + h, y: cy},
	)
}
