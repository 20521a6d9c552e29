package glide

import (
	"testing"
	"time"
)

// scriptedScheduler returns a scheduler whose step records dt and reports
// settled once steps reaches settleAfter.
func scriptedScheduler(q *FrameQueue, settleAfter int) (*scheduler, *[]time.Duration) {
	var dts []time.Duration
	s := &scheduler{frames: q}
	s.step = func(dt time.Duration) bool {
		dts = append(dts, dt)
		return len(dts) >= settleAfter
	}
	return s, &dts
}

func TestSchedulerWakeIsIdempotent(t *testing.T) {
	q := NewFrameQueue()
	s, _ := scriptedScheduler(q, 1)

	s.wake()
	s.wake()
	s.wake()
	if q.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", q.Pending())
	}
	if !s.pending() {
		t.Error("scheduler should report a pending request")
	}
}

func TestSchedulerFirstFrameUsesNominalStep(t *testing.T) {
	q := NewFrameQueue()
	s, dts := scriptedScheduler(q, 3)
	base := time.Unix(100, 0)

	s.wake()
	q.Pump(base)
	q.Pump(base.Add(20 * time.Millisecond))
	q.Pump(base.Add(30 * time.Millisecond))

	want := []time.Duration{nominalFrameStep, 20 * time.Millisecond, 10 * time.Millisecond}
	if len(*dts) != len(want) {
		t.Fatalf("dts = %v, want %v", *dts, want)
	}
	for i := range want {
		if (*dts)[i] != want[i] {
			t.Errorf("dt[%d] = %v, want %v", i, (*dts)[i], want[i])
		}
	}
	if s.pending() {
		t.Error("scheduler should sleep after settling")
	}

	// After sleeping for a long time the next wake starts from nominal again.
	s.wake()
	q.Pump(base.Add(time.Hour))
	if got := (*dts)[3]; got != nominalFrameStep {
		t.Errorf("dt after sleep = %v, want %v", got, nominalFrameStep)
	}
}

func TestSchedulerCapsLongFrames(t *testing.T) {
	q := NewFrameQueue()
	s, dts := scriptedScheduler(q, 2)
	base := time.Unix(0, 0)

	s.wake()
	q.Pump(base)
	q.Pump(base.Add(2 * time.Second))

	if got := (*dts)[1]; got != maxFrameStep {
		t.Errorf("dt = %v, want capped %v", got, maxFrameStep)
	}
}

func TestSchedulerStopCancelsPending(t *testing.T) {
	q := NewFrameQueue()
	s, dts := scriptedScheduler(q, 10)

	s.wake()
	s.stop()
	if q.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", q.Pending())
	}
	q.Pump(time.Now())
	s.wake()
	q.Pump(time.Now())
	if len(*dts) != 0 {
		t.Errorf("stopped scheduler stepped %d times", len(*dts))
	}
}

func TestEngineCloseCancelsFrame(t *testing.T) {
	e, q := newTestEngine(t)
	if q.Pending() != 1 {
		t.Fatalf("Resize should request a frame, Pending = %d", q.Pending())
	}
	e.Close()
	e.Close()
	if q.Pending() != 0 {
		t.Errorf("Pending after Close = %d, want 0", q.Pending())
	}
	if !e.Settled() {
		t.Error("closed engine should report settled")
	}
}
