package glide

import (
	"testing"
	"time"
)

func TestFrameQueuePumpRunsQueued(t *testing.T) {
	q := NewFrameQueue()
	var got []time.Time
	q.RequestFrame(func(now time.Time) { got = append(got, now) })
	q.RequestFrame(func(now time.Time) { got = append(got, now) })

	now := time.Unix(10, 0)
	if n := q.Pump(now); n != 2 {
		t.Fatalf("Pump = %d, want 2", n)
	}
	if len(got) != 2 || !got[0].Equal(now) {
		t.Errorf("callbacks saw %v", got)
	}
	if n := q.Pump(now); n != 0 {
		t.Errorf("second Pump = %d, want 0", n)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	cancel := q.RequestFrame(func(time.Time) { ran = true })
	if q.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", q.Pending())
	}
	cancel()
	if q.Pending() != 0 {
		t.Errorf("Pending after cancel = %d, want 0", q.Pending())
	}
	if n := q.Pump(time.Now()); n != 0 || ran {
		t.Errorf("cancelled request ran (Pump = %d)", n)
	}
}

func TestFrameQueueRequestFromCallbackWaits(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var fn func(time.Time)
	fn = func(time.Time) {
		calls++
		q.RequestFrame(fn)
	}
	q.RequestFrame(fn)

	for i := 0; i < 3; i++ {
		if n := q.Pump(time.Unix(int64(i), 0)); n != 1 {
			t.Fatalf("Pump %d = %d, want 1", i, n)
		}
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", q.Pending())
	}
}
