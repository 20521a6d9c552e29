package glide

import "time"

// FrameSource is the host's display-refresh primitive. RequestFrame arranges
// for fn to be called once, on the host's input goroutine, at the next
// refresh. The returned cancel function withdraws the request if it has not
// run yet.
type FrameSource interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

type frameRequest struct {
	fn        func(now time.Time)
	cancelled bool
}

// FrameQueue is a FrameSource driven by explicit Pump calls. Hosts call Pump
// once per display refresh (ebiten's Update, a terminal ticker, a test loop).
type FrameQueue struct {
	pending []*frameRequest
	spare   []*frameRequest
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Pump.
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) func() {
	r := &frameRequest{fn: fn}
	q.pending = append(q.pending, r)
	return func() { r.cancelled = true }
}

// Pump runs every request queued before the call and returns how many ran.
// Requests made from inside a callback wait for the next Pump.
func (q *FrameQueue) Pump(now time.Time) int {
	if len(q.pending) == 0 {
		return 0
	}
	batch := q.pending
	q.pending = q.spare[:0]

	ran := 0
	for i, r := range batch {
		if !r.cancelled {
			r.fn(now)
			ran++
		}
		batch[i] = nil
	}
	q.spare = batch[:0]
	return ran
}

// Pending reports the number of live requests waiting for the next Pump.
func (q *FrameQueue) Pending() int {
	n := 0
	for _, r := range q.pending {
		if !r.cancelled {
			n++
		}
	}
	return n
}
