package chart

// FrameQueue is a FrameScheduler for hosts that own their display loop: the
// host calls Fire once per frame. At most one request is pending; a new
// request replaces the previous one.
type FrameQueue struct {
	next    FrameToken
	pending func(Surface)
	token   FrameToken
}

func (q *FrameQueue) RequestFrame(fn func(Surface)) FrameToken {
	q.next++
	q.token = q.next
	q.pending = fn
	return q.token
}

// CancelFrame drops the pending request if tok still identifies it.
func (q *FrameQueue) CancelFrame(tok FrameToken) {
	if q.pending != nil && q.token == tok {
		q.pending = nil
	}
}

// Pending reports whether a callback is waiting for the next frame.
func (q *FrameQueue) Pending() bool { return q.pending != nil }

// Fire runs the pending callback, if any, against s. Requests made by the
// callback wait for the next Fire.
func (q *FrameQueue) Fire(s Surface) bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	fn(s)
	return true
}
