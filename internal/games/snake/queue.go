package snake

// DefaultQueueLimit bounds how many steering intents may wait between ticks.
const DefaultQueueLimit = 3

// DirectionQueue buffers steering intents between simulation ticks.
// Rapid taps are kept in arrival order; a tap that would reverse the
// effective heading is rejected so the snake cannot turn back into itself.
type DirectionQueue struct {
	pending []Direction
	limit   int
}

// NewDirectionQueue creates a queue holding at most limit intents.
// A non-positive limit falls back to DefaultQueueLimit.
func NewDirectionQueue(limit int) *DirectionQueue {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	return &DirectionQueue{
		pending: make([]Direction, 0, limit),
		limit:   limit,
	}
}

// Enqueue appends intent unless it is the opposite of the effective heading:
// the last queued intent, or live when nothing is queued.
// When the queue is full the oldest intent is dropped to make room.
func (q *DirectionQueue) Enqueue(intent, live Direction) bool {
	if intent.IsZero() {
		return false
	}

	heading := live
	if n := len(q.pending); n > 0 {
		heading = q.pending[n-1]
	}
	if intent.IsOpposite(heading) {
		return false
	}

	if len(q.pending) >= q.limit {
		q.pending = append(q.pending[:0], q.pending[1:]...)
	}
	q.pending = append(q.pending, intent)
	return true
}

// Next pops the front intent and returns the velocity for this tick.
// The popped intent replaces live unless it would reverse it.
func (q *DirectionQueue) Next(live Direction) Direction {
	if len(q.pending) == 0 {
		return live
	}

	next := q.pending[0]
	q.pending = append(q.pending[:0], q.pending[1:]...)

	if next.IsOpposite(live) {
		return live
	}
	return next
}

// Len returns the number of pending intents.
func (q *DirectionQueue) Len() int {
	return len(q.pending)
}

// Pending returns a copy of the queued intents, front first.
func (q *DirectionQueue) Pending() []Direction {
	out := make([]Direction, len(q.pending))
	copy(out, q.pending)
	return out
}

// Reset discards all pending intents.
func (q *DirectionQueue) Reset() {
	q.pending = q.pending[:0]
}
