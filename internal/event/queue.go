package event

// Queue is the per-tick event FIFO. Producers Push during a tick; the
// scheduler Drains it once per frame.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain removes and returns every pending event in insertion order.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.events) }
