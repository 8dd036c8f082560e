package input

// Queue is a FIFO of pending key codes. Keys that are not consumed in a
// tick stay queued for the next one.
type Queue struct {
	keys []Key
}

// Push appends a key in arrival order.
func (q *Queue) Push(k Key) {
	q.keys = append(q.keys, k)
}

// Pop removes and returns the oldest key.
func (q *Queue) Pop() (Key, bool) {
	if len(q.keys) == 0 {
		return KeyNone, false
	}
	k := q.keys[0]
	q.keys[0] = KeyNone
	q.keys = q.keys[1:]
	return k, true
}

// Len returns the number of queued keys.
func (q *Queue) Len() int { return len(q.keys) }
