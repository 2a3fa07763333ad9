package event

// Queue buffers events between the model mutations of one tick and the view
// update that follows it. Single-threaded: models push, the host drains.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 32)}
}

// Emit appends an event
func (q *Queue) Emit(e Event) {
	q.events = append(q.events, e)
}

// Drain returns pending events in FIFO order and empties the queue
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Count returns how many pending events have the given kind
func (q *Queue) Count(k Kind) int {
	n := 0
	for _, e := range q.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
