package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventOverlap carries an OverlapEvent.
	EventOverlap = "overlap"
)

// OverlapEvent reports that the player's bounds intersected a trigger this frame.
type OverlapEvent struct {
	Player  Entity
	Trigger Entity
	Group   string
}

// EventQueue is a FIFO queue cleared at the end of every frame, so every
// system later in the frame can read what earlier systems pushed.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each visits queued events of the given type in push order.
func (q *EventQueue) Each(eventType string, fn func(Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == eventType {
			fn(evt)
		}
	}
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
