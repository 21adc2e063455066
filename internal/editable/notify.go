package editable

// Notifier receives the outward notifications of a Field.
//
// Each method is called exactly once per matching transition, after the
// field's state has been updated.
type Notifier[T any] interface {
	StartEdit()
	UpdateText(value T)
	CancelEdit()
}

// Callbacks adapts plain functions to a Notifier. Nil functions are skipped.
type Callbacks[T any] struct {
	OnStartEdit  func()
	OnUpdateText func(value T)
	OnCancelEdit func()
}

func (c Callbacks[T]) StartEdit() {
	if c.OnStartEdit != nil {
		c.OnStartEdit()
	}
}

func (c Callbacks[T]) UpdateText(value T) {
	if c.OnUpdateText != nil {
		c.OnUpdateText(value)
	}
}

func (c Callbacks[T]) CancelEdit() {
	if c.OnCancelEdit != nil {
		c.OnCancelEdit()
	}
}

// EventKind identifies a notification.
type EventKind int

const (
	EventStartEdit EventKind = iota
	EventUpdateText
	EventCancelEdit
)

func (k EventKind) String() string {
	switch k {
	case EventStartEdit:
		return "startEdit"
	case EventUpdateText:
		return "updateText"
	case EventCancelEdit:
		return "cancelEdit"
	default:
		return "unknown"
	}
}

// Event is the message form of a notification. Value is only set for
// EventUpdateText.
type Event[T any] struct {
	Kind  EventKind
	Value T
}

// Recorder is a Notifier that keeps every event in order.
type Recorder[T any] struct {
	Events []Event[T]
}

func (r *Recorder[T]) StartEdit() {
	r.Events = append(r.Events, Event[T]{Kind: EventStartEdit})
}

func (r *Recorder[T]) UpdateText(value T) {
	r.Events = append(r.Events, Event[T]{Kind: EventUpdateText, Value: value})
}

func (r *Recorder[T]) CancelEdit() {
	r.Events = append(r.Events, Event[T]{Kind: EventCancelEdit})
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder[T]) Count(kind EventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards recorded events.
func (r *Recorder[T]) Reset() {
	r.Events = nil
}

// ChanNotifier publishes events on a channel. Sends never block: when the
// channel is full the event is dropped and counted.
type ChanNotifier[T any] struct {
	C       chan Event[T]
	dropped int
}

// NewChanNotifier creates a ChanNotifier with the given buffer size.
func NewChanNotifier[T any](buffer int) *ChanNotifier[T] {
	return &ChanNotifier[T]{C: make(chan Event[T], buffer)}
}

func (n *ChanNotifier[T]) publish(ev Event[T]) {
	select {
	case n.C <- ev:
	default:
		n.dropped++
	}
}

func (n *ChanNotifier[T]) StartEdit() {
	n.publish(Event[T]{Kind: EventStartEdit})
}

func (n *ChanNotifier[T]) UpdateText(value T) {
	n.publish(Event[T]{Kind: EventUpdateText, Value: value})
}

func (n *ChanNotifier[T]) CancelEdit() {
	n.publish(Event[T]{Kind: EventCancelEdit})
}

// Dropped returns the number of events lost to a full channel.
func (n *ChanNotifier[T]) Dropped() int {
	return n.dropped
}
