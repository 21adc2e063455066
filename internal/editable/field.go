package editable

// DefaultBackground is the background color used when Options leaves it empty.
const DefaultBackground = "#D0B0DA"

// Options configures a new Field.
type Options[T any] struct {
	// Value is the initial committed value.
	Value T
	// Background is an opaque presentation hint passed through to renderers.
	Background string
	// InitialState defaults to Displaying.
	InitialState State
	// Notifier may be nil.
	Notifier Notifier[T]
}

// Field holds the state of one inline-editable value.
type Field[T any] struct {
	state      State
	committed  T
	working    T
	background string
	notifier   Notifier[T]
}

// New creates a Field from opts.
func New[T any](opts Options[T]) *Field[T] {
	f := &Field[T]{
		state:      Displaying,
		committed:  opts.Value,
		working:    opts.Value,
		background: opts.Background,
		notifier:   opts.Notifier,
	}
	if f.background == "" {
		f.background = DefaultBackground
	}
	if opts.InitialState.Valid() {
		f.state = opts.InitialState
	}
	return f
}

// State returns the current state.
func (f *Field[T]) State() State { return f.state }

// Value returns the committed value.
func (f *Field[T]) Value() T { return f.committed }

// WorkingValue returns the value being edited, or the value awaiting the
// owner's answer while Updating. Outside those states it is not meaningful
// (SetValue does not touch it while Displaying); use Value instead.
func (f *Field[T]) WorkingValue() T { return f.working }

// Background returns the presentation hint.
func (f *Field[T]) Background() string { return f.background }

// SetBackground replaces the presentation hint. It has no effect on state.
func (f *Field[T]) SetBackground(bg string) {
	if bg == "" {
		bg = DefaultBackground
	}
	f.background = bg
}

// BeginEdit moves Displaying to Editing, seeding the working value from the
// committed value, and emits StartEdit.
func (f *Field[T]) BeginEdit() bool {
	if f.state != Displaying {
		return false
	}
	f.working = f.committed
	f.state = Editing
	if f.notifier != nil {
		f.notifier.StartEdit()
	}
	return true
}

// SetWorkingValue replaces the working value while Editing. No validation is
// performed and nothing is emitted.
func (f *Field[T]) SetWorkingValue(v T) bool {
	if f.state != Editing {
		return false
	}
	f.working = v
	return true
}

// Commit moves Editing to Updating and emits UpdateText with the working
// value. The committed value is left alone until the owner calls Confirm.
func (f *Field[T]) Commit() bool {
	if f.state != Editing {
		return false
	}
	f.state = Updating
	if f.notifier != nil {
		f.notifier.UpdateText(f.working)
	}
	return true
}

// Cancel moves Editing to Displaying, discards the working value and emits
// CancelEdit.
func (f *Field[T]) Cancel() bool {
	if f.state != Editing {
		return false
	}
	f.working = f.committed
	f.state = Displaying
	if f.notifier != nil {
		f.notifier.CancelEdit()
	}
	return true
}

// Confirm is called by the owner once a commit has been accepted. It stores v
// as the committed value and returns to Displaying.
func (f *Field[T]) Confirm(v T) bool {
	if f.state != Updating {
		return false
	}
	f.committed = v
	f.working = v
	f.state = Displaying
	return true
}

// Reject is called by the owner when a commit was refused. The field goes
// back to Editing with the proposed value still in the working buffer.
func (f *Field[T]) Reject() bool {
	if f.state != Updating {
		return false
	}
	f.state = Editing
	return true
}

// SetValue replaces the committed value from outside. While Editing the
// working value is reset to v as well.
func (f *Field[T]) SetValue(v T) {
	f.committed = v
	if f.state == Editing {
		f.working = v
	}
}

// SetState forces a state without emitting notifications. Entering Editing
// this way seeds the working value from the committed value. Invalid states
// are ignored and reported as false.
func (f *Field[T]) SetState(s State) bool {
	if !s.Valid() {
		return false
	}
	if s == Editing && f.state != Editing {
		f.working = f.committed
	}
	f.state = s
	return true
}
