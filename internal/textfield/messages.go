package textfield

// Notification messages. A Model returns these as commands whenever its
// field raises the matching notification, so a host can react in Update
// without registering callbacks.

// StartEditMsg is sent when the field enters Editing.
type StartEditMsg struct {
	ID string
}

// UpdateTextMsg is sent when the user commits. Value is the proposed value.
type UpdateTextMsg struct {
	ID    string
	Value string
}

// CancelEditMsg is sent when the user abandons an edit.
type CancelEditMsg struct {
	ID string
}

// Owner messages. A Model only reacts to those carrying its own ID.

// ConfirmMsg accepts a pending commit and stores Value as the committed value.
type ConfirmMsg struct {
	ID    string
	Value string
}

// RejectMsg refuses a pending commit. The field returns to Editing with the
// proposed value still in the input.
type RejectMsg struct {
	ID  string
	Err error
}

// SetValueMsg replaces the committed value from outside.
type SetValueMsg struct {
	ID    string
	Value string
}

// SetBackgroundMsg replaces the background color. Background is passed to
// lipgloss unmodified; empty restores the default.
type SetBackgroundMsg struct {
	ID         string
	Background string
}
