// Package textfield provides a Bubble Tea component for a single line of
// text that is shown read-only and edited inline.
//
// The component wraps an editable.Field[string] with a bubbles/textinput for
// input and a bubbles/spinner for the "saving" indicator while a commit waits
// for the owner.
//
// # Keys
//
//   - Displaying: enter or e starts editing
//   - Editing: enter commits, esc cancels, everything else edits the text
//   - Updating: keys are ignored until the owner confirms or rejects
//
// # Notifications
//
// Every notification is delivered twice: to the optional callbacks in
// Config, synchronously, and as a message (StartEditMsg, UpdateTextMsg,
// CancelEditMsg) returned as a command from Update. A host answers an
// UpdateTextMsg with ConfirmMsg or RejectMsg carrying the same ID:
//
//	case textfield.UpdateTextMsg:
//	    return m, func() tea.Msg {
//	        if err := save(msg.Value); err != nil {
//	            return textfield.RejectMsg{ID: msg.ID, Err: err}
//	        }
//	        return textfield.ConfirmMsg{ID: msg.ID, Value: msg.Value}
//	    }
package textfield
