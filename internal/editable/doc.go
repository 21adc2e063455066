// Package editable implements the state machine behind an inline-editable
// value.
//
// A Field moves between three states:
//
//	Displaying --BeginEdit--> Editing --Commit--> Updating --Confirm--> Displaying
//	                             |                    |
//	                             +--Cancel--> Displaying
//	                                                  +--Reject--> Editing
//
// The field never talks to a backend. Commit only announces the proposed
// value through the Notifier; the owning context decides what to do with it
// and later calls Confirm (or Reject) to move the field out of Updating.
//
// Calls that are not valid in the current state are no-ops and report false.
//
// # Example
//
//	f := editable.New(editable.Options[string]{
//	    Value: "Hello",
//	    Notifier: editable.Callbacks[string]{
//	        OnUpdateText: func(v string) { save(v) },
//	    },
//	})
//	f.BeginEdit()
//	f.SetWorkingValue("Hello World")
//	f.Commit() // OnUpdateText("Hello World"), state is Updating
//
// Field is not safe for concurrent use. In a Bubble Tea program all calls
// happen from Update, which runs on a single goroutine.
package editable
