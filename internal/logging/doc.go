// Package logging provides structured logging for editable fields and their
// hosts.
//
// This package wraps a package-global zap logger. Logging is silent until
// Initialize is called with a level (or EDITABLE_LOG_LEVEL is set), so a
// running TUI is never interrupted by log output.
//
// # Log Levels
//
//   - Debug: state transitions and ignored calls
//   - Info: notifications raised toward the owner (startEdit, updateText, cancelEdit)
//   - Warn: commits rejected by the owner
//   - Error: startup failures
//
// # Configuration
//
//	if err := logging.Initialize("debug", "/tmp/editable.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Specialized Logging
//
//	logging.LogTransition(id, "displaying", "editing", "begin_edit")
//	logging.LogNotification(id, "updateText", value)
package logging
