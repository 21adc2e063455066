// Package ui holds the shared lipgloss palette, styles and terminal helpers
// used by the text field component, the demo host and the CLI.
//
// Interactive rendering lives with the components themselves; this package
// only provides building blocks and a Printer for commands that print a
// result and exit.
package ui
