package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by the field component and the demo host
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - focus, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - confirmed commits
	ErrorColor   = lipgloss.Color("#FF5555") // Red - rejected commits
	WarningColor = lipgloss.Color("#FFA500") // Orange - pending commits
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	InkColor     = lipgloss.Color("#1A1A1A") // Near black - text on light field backgrounds
)

// Layout constants
const (
	MinTerminalWidth = 40
	MaxContentWidth  = 100
	DefaultPadding   = 1
)

var (
	// TitleStyle is for the demo header
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			PaddingLeft(DefaultPadding)

	// LabelStyle is for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(14)

	// FocusedLabelStyle is for the label of the focused field
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(14)

	// StatusStyle is for the status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			PaddingLeft(DefaultPadding)

	// ErrorMessageStyle is for rejected commits
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// SuccessMessageStyle is for confirmed commits
	SuccessMessageStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// PendingStyle is for the "saving" indicator
	PendingStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// KeyStyle is for preset listing keys
	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ValueStyle is for preset listing values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)
)

// FieldStyle returns the style of a field's display area on the given
// background. The background is passed through unmodified.
func FieldStyle(background string, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(InkColor).
		Padding(0, 1)
	if focused {
		s = s.Underline(true)
	}
	return s
}

// BoxStyle returns the border style for the host container
func BoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2).
		Padding(0, DefaultPadding)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return ClampWidth(width, err)
}

// ClampWidth bounds a measured width to the supported range. A measurement
// error yields MinTerminalWidth.
func ClampWidth(width int, err error) int {
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
