package textfield

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/editable/internal/editable"
	"github.com/muurk/editable/internal/ui"
)

// View renders the field for its current state.
func (m Model) View() string {
	var body string
	switch m.field.State() {
	case editable.Editing:
		body = m.input.View()
	case editable.Updating:
		body = ui.FieldStyle(m.field.Background(), false).Render(m.field.WorkingValue()) +
			" " + m.spinner.View() + ui.PendingStyle.Render(" saving")
	default:
		value := m.field.Value()
		if value == "" {
			value = " "
		}
		body = ui.FieldStyle(m.field.Background(), m.focused).Render(value)
	}

	if m.lastErr != nil && m.Editing() {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			body, "  ", ui.ErrorMessageStyle.Render(m.lastErr.Error()))
	}

	if m.label == "" {
		return body
	}
	labelStyle := ui.LabelStyle
	if m.focused {
		labelStyle = ui.FocusedLabelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(m.label), body)
}
