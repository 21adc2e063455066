package host

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/editable/internal/ui"
)

// View implements tea.Model
func (m Model) View() string {
	width := m.Width
	if width == 0 {
		width = ui.GetTerminalWidth()
	}
	width = ui.ClampWidth(width, nil)

	var sections []string
	sections = append(sections, ui.TitleStyle.Render(m.title))
	sections = append(sections, ui.RenderHorizontalDivider(width-4, "─"))

	if len(m.fields) == 0 {
		sections = append(sections, ui.StatusStyle.Render("No fields configured. Run 'editable-demo presets init'."))
	}
	for i, f := range m.fields {
		marker := "  "
		if i == m.cursor {
			marker = lipgloss.NewStyle().Foreground(ui.PrimaryColor).Render("▸ ")
		}
		sections = append(sections, marker+f.View())
	}

	sections = append(sections, "", m.renderStatus())

	if len(m.activity) > 0 {
		var lines []string
		for _, a := range m.activity {
			lines = append(lines, ui.StatusStyle.Render("· "+a))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	sections = append(sections, "", m.help.ShortHelpView(m.helpKeys()))

	return ui.BoxStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderStatus() string {
	switch m.statusKind {
	case statusPending:
		return ui.PendingStyle.PaddingLeft(ui.DefaultPadding).Render(m.status)
	case statusOK:
		return ui.SuccessMessageStyle.PaddingLeft(ui.DefaultPadding).Render(m.status)
	case statusError:
		return ui.ErrorMessageStyle.PaddingLeft(ui.DefaultPadding).Render(m.status)
	default:
		return ui.StatusStyle.Render(m.status)
	}
}

func (m Model) helpKeys() []key.Binding {
	if len(m.fields) == 0 {
		return []key.Binding{m.keys.Quit}
	}
	focused := m.fields[m.cursor]
	if focused.Editing() {
		return focused.HelpKeys()
	}
	bindings := append([]key.Binding{}, focused.HelpKeys()...)
	return append(bindings, m.keys.Up, m.keys.Down, m.keys.Background, m.keys.Quit)
}
