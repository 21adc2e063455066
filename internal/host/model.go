package host

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/editable/internal/config"
	"github.com/muurk/editable/internal/editable"
	"github.com/muurk/editable/internal/logging"
	"github.com/muurk/editable/internal/textfield"
)

// maxActivity bounds the activity log shown under the fields.
const maxActivity = 6

// Confirmer decides whether a committed value is accepted. A nil Confirmer
// accepts everything.
type Confirmer func(id, value string) error

// Options configures a host.
type Options struct {
	Title   string
	Presets []*config.FieldPreset
	// ConfirmDelay simulates the round-trip before a commit is answered.
	ConfirmDelay time.Duration
	Confirmer    Confirmer
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusPending
	statusOK
	statusError
)

// backgrounds is the cycle applied by the background key.
var backgrounds = []string{
	editable.DefaultBackground,
	"#B0D0DA",
	"#DAD0B0",
	"#B0DAB8",
}

// nextBackground returns the color after current in backgrounds. Colors not
// in the cycle restart it.
func nextBackground(current string) string {
	for i, bg := range backgrounds {
		if bg == current {
			return backgrounds[(i+1)%len(backgrounds)]
		}
	}
	return backgrounds[0]
}

// hostKeyMap defines navigation bindings used while no field is editing
type hostKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Background key.Binding
	Quit       key.Binding
}

func defaultHostKeys() hostKeyMap {
	return hostKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Background: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "color"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model owns a set of independent text fields. It answers each commit after
// ConfirmDelay, asking the Confirmer whether to accept it.
type Model struct {
	title     string
	fields    []textfield.Model
	cursor    int
	delay     time.Duration
	confirmer Confirmer

	status     string
	statusKind statusKind
	activity   []string

	help help.Model
	keys hostKeyMap

	Width  int
	Height int
}

// New creates a host with one field per preset.
func New(opts Options) Model {
	m := Model{
		title:     opts.Title,
		delay:     opts.ConfirmDelay,
		confirmer: opts.Confirmer,
		help:      help.New(),
		keys:      defaultHostKeys(),
		status:    "Ready",
	}
	if m.title == "" {
		m.title = "EDITABLE FIELDS"
	}

	for _, p := range opts.Presets {
		m.fields = append(m.fields, textfield.New(textfield.Config{
			ID:           p.ID,
			Label:        p.Label,
			Value:        p.Value,
			Background:   p.Background,
			InitialState: p.State,
			Placeholder:  p.Placeholder,
			CharLimit:    p.CharLimit,
			Width:        p.Width,
		}))
	}
	if len(m.fields) > 0 {
		m.fields[0], _ = m.fields[0].Focus()
	}
	return m
}

// Fields returns the hosted fields in display order.
func (m Model) Fields() []textfield.Model { return m.fields }

// Field returns the field with the given ID.
func (m Model) Field(id string) (textfield.Model, bool) {
	for _, f := range m.fields {
		if f.ID() == id {
			return f, true
		}
	}
	return textfield.Model{}, false
}

// Cursor returns the index of the focused field.
func (m Model) Cursor() int { return m.cursor }

// Activity returns the recent notification log, oldest first.
func (m Model) Activity() []string { return m.activity }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range m.fields {
		cmds = append(cmds, f.Init())
	}
	// A field configured to start in Updating still needs an answer
	for _, f := range m.fields {
		if f.State() == editable.Updating {
			cmds = append(cmds, m.confirmCmd(f.ID(), f.WorkingValue()))
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case textfield.StartEditMsg:
		m.record(msg.ID, "startEdit", "")
		m.setStatus(statusInfo, fmt.Sprintf("Editing %s", msg.ID))
		return m, nil

	case textfield.CancelEditMsg:
		m.record(msg.ID, "cancelEdit", "")
		m.setStatus(statusInfo, fmt.Sprintf("Edit of %s cancelled", msg.ID))
		return m, nil

	case textfield.UpdateTextMsg:
		m.record(msg.ID, "updateText", msg.Value)
		m.setStatus(statusPending, fmt.Sprintf("Saving %s…", msg.ID))
		return m, m.confirmCmd(msg.ID, msg.Value)

	case textfield.ConfirmMsg:
		m.setStatus(statusOK, fmt.Sprintf("Saved %s", msg.ID))
		return m.broadcast(msg)

	case textfield.RejectMsg:
		logging.Warn("Commit rejected", zap.String("field", msg.ID), zap.Error(msg.Err))
		m.setStatus(statusError, fmt.Sprintf("%s not saved: %v", msg.ID, msg.Err))
		return m.broadcast(msg)
	}

	return m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if len(m.fields) == 0 {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// An editing field owns the keyboard
	if m.fields[m.cursor].Editing() {
		return m.updateFocused(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Background):
		focused := m.fields[m.cursor]
		return m.updateFocused(textfield.SetBackgroundMsg{
			ID:         focused.ID(),
			Background: nextBackground(focused.Background()),
		})
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.fields[m.cursor], cmd = m.fields[m.cursor].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	n := len(m.fields)
	m.fields[m.cursor] = m.fields[m.cursor].Blur()
	m.cursor = (m.cursor + delta + n) % n
	var cmd tea.Cmd
	m.fields[m.cursor], cmd = m.fields[m.cursor].Focus()
	return m, cmd
}

// broadcast hands msg to every field. Fields ignore messages addressed to
// other IDs, and timer messages carry their own component IDs.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.fields))
	for i := range m.fields {
		var cmd tea.Cmd
		m.fields[i], cmd = m.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// confirmCmd answers a commit after the configured delay.
func (m Model) confirmCmd(id, value string) tea.Cmd {
	confirmer := m.confirmer
	answer := func() tea.Msg {
		if confirmer != nil {
			if err := confirmer(id, value); err != nil {
				return textfield.RejectMsg{ID: id, Err: err}
			}
		}
		return textfield.ConfirmMsg{ID: id, Value: value}
	}
	if m.delay <= 0 {
		return answer
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return answer() })
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *Model) record(id, event, value string) {
	entry := id + " " + event
	if event == "updateText" {
		entry += fmt.Sprintf("(%q)", value)
	}
	m.activity = append(m.activity, entry)
	if len(m.activity) > maxActivity {
		m.activity = m.activity[len(m.activity)-maxActivity:]
	}
}
