package textfield

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/muurk/editable/internal/editable"
	"github.com/muurk/editable/internal/logging"
	"github.com/muurk/editable/internal/ui"
)

// Config configures a new text field.
type Config struct {
	// ID identifies the field in messages. A random UUID is used when empty.
	ID string
	// Label is rendered before the value by View.
	Label string
	// Value is the initial committed value.
	Value string
	// Background is passed to lipgloss unmodified. Defaults to
	// editable.DefaultBackground.
	Background string
	// InitialState defaults to editable.Displaying.
	InitialState editable.State

	Placeholder string
	CharLimit   int
	Width       int

	// Optional callbacks, called synchronously from Update.
	OnStartEdit  func(id string)
	OnUpdateText func(id, value string)
	OnCancelEdit func(id string)

	KeyMap *KeyMap
}

// Model is a Bubble Tea component that displays a value and edits it inline.
type Model struct {
	id    string
	label string

	field  *editable.Field[string]
	outbox *editable.Recorder[string]

	input   textinput.Model
	spinner spinner.Model
	keys    KeyMap

	focused bool
	lastErr error

	onStartEdit  func(id string)
	onUpdateText func(id, value string)
	onCancelEdit func(id string)
}

// New creates a text field from cfg.
func New(cfg Config) Model {
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}

	outbox := &editable.Recorder[string]{}
	field := editable.New(editable.Options[string]{
		Value:        cfg.Value,
		Background:   cfg.Background,
		InitialState: cfg.InitialState,
		Notifier:     outbox,
	})

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = cfg.Placeholder
	if cfg.CharLimit > 0 {
		input.CharLimit = cfg.CharLimit
	}
	if cfg.Width > 0 {
		input.Width = cfg.Width
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.PendingStyle

	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}

	m := Model{
		id:           id,
		label:        cfg.Label,
		field:        field,
		outbox:       outbox,
		input:        input,
		spinner:      s,
		keys:         keys,
		onStartEdit:  cfg.OnStartEdit,
		onUpdateText: cfg.OnUpdateText,
		onCancelEdit: cfg.OnCancelEdit,
	}
	if field.State() != editable.Displaying {
		m.input.SetValue(field.WorkingValue())
		m.input.CursorEnd()
	}
	return m
}

// ID returns the field identifier.
func (m Model) ID() string { return m.id }

// Label returns the field label.
func (m Model) Label() string { return m.label }

// State returns the state of the underlying field.
func (m Model) State() editable.State { return m.field.State() }

// Value returns the committed value.
func (m Model) Value() string { return m.field.Value() }

// WorkingValue returns the value being edited.
func (m Model) WorkingValue() string { return m.field.WorkingValue() }

// Background returns the background color.
func (m Model) Background() string { return m.field.Background() }

// Err returns the error of the last rejected commit, if any.
func (m Model) Err() error { return m.lastErr }

// Editing reports whether the field is capturing keyboard input.
func (m Model) Editing() bool { return m.field.State() == editable.Editing }

// Focused reports whether the field receives key messages.
func (m Model) Focused() bool { return m.focused }

// Focus makes the field receive key messages.
func (m Model) Focus() (Model, tea.Cmd) {
	m.focused = true
	if m.Editing() {
		return m, m.input.Focus()
	}
	return m, nil
}

// Blur stops the field from receiving key messages. An edit in progress is
// kept.
func (m Model) Blur() Model {
	m.focused = false
	m.input.Blur()
	return m
}

// HelpKeys returns the bindings that apply in the current state.
func (m Model) HelpKeys() []key.Binding {
	switch m.field.State() {
	case editable.Displaying:
		return []key.Binding{m.keys.Edit}
	case editable.Editing:
		return []key.Binding{m.keys.Commit, m.keys.Cancel}
	default:
		return nil
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	switch m.field.State() {
	case editable.Editing:
		return textinput.Blink
	case editable.Updating:
		return m.spinner.Tick
	default:
		return nil
	}
}

// Update handles key input while focused and owner messages addressed to
// this field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfirmMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.Confirm(msg.Value)

	case RejectMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.Reject(msg.Err)

	case SetValueMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.SetValue(msg.Value), nil

	case SetBackgroundMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.SetBackground(msg.Background), nil

	case spinner.TickMsg:
		if m.field.State() != editable.Updating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)
	}

	if m.Editing() {
		return m.updateInput(msg)
	}
	return m, nil
}

// updateInput passes msg to the text input and mirrors the result into the
// working value. Pasted text arrives as a non-key message, so every input
// update goes through here.
func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.field.SetWorkingValue(m.input.Value())
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.field.State() {
	case editable.Displaying:
		if key.Matches(msg, m.keys.Edit) {
			return m.BeginEdit()
		}
		return m, nil

	case editable.Editing:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m.Cancel()
		case key.Matches(msg, m.keys.Commit):
			return m.Commit()
		}
		return m.updateInput(msg)
	}

	// Updating: input is frozen until the owner answers
	logging.LogRejectedCall(m.id, m.field.State().String(), "key")
	return m, nil
}

// BeginEdit switches to Editing with the committed value in the input.
func (m Model) BeginEdit() (Model, tea.Cmd) {
	from := m.field.State()
	if !m.field.BeginEdit() {
		logging.LogRejectedCall(m.id, from.String(), "begin_edit")
		return m, nil
	}
	logging.LogTransition(m.id, from.String(), m.field.State().String(), "begin_edit")

	m.lastErr = nil
	m.input.SetValue(m.field.WorkingValue())
	m.input.CursorEnd()
	var focusCmd tea.Cmd
	if m.focused {
		focusCmd = m.input.Focus()
	}
	return m, tea.Batch(m.flush(), focusCmd)
}

// SetWorkingValue replaces the text being edited. It is ignored outside
// Editing.
func (m Model) SetWorkingValue(v string) Model {
	if !m.field.SetWorkingValue(v) {
		logging.LogRejectedCall(m.id, m.field.State().String(), "set_working_value")
		return m
	}
	m.input.SetValue(v)
	return m
}

// Commit proposes the working value to the owner and waits in Updating.
func (m Model) Commit() (Model, tea.Cmd) {
	from := m.field.State()
	if !m.field.Commit() {
		logging.LogRejectedCall(m.id, from.String(), "commit")
		return m, nil
	}
	logging.LogTransition(m.id, from.String(), m.field.State().String(), "commit")

	m.input.Blur()
	return m, tea.Batch(m.flush(), m.spinner.Tick)
}

// Cancel abandons the edit and returns to Displaying.
func (m Model) Cancel() (Model, tea.Cmd) {
	from := m.field.State()
	if !m.field.Cancel() {
		logging.LogRejectedCall(m.id, from.String(), "cancel")
		return m, nil
	}
	logging.LogTransition(m.id, from.String(), m.field.State().String(), "cancel")

	m.input.Blur()
	m.input.SetValue(m.field.Value())
	return m, m.flush()
}

// Confirm accepts a pending commit with the value the owner settled on.
func (m Model) Confirm(v string) (Model, tea.Cmd) {
	from := m.field.State()
	if !m.field.Confirm(v) {
		logging.LogRejectedCall(m.id, from.String(), "confirm")
		return m, nil
	}
	logging.LogTransition(m.id, from.String(), m.field.State().String(), "confirm")

	m.lastErr = nil
	m.input.SetValue(v)
	return m, nil
}

// Reject refuses a pending commit. The field goes back to Editing so the
// user can adjust the value and try again.
func (m Model) Reject(err error) (Model, tea.Cmd) {
	from := m.field.State()
	if !m.field.Reject() {
		logging.LogRejectedCall(m.id, from.String(), "reject")
		return m, nil
	}
	logging.LogTransition(m.id, from.String(), m.field.State().String(), "reject")

	m.lastErr = err
	if m.focused {
		return m, m.input.Focus()
	}
	return m, nil
}

// SetValue replaces the committed value. While Editing the input is reset to
// the new value as well.
func (m Model) SetValue(v string) Model {
	m.field.SetValue(v)
	switch m.field.State() {
	case editable.Editing:
		m.input.SetValue(m.field.WorkingValue())
		m.input.CursorEnd()
	case editable.Displaying:
		m.input.SetValue(m.field.Value())
		m.input.CursorEnd()
	}
	return m
}

// SetBackground replaces the background color.
func (m Model) SetBackground(bg string) Model {
	m.field.SetBackground(bg)
	return m
}

// flush turns the notifications raised by the last field call into callback
// invocations and notification messages.
func (m Model) flush() tea.Cmd {
	events := m.outbox.Events
	m.outbox.Reset()

	var cmds []tea.Cmd
	for _, ev := range events {
		logging.LogNotification(m.id, ev.Kind.String(), ev.Value)

		id := m.id
		switch ev.Kind {
		case editable.EventStartEdit:
			if m.onStartEdit != nil {
				m.onStartEdit(id)
			}
			cmds = append(cmds, func() tea.Msg { return StartEditMsg{ID: id} })
		case editable.EventUpdateText:
			value := ev.Value
			if m.onUpdateText != nil {
				m.onUpdateText(id, value)
			}
			cmds = append(cmds, func() tea.Msg { return UpdateTextMsg{ID: id, Value: value} })
		case editable.EventCancelEdit:
			if m.onCancelEdit != nil {
				m.onCancelEdit(id)
			}
			cmds = append(cmds, func() tea.Msg { return CancelEditMsg{ID: id} })
		}
	}
	return tea.Batch(cmds...)
}
