package textfield

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/editable/internal/editable"
)

// collect runs cmd and any batched children, returning the messages that
// arrive promptly. Timer-driven commands (cursor blink, spinner frames) are
// abandoned.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(t, c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func notifications(msgs []tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, msg := range msgs {
		switch msg.(type) {
		case StartEditMsg, UpdateTextMsg, CancelEditMsg:
			out = append(out, msg)
		}
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newFocused(t *testing.T, cfg Config) Model {
	t.Helper()
	if cfg.ID == "" {
		cfg.ID = "name"
	}
	m, _ := New(cfg).Focus()
	return m
}

func TestNewDefaults(t *testing.T) {
	m := New(Config{Value: "Hello"})

	if m.ID() == "" {
		t.Error("ID() should be generated when empty")
	}
	if m.State() != editable.Displaying {
		t.Errorf("State() = %v, want displaying", m.State())
	}
	if m.Background() != editable.DefaultBackground {
		t.Errorf("Background() = %q, want %q", m.Background(), editable.DefaultBackground)
	}
	if other := New(Config{}); other.ID() == m.ID() {
		t.Error("generated IDs should differ")
	}
}

func TestCommitFlowViaKeys(t *testing.T) {
	var updates []string
	m := newFocused(t, Config{
		Value:        "Hello",
		OnUpdateText: func(id, v string) { updates = append(updates, id+"="+v) },
	})

	var cmd tea.Cmd
	m, cmd = m.Update(keyEnter)
	if m.State() != editable.Editing {
		t.Fatalf("State() after enter = %v, want editing", m.State())
	}
	if m.WorkingValue() != "Hello" {
		t.Errorf("WorkingValue() = %q, want %q", m.WorkingValue(), "Hello")
	}
	got := notifications(collect(t, cmd))
	if diff := cmp.Diff([]tea.Msg{StartEditMsg{ID: "name"}}, got); diff != "" {
		t.Errorf("begin edit messages (-want +got):\n%s", diff)
	}

	m, _ = m.Update(keyRunes("!"))
	if m.WorkingValue() != "Hello!" {
		t.Fatalf("WorkingValue() after typing = %q, want %q", m.WorkingValue(), "Hello!")
	}

	m, cmd = m.Update(keyEnter)
	if m.State() != editable.Updating {
		t.Fatalf("State() after commit = %v, want updating", m.State())
	}
	got = notifications(collect(t, cmd))
	if diff := cmp.Diff([]tea.Msg{UpdateTextMsg{ID: "name", Value: "Hello!"}}, got); diff != "" {
		t.Errorf("commit messages (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name=Hello!"}, updates); diff != "" {
		t.Errorf("OnUpdateText calls (-want +got):\n%s", diff)
	}
	if m.Value() != "Hello" {
		t.Errorf("Value() = %q, must stay %q until confirmed", m.Value(), "Hello")
	}

	m, _ = m.Update(ConfirmMsg{ID: "name", Value: "Hello!"})
	if m.State() != editable.Displaying || m.Value() != "Hello!" {
		t.Errorf("after confirm: state=%v value=%q, want displaying/\"Hello!\"", m.State(), m.Value())
	}
}

func TestCancelFlowViaKeys(t *testing.T) {
	cancels := 0
	m := newFocused(t, Config{Value: "A", OnCancelEdit: func(string) { cancels++ }})

	m, _ = m.Update(keyRunes("e"))
	m = m.SetWorkingValue("B")
	var cmd tea.Cmd
	m, cmd = m.Update(keyEsc)

	if m.State() != editable.Displaying {
		t.Errorf("State() = %v, want displaying", m.State())
	}
	if m.Value() != "A" {
		t.Errorf("Value() = %q, want %q", m.Value(), "A")
	}
	if cancels != 1 {
		t.Errorf("OnCancelEdit called %d times, want 1", cancels)
	}
	got := notifications(collect(t, cmd))
	if diff := cmp.Diff([]tea.Msg{CancelEditMsg{ID: "name"}}, got); diff != "" {
		t.Errorf("cancel messages (-want +got):\n%s", diff)
	}
}

func TestKeysIgnoredWhenBlurred(t *testing.T) {
	m := New(Config{ID: "x", Value: "v"})
	m, cmd := m.Update(keyEnter)

	if m.State() != editable.Displaying {
		t.Errorf("State() = %v, want displaying", m.State())
	}
	if cmd != nil {
		t.Error("blurred field should not return a command")
	}
}

func TestKeysIgnoredWhileUpdating(t *testing.T) {
	m := newFocused(t, Config{Value: "v"})
	m, _ = m.Update(keyEnter)
	m, _ = m.Update(keyEnter)

	m, cmd := m.Update(keyRunes("z"))
	if m.State() != editable.Updating {
		t.Errorf("State() = %v, want updating", m.State())
	}
	if m.WorkingValue() != "v" {
		t.Errorf("WorkingValue() = %q, want %q", m.WorkingValue(), "v")
	}
	if cmd != nil {
		t.Error("keys while updating should not return a command")
	}
}

func TestRejectReturnsToEditing(t *testing.T) {
	m := newFocused(t, Config{Value: "v"})
	m, _ = m.Update(keyEnter)
	m = m.SetWorkingValue("bad")
	m, _ = m.Update(keyEnter)

	rejectErr := errors.New("value refused")
	m, _ = m.Update(RejectMsg{ID: "name", Err: rejectErr})

	if m.State() != editable.Editing {
		t.Fatalf("State() = %v, want editing", m.State())
	}
	if m.WorkingValue() != "bad" {
		t.Errorf("WorkingValue() = %q, want %q", m.WorkingValue(), "bad")
	}
	if !errors.Is(m.Err(), rejectErr) {
		t.Errorf("Err() = %v, want %v", m.Err(), rejectErr)
	}
}

func TestOwnerMessagesForOtherIDsIgnored(t *testing.T) {
	m := newFocused(t, Config{Value: "v"})
	m, _ = m.Update(keyEnter)
	m, _ = m.Update(keyEnter)

	m, _ = m.Update(ConfirmMsg{ID: "other", Value: "x"})
	m, _ = m.Update(SetValueMsg{ID: "other", Value: "y"})

	if m.State() != editable.Updating || m.Value() != "v" {
		t.Errorf("state=%v value=%q, want updating/\"v\"", m.State(), m.Value())
	}
}

func TestSetValueWhileEditingResetsInput(t *testing.T) {
	m := newFocused(t, Config{Value: "A"})
	m, _ = m.Update(keyEnter)
	m, _ = m.Update(keyRunes("xyz"))

	m, _ = m.Update(SetValueMsg{ID: "name", Value: "Z"})

	if m.WorkingValue() != "Z" {
		t.Errorf("WorkingValue() = %q, want %q", m.WorkingValue(), "Z")
	}
	m, _ = m.Update(keyEnter)
	if m.State() != editable.Updating {
		t.Fatalf("State() = %v, want updating", m.State())
	}
}

// inputRefreshMsg is a message the field does not handle itself, so it is
// forwarded to the text input the way clipboard pastes and cursor blinks are.
type inputRefreshMsg struct{}

func TestNonKeyMessagesSyncWorkingValue(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{name: "unhandled message", msg: inputRefreshMsg{}},
		{name: "nil message", msg: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFocused(t, Config{Value: "Hello"})
			m, _ = m.Update(keyEnter)

			// Text that reached the input without a key press, as a paste does.
			m.input.SetValue("Hello World")
			m, _ = m.Update(tt.msg)

			if m.WorkingValue() != m.input.Value() {
				t.Fatalf("WorkingValue() = %q, input holds %q", m.WorkingValue(), m.input.Value())
			}

			var cmd tea.Cmd
			m, cmd = m.Update(keyEnter)
			if m.State() != editable.Updating {
				t.Fatalf("State() after commit = %v, want updating", m.State())
			}
			got := notifications(collect(t, cmd))
			want := []tea.Msg{UpdateTextMsg{ID: "name", Value: "Hello World"}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("commit messages (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNonKeyMessagesIgnoredWhenDisplaying(t *testing.T) {
	m := newFocused(t, Config{Value: "Hello"})
	m.input.SetValue("stray")

	m, cmd := m.Update(inputRefreshMsg{})
	if cmd != nil {
		t.Error("Update() should not return a command while displaying")
	}
	if m.Value() != "Hello" || m.State() != editable.Displaying {
		t.Errorf("state=%v value=%q, want displaying/\"Hello\"", m.State(), m.Value())
	}
}

func TestSetValueWhileDisplayingShowsNewValueOnEdit(t *testing.T) {
	m := newFocused(t, Config{Value: "A"})

	// Edit once so the working value goes stale after confirming.
	m, _ = m.Update(keyEnter)
	m, _ = m.Update(keyRunes("B"))
	m, _ = m.Update(keyEnter)
	m, _ = m.Update(ConfirmMsg{ID: "name", Value: "AB"})
	if m.State() != editable.Displaying {
		t.Fatalf("State() = %v, want displaying", m.State())
	}

	m, _ = m.Update(SetValueMsg{ID: "name", Value: "C"})
	if m.Value() != "C" {
		t.Fatalf("Value() = %q, want %q", m.Value(), "C")
	}
	if m.input.Value() != "C" {
		t.Errorf("input value = %q, want %q", m.input.Value(), "C")
	}

	m, _ = m.Update(keyEnter)
	if m.WorkingValue() != "C" || m.input.Value() != "C" {
		t.Errorf("after begin edit working=%q input=%q, want both %q", m.WorkingValue(), m.input.Value(), "C")
	}
}

func TestSetBackgroundMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  SetBackgroundMsg
		want string
	}{
		{name: "own id", msg: SetBackgroundMsg{ID: "name", Background: "#112233"}, want: "#112233"},
		{name: "other id", msg: SetBackgroundMsg{ID: "other", Background: "#112233"}, want: editable.DefaultBackground},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFocused(t, Config{Value: "v"})
			m, cmd := m.Update(tt.msg)
			if cmd != nil {
				t.Error("SetBackgroundMsg should not return a command")
			}
			if m.Background() != tt.want {
				t.Errorf("Background() = %q, want %q", m.Background(), tt.want)
			}
			if m.State() != editable.Displaying {
				t.Errorf("State() = %v, want displaying", m.State())
			}
		})
	}
}

func TestInitialEditingState(t *testing.T) {
	m := New(Config{ID: "f", Value: "start", InitialState: editable.Editing})

	if !m.Editing() {
		t.Fatalf("State() = %v, want editing", m.State())
	}
	if m.WorkingValue() != "start" {
		t.Errorf("WorkingValue() = %q, want %q", m.WorkingValue(), "start")
	}
	if m.Init() == nil {
		t.Error("Init() should start the cursor blink while editing")
	}
}

func TestHelpKeysFollowState(t *testing.T) {
	m := newFocused(t, Config{Value: "v"})
	if n := len(m.HelpKeys()); n != 1 {
		t.Errorf("displaying help keys = %d, want 1", n)
	}
	m, _ = m.Update(keyEnter)
	if n := len(m.HelpKeys()); n != 2 {
		t.Errorf("editing help keys = %d, want 2", n)
	}
	m, _ = m.Update(keyEnter)
	if n := len(m.HelpKeys()); n != 0 {
		t.Errorf("updating help keys = %d, want 0", n)
	}
}
