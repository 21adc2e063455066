package editable

import (
	"errors"
	"fmt"
	"strings"
)

// State is the interactive state of a Field.
type State int

const (
	// Displaying shows the committed value read-only.
	Displaying State = iota
	// Editing exposes the working value for input.
	Editing
	// Updating means a commit was requested and the owner has not answered yet.
	Updating
)

// ErrUnknownState is returned by ParseState for unrecognized names.
var ErrUnknownState = errors.New("unknown editable state")

var stateNames = map[State]string{
	Displaying: "displaying",
	Editing:    "editing",
	Updating:   "updating",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// ParseState converts a state name ("displaying", "editing", "updating")
// into a State. Matching is case-insensitive and ignores surrounding space.
func ParseState(name string) (State, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for s, n := range stateNames {
		if n == normalized {
			return s, nil
		}
	}
	return Displaying, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
