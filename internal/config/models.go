package config

import (
	"fmt"
	"time"

	"github.com/muurk/editable/internal/editable"
)

// CurrentVersion is the only presets file version understood by this build.
const CurrentVersion = 1

// DefaultConfirmDelay is how long the demo host pretends a commit takes.
const DefaultConfirmDelay = 400 * time.Millisecond

// Registry represents the entire presets file.
// Presets only seed initial values; edits made in the UI are never written
// back.
type Registry struct {
	Version     int            `yaml:"version"`
	Fields      []*FieldPreset `yaml:"fields,omitempty"`
	Preferences *Preferences   `yaml:"preferences,omitempty"`
}

// FieldPreset describes one field the host should create.
type FieldPreset struct {
	ID          string         `yaml:"id"`
	Label       string         `yaml:"label,omitempty"`
	Value       string         `yaml:"value"`
	Background  string         `yaml:"background,omitempty"` // Passed through to lipgloss as-is
	State       editable.State `yaml:"state,omitempty"`      // displaying (default), editing or updating
	Placeholder string         `yaml:"placeholder,omitempty"`
	CharLimit   int            `yaml:"char_limit,omitempty"`
	Width       int            `yaml:"width,omitempty"`
}

// Preferences represents application-wide settings.
type Preferences struct {
	ConfirmDelayMS int    `yaml:"confirm_delay_ms"`    // Simulated owner round-trip for commits
	LogLevel       string `yaml:"log_level,omitempty"` // Overridden by --log-level and EDITABLE_LOG_LEVEL
}

// ConfirmDelay returns the configured delay, or DefaultConfirmDelay.
func (p *Preferences) ConfirmDelay() time.Duration {
	if p == nil || p.ConfirmDelayMS <= 0 {
		return DefaultConfirmDelay
	}
	return time.Duration(p.ConfirmDelayMS) * time.Millisecond
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: CurrentVersion,
		Preferences: &Preferences{
			ConfirmDelayMS: int(DefaultConfirmDelay / time.Millisecond),
		},
	}
}

// GetField retrieves a preset by ID. Returns nil if it doesn't exist.
func (r *Registry) GetField(id string) *FieldPreset {
	for _, f := range r.Fields {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// AddField appends a preset. IDs must be unique.
func (r *Registry) AddField(f *FieldPreset) error {
	if f.ID == "" {
		return fmt.Errorf("field preset needs an id")
	}
	if r.GetField(f.ID) != nil {
		return fmt.Errorf("duplicate field id %q", f.ID)
	}
	r.Fields = append(r.Fields, f)
	return nil
}

// Validate checks the registry loaded from disk.
func (r *Registry) Validate() error {
	if r.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", r.Version, CurrentVersion)
	}
	seen := make(map[string]bool, len(r.Fields))
	for i, f := range r.Fields {
		if f == nil {
			return fmt.Errorf("field %d is empty", i)
		}
		if f.ID == "" {
			return fmt.Errorf("field %d has no id", i)
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate field id %q", f.ID)
		}
		seen[f.ID] = true
		if f.CharLimit < 0 || f.Width < 0 {
			return fmt.Errorf("field %q: char_limit and width must not be negative", f.ID)
		}
	}
	return nil
}
