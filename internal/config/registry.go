package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "editable"
	configFile = "fields.yaml"
	logFile    = "editable.log"
)

var (
	// Global registry instance (loaded lazily)
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
	globalRegistryErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
//   - Linux: $XDG_CONFIG_HOME/editable or $HOME/.config/editable
//   - macOS: $HOME/.config/editable
//   - Windows: %LOCALAPPDATA%\editable
func GetConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// GetStateDir returns the directory for log files.
//   - Linux: $XDG_STATE_HOME/editable or $HOME/.local/state/editable
//   - macOS: $HOME/.local/state/editable
//   - Windows: %LOCALAPPDATA%\editable
func GetStateDir() (string, error) {
	return appDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func appDir(xdgVar, homeRel string) (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			return filepath.Join(userProfile, "AppData", "Local", appName), nil
		}
		return filepath.Join(localAppData, appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, homeRel, appName), nil

	default:
		if xdg := os.Getenv(xdgVar); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, homeRel, appName), nil
	}
}

// GetConfigPath returns the full path to the presets file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// GetLogPath returns the default log file path.
func GetLogPath() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, logFile), nil
}

// LoadRegistry loads the presets file from the default location.
// If the file doesn't exist, returns a new default registry.
// Thread-safe - multiple calls will return the same instance.
func LoadRegistry() (*Registry, error) {
	globalRegistryOnce.Do(func() {
		path, err := GetConfigPath()
		if err != nil {
			globalRegistryErr = fmt.Errorf("failed to get config path: %w", err)
			return
		}
		globalRegistry, globalRegistryErr = LoadRegistryFrom(path)
	})
	return globalRegistry, globalRegistryErr
}

// LoadRegistryFrom reads and validates the presets file at path.
// A missing file yields a new default registry.
func LoadRegistryFrom(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if registry.Preferences == nil {
		registry.Preferences = NewRegistry().Preferences
	}

	return &registry, nil
}

// SaveTo writes the registry to path.
// Performs an atomic write to prevent corruption on crash.
func (r *Registry) SaveTo(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Editable field presets
# Each entry seeds one field in editable-demo. Values edited in the UI
# are not written back to this file.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// DefaultRegistry returns a registry with example presets.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Fields = []*FieldPreset{
		{
			ID:          "title",
			Label:       "Title",
			Value:       "Hello",
			Placeholder: "Untitled",
			CharLimit:   80,
		},
		{
			ID:         "subtitle",
			Label:      "Subtitle",
			Value:      "Press enter to edit",
			Background: "#B0D0DA",
		},
		{
			ID:          "notes",
			Label:       "Notes",
			Value:       "",
			Placeholder: "Nothing yet",
			Width:       40,
		},
	}
	return registry
}

// CreateDefaultConfig writes DefaultRegistry to path unless a file already
// exists there. An empty path means the default location. Returns the path
// written.
func CreateDefaultConfig(path string) (string, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}
	if err := DefaultRegistry().SaveTo(path); err != nil {
		return "", err
	}
	return path, nil
}
