package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/editable/internal/editable"
)

func TestGetConfigDirUsesXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, "editable"); got != want {
		t.Errorf("GetConfigDir() = %q, want %q", got, want)
	}
}

func TestGetLogPathUsesXDGState(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() error = %v", err)
	}
	if want := filepath.Join(dir, "editable", "editable.log"); got != want {
		t.Errorf("GetLogPath() = %q, want %q", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "fields.yaml" {
		t.Errorf("GetConfigPath() should end with 'fields.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != CurrentVersion {
		t.Errorf("NewRegistry().Version = %v, want %v", reg.Version, CurrentVersion)
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.ConfirmDelay() != DefaultConfirmDelay {
		t.Errorf("ConfirmDelay() = %v, want %v", reg.Preferences.ConfirmDelay(), DefaultConfirmDelay)
	}
}

func TestConfirmDelayFallback(t *testing.T) {
	var p *Preferences
	if p.ConfirmDelay() != DefaultConfirmDelay {
		t.Errorf("nil ConfirmDelay() = %v, want default", p.ConfirmDelay())
	}
	p = &Preferences{ConfirmDelayMS: 50}
	if p.ConfirmDelay() != 50*time.Millisecond {
		t.Errorf("ConfirmDelay() = %v, want 50ms", p.ConfirmDelay())
	}
}

func TestRegistryAddField(t *testing.T) {
	reg := NewRegistry()

	if err := reg.AddField(&FieldPreset{ID: "a", Value: "1"}); err != nil {
		t.Fatalf("AddField() error = %v", err)
	}
	if err := reg.AddField(&FieldPreset{ID: "a"}); err == nil {
		t.Error("AddField() with duplicate id should fail")
	}
	if err := reg.AddField(&FieldPreset{}); err == nil {
		t.Error("AddField() without id should fail")
	}
	if got := reg.GetField("a"); got == nil || got.Value != "1" {
		t.Errorf("GetField(\"a\") = %+v", got)
	}
	if reg.GetField("missing") != nil {
		t.Error("GetField(\"missing\") should be nil")
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fields.yaml")

	reg := DefaultRegistry()
	reg.Fields[2].State = editable.Editing
	if err := reg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.Contains(string(data), "state: editing") {
		t.Errorf("saved file should spell the state name:\n%s", data)
	}

	loaded, err := LoadRegistryFrom(path)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if diff := cmp.Diff(reg, loaded); diff != "" {
		t.Errorf("registry mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestLoadRegistryFromMissingFile(t *testing.T) {
	reg, err := LoadRegistryFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if len(reg.Fields) != 0 {
		t.Errorf("missing file should give an empty registry, got %d fields", len(reg.Fields))
	}
}

func TestLoadRegistryFromInvalid(t *testing.T) {
	tests := map[string]string{
		"bad version":   "version: 2\n",
		"bad state":     "version: 1\nfields:\n  - id: a\n    state: frozen\n",
		"duplicate id":  "version: 1\nfields:\n  - id: a\n  - id: a\n",
		"missing id":    "version: 1\nfields:\n  - value: x\n",
		"negative size": "version: 1\nfields:\n  - id: a\n    width: -1\n",
		"not yaml":      "version: [\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fields.yaml")
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadRegistryFrom(path); err == nil {
				t.Error("LoadRegistryFrom() should fail")
			}
		})
	}
}

func TestLoadRegistryFillsPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")
	content := "version: 1\nfields:\n  - id: a\n    value: x\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadRegistryFrom(path)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if reg.Preferences == nil {
		t.Fatal("Preferences should be filled in")
	}
	if reg.Fields[0].State != editable.Displaying {
		t.Errorf("default state = %v, want displaying", reg.Fields[0].State)
	}
}

func TestCreateDefaultConfigRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")

	written, err := CreateDefaultConfig(path)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if written != path {
		t.Errorf("CreateDefaultConfig() wrote %q, want %q", written, path)
	}
	if _, err := CreateDefaultConfig(path); err == nil {
		t.Error("second CreateDefaultConfig() should fail")
	}
}

func TestCreateDefaultConfigDefaultLocation(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	written, err := CreateDefaultConfig("")
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if want := filepath.Join(dir, "editable", "fields.yaml"); written != want {
		t.Errorf("CreateDefaultConfig() wrote %q, want %q", written, want)
	}
}
