package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/editable/internal/config"
	"github.com/muurk/editable/internal/editable"
	"github.com/muurk/editable/internal/host"
	"github.com/muurk/editable/internal/logging"
	"github.com/muurk/editable/internal/ui"
)

// Command flags
var (
	fieldValue  string
	fieldLabel  string
	background  string
	stateName   string
	configPath  string
	logLevel    string
	logPath     string
	delay       time.Duration
	rejectEmpty bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Presets file (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "Log file (default: platform state dir)")

	rootCmd.Flags().StringVar(&fieldValue, "value", "", "Initial value of a single field (ignores presets)")
	rootCmd.Flags().StringVar(&fieldLabel, "label", "Value", "Label of the single field")
	rootCmd.Flags().StringVar(&background, "background", editable.DefaultBackground, "Background color of the single field")
	rootCmd.Flags().StringVar(&stateName, "state", "displaying", "Initial state of the single field (displaying, editing, updating)")
	rootCmd.Flags().DurationVar(&delay, "delay", 0, "Simulated commit round-trip (default from presets file)")
	rootCmd.Flags().BoolVar(&rejectEmpty, "reject-empty", false, "Reject commits of empty values")

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsInitCmd)
	rootCmd.AddCommand(presetsCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	if err := initLogging(registry); err != nil {
		return err
	}
	defer logging.Sync()

	presets := registry.Fields
	if cmd.Flags().Changed("value") || len(presets) == 0 {
		state, err := editable.ParseState(stateName)
		if err != nil {
			return fmt.Errorf("invalid --state: %w", err)
		}
		presets = []*config.FieldPreset{{
			ID:         "value",
			Label:      fieldLabel,
			Value:      fieldValue,
			Background: background,
			State:      state,
		}}
	}

	confirmDelay := registry.Preferences.ConfirmDelay()
	if cmd.Flags().Changed("delay") {
		confirmDelay = delay
	}

	var confirmer host.Confirmer
	if rejectEmpty {
		confirmer = func(id, value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("value must not be empty")
			}
			return nil
		}
	}

	logging.Info("Starting demo",
		zap.Int("fields", len(presets)),
		zap.Duration("confirm_delay", confirmDelay),
	)

	model := host.New(host.Options{
		Presets:      presets,
		ConfirmDelay: confirmDelay,
		Confirmer:    confirmer,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

func loadRegistry() (*config.Registry, error) {
	var (
		registry *config.Registry
		err      error
	)
	if configPath != "" {
		registry, err = config.LoadRegistryFrom(configPath)
	} else {
		registry, err = config.LoadRegistry()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	return registry, nil
}

func initLogging(registry *config.Registry) error {
	level := logLevel
	if level == "" && registry.Preferences != nil {
		level = registry.Preferences.LogLevel
	}

	path := logPath
	if path == "" {
		p, err := config.GetLogPath()
		if err != nil {
			return fmt.Errorf("failed to get log path: %w", err)
		}
		path = p
	}
	return logging.Initialize(level, path)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage field presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list [id...]",
	Short: "List field presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		return listPresets(cmd.OutOrStdout(), registry, args)
	},
}

var presetsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example presets file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

// Flags for presets add
var (
	addID          string
	addLabel       string
	addValue       string
	addBackground  string
	addState       string
	addPlaceholder string
)

var presetsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a field preset",
	Example: `  editable-demo presets add --id city --label City --value Berlin
  editable-demo presets add --id draft --value "" --state editing`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := editable.ParseState(addState)
		if err != nil {
			return fmt.Errorf("invalid --state: %w", err)
		}
		path, err := addPreset(&config.FieldPreset{
			ID:          addID,
			Label:       addLabel,
			Value:       addValue,
			Background:  addBackground,
			State:       state,
			Placeholder: addPlaceholder,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", addID, path)
		return nil
	},
}

func init() {
	presetsAddCmd.Flags().StringVar(&addID, "id", "", "Preset id (required)")
	presetsAddCmd.Flags().StringVar(&addLabel, "label", "", "Field label")
	presetsAddCmd.Flags().StringVar(&addValue, "value", "", "Initial value")
	presetsAddCmd.Flags().StringVar(&addBackground, "background", "", "Background color (default "+editable.DefaultBackground+")")
	presetsAddCmd.Flags().StringVar(&addState, "state", "displaying", "Initial state (displaying, editing, updating)")
	presetsAddCmd.Flags().StringVar(&addPlaceholder, "placeholder", "", "Placeholder shown for an empty value")
	_ = presetsAddCmd.MarkFlagRequired("id")

	presetsCmd.AddCommand(presetsAddCmd)
}

// listPresets prints the presets named in ids, or all of them.
func listPresets(w io.Writer, registry *config.Registry, ids []string) error {
	printer := ui.NewPrinter(w)

	presets := registry.Fields
	if len(ids) > 0 {
		presets = nil
		for _, id := range ids {
			f := registry.GetField(id)
			if f == nil {
				return fmt.Errorf("no preset with id %q", id)
			}
			presets = append(presets, f)
		}
	}

	if len(presets) == 0 {
		printer.Println("No presets. Run 'editable-demo presets init' to create examples.")
		return nil
	}
	for _, f := range presets {
		printer.PrintDetails(f.ID, presetDetails(f))
		printer.Newline()
	}
	return nil
}

// addPreset appends f to the presets file and returns the file path.
func addPreset(f *config.FieldPreset) (string, error) {
	path, err := presetsPath()
	if err != nil {
		return "", err
	}
	registry, err := config.LoadRegistryFrom(path)
	if err != nil {
		return "", fmt.Errorf("failed to load presets: %w", err)
	}
	if err := registry.AddField(f); err != nil {
		return "", err
	}
	if err := registry.SaveTo(path); err != nil {
		return "", err
	}
	return path, nil
}

func presetsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

func presetDetails(f *config.FieldPreset) map[string]string {
	bg := f.Background
	if bg == "" {
		bg = editable.DefaultBackground + " (default)"
	}
	details := map[string]string{
		"Label":      f.Label,
		"Value":      strconv.Quote(f.Value),
		"Background": bg,
		"State":      f.State.String(),
	}
	if f.Placeholder != "" {
		details["Placeholder"] = f.Placeholder
	}
	if f.CharLimit > 0 {
		details["Char limit"] = strconv.Itoa(f.CharLimit)
	}
	return details
}
