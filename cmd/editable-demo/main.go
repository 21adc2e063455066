// Editable-demo hosts inline-editable text fields in the terminal.
//
// Each field shows its value read-only until enter (or e) is pressed, then
// edits it in place. Enter commits, esc cancels. Commits are answered by the
// demo host after a short simulated round-trip.
//
// Usage:
//
//	editable-demo [flags]
//	editable-demo presets [list|init]
//
// Without --value the fields come from the presets file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/editable/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "editable-demo",
	Short: "Inline-editable text fields in the terminal",
	Long: `Runs a terminal UI hosting one or more inline-editable text fields.

A field displays its committed value until editing starts. While editing,
enter commits the working value and esc discards it. A commit is answered
by the host after --delay, which either confirms the new value or rejects
it and returns the field to editing.

Fields come from the presets file unless --value is given.`,
	Example: `  # Fields from the presets file
  editable-demo

  # A single field
  editable-demo --value "Hello" --label Greeting

  # Start in editing state with a custom background
  editable-demo --value "Hello" --state editing --background "#B0D0DA"`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("editable-demo %s\n", version.Full())
	},
}
