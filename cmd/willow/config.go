// ABOUTME: CLI commands for viewing and changing tool configuration.
// ABOUTME: Backend selection and data directory live in the config file.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show or change willow configuration.

BACKENDS:

  file     JSON snapshot on disk (default)
  sqlite   snapshot in a local SQLite database
  charm    Charm KV with E2E-encrypted cloud sync

EXAMPLES:

  willow config                    # Show current configuration
  willow config backend sqlite     # Switch storage backend`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Backend:   %s\n", cfg.GetBackend())
		fmt.Printf("Data dir:  %s\n", cfg.GetDataDir())
		return nil
	},
}

var configBackendCmd = &cobra.Command{
	Use:       "backend <name>",
	Short:     "Set the storage backend",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"file", "sqlite", "charm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		switch name {
		case "file", "sqlite", "charm":
		default:
			return fmt.Errorf("unknown backend: %s (use file, sqlite, or charm)", name)
		}

		cfg.Backend = name
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Backend set to %s", name)
		if name != "file" {
			fmt.Println("Run 'willow migrate --from file --to " + name + "' to move existing data.")
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configBackendCmd)
	rootCmd.AddCommand(configCmd)
}
