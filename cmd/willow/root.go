// ABOUTME: Root Cobra command for willow CLI.
// ABOUTME: Handles config load and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/willow/internal/config"
	"github.com/harperreed/willow/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	appStore *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "willow",
	Short: "Personal wellness tracker",
	Long: `Willow is a CLI tool for tracking personal wellness.

WHAT IT TRACKS:

  Habits         recurring practices with streaks and completion history
  Timeline       scheduled tasks (habits, todos, medication, meals, events)
  Health Logs    symptoms, meals, biomarkers, supplement intake
  Supplements    pill inventory with restock forecasts and cost projections
  Meal Plans     weekly-recurring meal templates with per-day portions
  Social         friends roster and an activity feed
  Protocols      creator-authored wellness programs you can join

COMPANION:

  Completing habits, tasks, and supplement doses earns experience points
  for your companion pet. It levels up every 100 XP.

  $ willow pet status                   # See level, XP, and mood
  $ willow pet chat "hello"             # Talk to your companion

QUICK START:

  $ willow habit add "Morning run"      # Create a habit
  $ willow habit done <id>              # Mark it complete today (+10 XP)
  $ willow log meal "Oatmeal" -m breakfast
  $ willow supplement take <id>         # Take a dose (+10 XP)
  $ willow stats                        # Streak, consistency, active days
  $ willow report week                  # Markdown report for this week

SYNC:

  Data can sync across devices using Charm Cloud, E2E encrypted with
  your SSH key. Enable with 'willow config backend charm', then:

  $ willow sync link      # Link device to your Charm account
  $ willow sync status    # Check sync status

MCP INTEGRATION:

  Run 'willow mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "willow": { "command": "willow", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  State is stored as a single snapshot in the configured backend:
  file (default, ~/.local/share/willow), sqlite, or charm.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Skip store open for commands that manage the backend itself
		// or never touch state.
		if skipStoreOpen(cmd.Name()) {
			return nil
		}

		appStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appStore != nil {
			return appStore.Close()
		}
		return nil
	},
}

func skipStoreOpen(name string) bool {
	switch name {
	case "help", "version", "completion", "config", "backend",
		"migrate", "link", "unlink", "wipe", "reset", "repair",
		"install-skill":
		return true
	}
	return false
}
