// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/willow/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your wellness data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "willow": {
        "command": "willow",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  add_habit           Create a habit
  list_habits         List habits with today's completion state
  toggle_habit        Toggle a habit's completion for a day
  add_task            Schedule a timeline task
  complete_task       Toggle a task's completion
  log_meal            Record a meal
  log_symptom         Record a symptom with severity
  take_supplement     Take a supplement dose
  restock_forecast    Rank supplements by restock urgency
  pet_status          Companion level, XP, and mood
  join_protocol       Join a wellness protocol
  progress_stats      Streak, consistency, and active days

AVAILABLE RESOURCES:

  willow://today      Today's tasks, habits, and logs
  willow://pet        Companion state
  willow://summary    Streaks, restock forecast, cost projections`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appStore)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
