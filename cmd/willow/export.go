// ABOUTME: CLI commands for exporting and importing the full snapshot.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/report"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export wellness data",
	Long: `Export the full snapshot in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown report over all data (for documentation/sharing)

EXAMPLES:

  willow export json                        # Export all data as JSON
  willow export json -o backup.json         # Save to file
  willow export yaml
  willow export markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = report.ExportJSON(doc)
		case "yaml":
			data, err = report.ExportYAML(doc)
		case "markdown":
			data = []byte(report.ExportMarkdown(doc))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import wellness data from JSON",
	Long: `Import a snapshot from a JSON backup file.

This REPLACES the current snapshot with the imported one. Export a
backup first if the current data matters.

EXAMPLES:

  willow import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		doc, err := report.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		if err := appStore.Replace(doc); err != nil {
			return fmt.Errorf("failed to save imported data: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
