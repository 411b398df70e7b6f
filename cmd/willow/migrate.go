// ABOUTME: CLI command for moving the snapshot between storage backends.
// ABOUTME: Loads from the source backend and writes through the destination.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Move data between storage backends",
	Long: `Copy the snapshot from one storage backend to another.

Use this after switching backends with 'willow config backend'.
The source data is left in place; delete it manually once you have
verified the destination.

EXAMPLES:

  willow migrate --from file --to sqlite --dry-run
  willow migrate --from file --to sqlite
  willow migrate --from sqlite --to charm`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination backends are the same: %s", migrateFrom)
		}

		src, err := cfg.OpenBackend(migrateFrom)
		if err != nil {
			return fmt.Errorf("failed to open source backend: %w", err)
		}
		defer src.Close()

		data, err := src.Load()
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
		if data == nil {
			return fmt.Errorf("no snapshot found in %s backend", migrateFrom)
		}

		if migrateDryRun {
			color.Yellow("Dry run - no changes will be made")
			fmt.Printf("Would copy %d bytes from %s to %s.\n", len(data), migrateFrom, migrateTo)
			return nil
		}

		dst, err := cfg.OpenBackend(migrateTo)
		if err != nil {
			return fmt.Errorf("failed to open destination backend: %w", err)
		}
		defer dst.Close()

		if err := dst.Save(data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		color.Green("✓ Migrated snapshot from %s to %s", migrateFrom, migrateTo)
		fmt.Println("Set the new backend as active with 'willow config backend " + migrateTo + "'.")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "file", "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
