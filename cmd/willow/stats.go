// ABOUTME: CLI command for progress statistics.
// ABOUTME: Shows streak, weekly consistency, active days, and companion level.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/insights"
	"github.com/harperreed/willow/internal/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	Long: `Show derived progress statistics.

  Streak        consecutive days (walking back from today) with at least
                one habit completed; today counts as a grace day if empty
  Consistency   completions this week out of 7 x habit count, as a percent
  Active days   distinct days with any habit completion

EXAMPLES:

  willow stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()
		now := time.Now()
		today := models.Today()

		fmt.Println(color.New(color.Bold).Sprint("Progress"))
		fmt.Printf("  Streak:       %d day(s)\n", insights.Streak(doc.Habits, now))
		fmt.Printf("  Consistency:  %d%% this week\n", insights.Consistency(doc.Habits, now))
		fmt.Printf("  Active days:  %d\n", insights.ActiveDays(doc.Habits))
		fmt.Printf("  Today:        %d/%d habits done\n",
			insights.CompletedOn(doc.Habits, today), len(doc.Habits))

		fmt.Println()
		pet := doc.Pet
		fmt.Printf("%s is level %d (%d/%d XP), feeling %s\n",
			color.New(color.Bold).Sprint(pet.Name),
			pet.Level, pet.LevelProgress(), models.XPPerLevel, pet.Mood)

		if next := insights.NextRestock(doc.Supplements); next != nil && next.LowStock() {
			fmt.Println()
			color.Yellow("⚠ %s runs out in %d day(s)", next.Name, next.DaysRemaining())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
