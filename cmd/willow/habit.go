// ABOUTME: CLI commands for managing habits.
// ABOUTME: Supports add, list, done (toggle), and rm subcommands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/models"
	"github.com/spf13/cobra"
)

var (
	habitColor     string
	habitIcon      string
	habitFrequency string
	habitDays      string
	habitDoneDate  string
)

var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"h"},
	Short:   "Manage habits",
	Long: `Track recurring practices with streaks and completion history.

Each habit records the set of days it was completed. Marking a habit done
grants +10 XP to your companion; un-marking takes the same amount back.

FREQUENCIES:

  daily      every day (default)
  weekdays   Monday through Friday
  weekends   Saturday and Sunday
  custom     specific weekdays via --days (0=Sun..6=Sat)

EXAMPLES:

  willow habit add "Morning run" --icon 🏃
  willow habit add "Meal prep" --frequency custom --days 0,3
  willow habit list
  willow habit done abc12345                # Toggle today
  willow habit done abc12345 --date 2026-08-27
  willow habit rm abc12345`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := models.NewHabit(args[0], habitColor, habitIcon)

		if habitFrequency != "" {
			if !models.IsValidFrequency(habitFrequency) {
				return fmt.Errorf("unknown frequency: %s\nValid frequencies: daily, weekdays, weekends, custom", habitFrequency)
			}
			h.WithFrequency(models.Frequency(habitFrequency))
		}
		if habitDays != "" {
			days, err := parseWeekdays(habitDays)
			if err != nil {
				return err
			}
			h.WithFrequency(models.FrequencyCustom).WithCustomDays(days)
		}

		if err := appStore.AddHabit(h); err != nil {
			return fmt.Errorf("failed to add habit: %w", err)
		}

		color.Green("✓ Added habit %q", h.Title)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(h.ID.String()[:8]))
		return nil
	},
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()
		if len(doc.Habits) == 0 {
			fmt.Println("No habits yet. Add one with 'willow habit add <title>'.")
			return nil
		}

		today := models.Today()
		faint := color.New(color.Faint)
		for _, h := range doc.Habits {
			mark := " "
			if h.CompletedOn(today) {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %s %s %s streak:%d\n",
				faint.Sprint(h.ID.String()[:8]),
				mark,
				padRight(h.Title, 24),
				faint.Sprint(padRight(string(h.Frequency), 9)),
				h.Streak)
		}
		return nil
	},
}

var habitDoneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle"},
	Short:   "Toggle habit completion for a day",
	Long: `Toggle a habit's completion for a day (today by default).

Completing grants +10 XP; toggling the same day again removes the
completion and takes the XP back.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := resolveHabit(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}

		date := habitDoneDate
		if date == "" {
			date = models.Today()
		}

		if err := appStore.ToggleHabit(h.ID, date); err != nil {
			return fmt.Errorf("failed to toggle habit: %w", err)
		}

		updated, err := resolveHabit(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}
		if updated.CompletedOn(date) {
			color.Green("✓ %s completed on %s", updated.Title, date)
		} else {
			color.Yellow("✗ %s unmarked for %s", updated.Title, date)
		}
		fmt.Printf("  streak: %d\n", updated.Streak)
		return nil
	},
}

var habitRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a habit",
	Long: `Delete a habit by its ID or ID prefix.

Timeline tasks linked to the habit are kept; their habit reference is
left dangling.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := resolveHabit(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}
		if err := appStore.DeleteHabit(h.ID); err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		color.Yellow("✗ Deleted habit %q", h.Title)
		return nil
	},
}

func parseWeekdays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday: %s (use 0=Sun..6=Sat)", part)
		}
		days = append(days, d)
	}
	return days, nil
}

func init() {
	habitAddCmd.Flags().StringVar(&habitColor, "color", "#4caf50", "display color")
	habitAddCmd.Flags().StringVar(&habitIcon, "icon", "", "display icon")
	habitAddCmd.Flags().StringVarP(&habitFrequency, "frequency", "f", "", "daily, weekdays, weekends, or custom")
	habitAddCmd.Flags().StringVar(&habitDays, "days", "", "comma-separated weekdays for custom frequency (0=Sun..6=Sat)")
	habitDoneCmd.Flags().StringVar(&habitDoneDate, "date", "", "day to toggle (YYYY-MM-DD, default today)")

	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitDoneCmd)
	habitCmd.AddCommand(habitRmCmd)
	rootCmd.AddCommand(habitCmd)
}
