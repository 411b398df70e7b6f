// ABOUTME: CLI commands for health logs.
// ABOUTME: Supports meal, symptom, biomarker, and list subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/models"
	"github.com/spf13/cobra"
)

var (
	logMealType string
	logSeverity int
	logNotes    string
	logAt       string
	logListType string
	logListDay  string
	logLimit    int
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Record health logs",
	Long: `Record health observations: meals, symptoms, biomarker readings.

Food logs grant +10 XP to your companion; symptoms and biomarkers do not.
Supplement logs are created automatically by 'willow supplement take'.

EXAMPLES:

  willow log meal "Oatmeal with berries" -m breakfast
  willow log meal "Grilled salmon" -m dinner --notes "restaurant"
  willow log symptom "Headache" --severity 3
  willow log biomarker "Fasting glucose 92 mg/dL"
  willow log list                       # Recent logs
  willow log list --type symptom --day 2026-08-27`,
}

var logMealCmd = &cobra.Command{
	Use:   "meal <label>",
	Short: "Log a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := models.NewHealthLog(models.LogFood, args[0])

		if logMealType != "" {
			if !models.IsValidMealType(logMealType) {
				return fmt.Errorf("unknown meal type: %s\nValid types: breakfast, lunch, dinner, snack", logMealType)
			}
			l.WithMealType(models.MealType(logMealType))
		}
		if err := applyLogFlags(l); err != nil {
			return err
		}

		if err := appStore.AddHealthLog(l); err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		color.Green("✓ Logged meal %q", l.Label)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(l.ID.String()[:8]), l.Time)
		return nil
	},
}

var logSymptomCmd = &cobra.Command{
	Use:   "symptom <label>",
	Short: "Log a symptom",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := models.NewHealthLog(models.LogSymptom, args[0])

		if logSeverity != 0 {
			if !models.IsValidSeverity(logSeverity) {
				return fmt.Errorf("severity must be 1-5, got %d", logSeverity)
			}
			l.WithSeverity(logSeverity)
		}
		if err := applyLogFlags(l); err != nil {
			return err
		}

		if err := appStore.AddHealthLog(l); err != nil {
			return fmt.Errorf("failed to log symptom: %w", err)
		}

		color.Green("✓ Logged symptom %q", l.Label)
		if l.Severity != nil {
			fmt.Printf("  severity %d/5\n", *l.Severity)
		}
		return nil
	},
}

var logBiomarkerCmd = &cobra.Command{
	Use:   "biomarker <label>",
	Short: "Log a biomarker reading",
	Long: `Log a biomarker reading as freeform text.

Example:
  willow log biomarker "Fasting glucose 92 mg/dL"
  willow log biomarker "Resting HR 58 bpm" --notes "morning"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := models.NewHealthLog(models.LogBiomarker, args[0])
		if err := applyLogFlags(l); err != nil {
			return err
		}

		if err := appStore.AddHealthLog(l); err != nil {
			return fmt.Errorf("failed to log biomarker: %w", err)
		}

		color.Green("✓ Logged biomarker %q", l.Label)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List health logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()

		var logs []*models.HealthLog
		for _, l := range doc.HealthLogs {
			if logListType != "" && string(l.Type) != logListType {
				continue
			}
			if logListDay != "" && l.Day() != logListDay {
				continue
			}
			logs = append(logs, l)
		}
		if len(logs) == 0 {
			fmt.Println("No logs found.")
			return nil
		}

		// Newest first, capped by --limit.
		start := len(logs) - logLimit
		if logLimit <= 0 || start < 0 {
			start = 0
		}
		logs = logs[start:]

		faint := color.New(color.Faint)
		for i := len(logs) - 1; i >= 0; i-- {
			l := logs[i]
			extra := ""
			if l.Severity != nil {
				extra = fmt.Sprintf(" severity:%d", *l.Severity)
			}
			if l.MealType != "" {
				extra += faint.Sprintf(" %s", l.MealType)
			}
			if l.Notes != nil && *l.Notes != "" {
				extra += faint.Sprintf(" (%s)", truncate(*l.Notes, 30))
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(l.ID.String()[:8]),
				faint.Sprint(l.RecordedAt.Format("2006-01-02 15:04")),
				padRight(string(l.Type), 10),
				l.Label,
				extra)
		}
		return nil
	},
}

var logRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a health log",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := resolveHealthLog(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}

		if err := appStore.DeleteHealthLog(l.ID); err != nil {
			return fmt.Errorf("failed to delete log: %w", err)
		}

		color.Yellow("✗ Deleted %s log %q", l.Type, l.Label)
		return nil
	},
}

func applyLogFlags(l *models.HealthLog) error {
	if logNotes != "" {
		l.WithNotes(logNotes)
	}
	if logAt != "" {
		t, err := parseTime(logAt)
		if err != nil {
			return fmt.Errorf("invalid timestamp: %s", logAt)
		}
		l.WithRecordedAt(t)
	}
	return nil
}

func init() {
	logMealCmd.Flags().StringVarP(&logMealType, "meal-type", "m", "", "breakfast, lunch, dinner, or snack")
	logSymptomCmd.Flags().IntVar(&logSeverity, "severity", 0, "severity 1-5")

	for _, c := range []*cobra.Command{logMealCmd, logSymptomCmd, logBiomarkerCmd} {
		c.Flags().StringVar(&logNotes, "notes", "", "notes for the log")
		c.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	}

	logListCmd.Flags().StringVarP(&logListType, "type", "t", "", "filter by log type (symptom, food, biomarker, supplement)")
	logListCmd.Flags().StringVar(&logListDay, "day", "", "filter by day (YYYY-MM-DD)")
	logListCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "max number of results")

	logCmd.AddCommand(logMealCmd)
	logCmd.AddCommand(logSymptomCmd)
	logCmd.AddCommand(logBiomarkerCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logRmCmd)
	rootCmd.AddCommand(logCmd)
}
