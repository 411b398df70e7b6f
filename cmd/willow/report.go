// ABOUTME: CLI command for generating markdown wellness reports.
// ABOUTME: Supports preset ranges, custom from/to dates, and section toggles.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportFrom     string
	reportTo       string
	reportSections string
	reportOutput   string
)

var reportCmd = &cobra.Command{
	Use:   "report [today|week|month|all]",
	Short: "Generate a wellness report",
	Long: `Generate a markdown report over a date range.

RANGES:

  today      the current day
  week       this week, starting Monday
  month      the current calendar month
  all        everything (default)

  Or use --from/--to for a custom inclusive range of days.

SECTIONS:

  habits, tasks, meals, symptoms, supplements — all on by default,
  restrict with --sections. Symptom sections include biomarkers.

EXAMPLES:

  willow report week
  willow report --from 2026-08-01 --to 2026-08-15
  willow report month --sections habits,meals
  willow report week -o report.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r report.Range
		switch {
		case reportFrom != "" || reportTo != "":
			if reportFrom == "" || reportTo == "" {
				return fmt.Errorf("custom range needs both --from and --to")
			}
			var err error
			r, err = report.CustomRange(reportFrom, reportTo)
			if err != nil {
				return err
			}
		case len(args) == 1:
			if !report.IsValidRangeKind(args[0]) {
				return fmt.Errorf("unknown range: %s (use today, week, month, or all)", args[0])
			}
			r = report.RangeFor(report.RangeKind(args[0]), time.Now())
		default:
			r = report.RangeFor(report.RangeAll, time.Now())
		}

		sections, err := parseSections(reportSections)
		if err != nil {
			return err
		}

		rep := report.Build(appStore.Snapshot(), r, sections)
		md := rep.Markdown()

		if reportOutput != "" {
			if err := os.WriteFile(reportOutput, []byte(md), 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Report written to %s", reportOutput)
			return nil
		}
		fmt.Print(md)
		return nil
	},
}

func parseSections(s string) (report.Sections, error) {
	if s == "" {
		return report.AllSections(), nil
	}
	var sections report.Sections
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "habits":
			sections.Habits = true
		case "tasks":
			sections.Tasks = true
		case "meals":
			sections.Meals = true
		case "symptoms":
			sections.Symptoms = true
		case "supplements":
			sections.Supplements = true
		default:
			return sections, fmt.Errorf("unknown section: %s", name)
		}
	}
	return sections, nil
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "custom range start (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "custom range end (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportSections, "sections", "", "comma-separated sections to include")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(reportCmd)
}
