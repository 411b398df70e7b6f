// ABOUTME: CLI commands for weekly meal plans.
// ABOUTME: Supports add, list, today, and rm subcommands.
package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/models"
	"github.com/spf13/cobra"
)

var (
	mealPlanType     string
	mealPlanDays     string
	mealPlanPortions string
	mealPlanTime     string
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage weekly meal plans",
	Long: `Plan meals as weekly-recurring templates.

A plan covers specific weekdays and may record a portion per weekday.
Days without a recorded portion fall back to "Standard".

EXAMPLES:

  willow meal add "Overnight oats" --type breakfast --days 1,2,3,4,5
  willow meal add "Salmon bowl" --type dinner --days 1,3 \
      --portions "1=200g,3=250g" --time 18:30
  willow meal list
  willow meal today                # What's planned for today
  willow meal rm "Salmon bowl"`,
}

var mealAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a meal plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMealType(mealPlanType) {
			return fmt.Errorf("unknown meal type: %s\nValid types: breakfast, lunch, dinner, snack", mealPlanType)
		}
		days, err := parseWeekdays(mealPlanDays)
		if err != nil {
			return err
		}

		p := models.NewMealPlan(args[0], models.MealType(mealPlanType), days)

		if mealPlanPortions != "" {
			portions, err := parsePortions(mealPlanPortions)
			if err != nil {
				return err
			}
			for day, portion := range portions {
				p.WithPortion(day, portion)
			}
		}
		if mealPlanTime != "" {
			p.WithTime(mealPlanTime)
		}

		if err := appStore.AddMealPlan(p); err != nil {
			return fmt.Errorf("failed to add meal plan: %w", err)
		}

		color.Green("✓ Added meal plan %q", p.Name)
		fmt.Printf("  %s %s on %s\n",
			color.New(color.Faint).Sprint(p.ID.String()[:8]),
			p.MealType, mealPlanDays)
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List meal plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()
		if len(doc.MealPlans) == 0 {
			fmt.Println("No meal plans yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range doc.MealPlans {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(p.ID.String()[:8]),
				padRight(p.Name, 24),
				faint.Sprint(padRight(string(p.MealType), 10)),
				weekdayNames(p.SelectedDays))
		}
		return nil
	},
}

var mealTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's planned meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()
		weekday := time.Now().Weekday()

		var active []*models.MealPlan
		for _, p := range doc.MealPlans {
			if p.ActiveOn(weekday) {
				active = append(active, p)
			}
		}
		if len(active) == 0 {
			fmt.Println("Nothing planned for today.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range active {
			slot := p.Time
			if slot == "" {
				slot = "--:--"
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(slot),
				padRight(string(p.MealType), 10),
				padRight(p.Name, 24),
				p.PortionFor(weekday))
		}
		return nil
	},
}

var mealRmCmd = &cobra.Command{
	Use:     "rm <id|name>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a meal plan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveMealPlan(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}
		if err := appStore.DeleteMealPlan(p.ID); err != nil {
			return fmt.Errorf("failed to delete meal plan: %w", err)
		}
		color.Yellow("✗ Deleted meal plan %q", p.Name)
		return nil
	},
}

// parsePortions parses "1=200g,3=250g" into weekday -> portion.
func parsePortions(s string) (map[int]string, error) {
	portions := make(map[int]string)
	for _, pair := range strings.Split(s, ",") {
		day, portion, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || portion == "" {
			return nil, fmt.Errorf("invalid portion: %s (use day=portion, e.g. 1=200g)", pair)
		}
		days, err := parseWeekdays(day)
		if err != nil {
			return nil, err
		}
		portions[days[0]] = portion
	}
	return portions, nil
}

func weekdayNames(days []int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)
	var parts []string
	for _, d := range sorted {
		if d >= 0 && d < len(names) {
			parts = append(parts, names[d])
		}
	}
	return strings.Join(parts, ",")
}

func init() {
	mealAddCmd.Flags().StringVarP(&mealPlanType, "type", "t", "dinner", "breakfast, lunch, dinner, or snack")
	mealAddCmd.Flags().StringVar(&mealPlanDays, "days", "", "comma-separated weekdays (0=Sun..6=Sat)")
	mealAddCmd.Flags().StringVar(&mealPlanPortions, "portions", "", "per-day portions, e.g. \"1=200g,3=250g\"")
	mealAddCmd.Flags().StringVar(&mealPlanTime, "time", "", "time of day (HH:mm)")
	_ = mealAddCmd.MarkFlagRequired("days")

	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealTodayCmd)
	mealCmd.AddCommand(mealRmCmd)
	rootCmd.AddCommand(mealCmd)
}
