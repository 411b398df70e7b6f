// ABOUTME: CLI commands for the supplement inventory.
// ABOUTME: Supports add, list, take, forecast, cost, and rm subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/insights"
	"github.com/harperreed/willow/internal/models"
	"github.com/spf13/cobra"
)

var (
	suppStock    int
	suppFreq     int
	suppCost     float64
	suppPills    int
	suppVital    bool
	costPeriod   string
	costCategory string
)

var supplementCmd = &cobra.Command{
	Use:     "supplement",
	Aliases: []string{"supp"},
	Short:   "Manage supplement inventory",
	Long: `Track supplement stock, intake, restock forecasts, and cost.

Stock is a pill count. Taking a dose decrements stock by one, logs a
supplement entry, and grants +10 XP. Stock never goes below zero.

FORECASTING:

  Days of supply = stock / pills-per-day.
  Low stock means a week or less remains; critical means three days.
  'willow supplement forecast' ranks what to reorder first: critical
  items, then vital items, then whatever runs out soonest.

EXAMPLES:

  willow supplement add "Vitamin D" "2000 IU" --stock 90 --frequency 1 \
      --cost 14.99 --pills 90 --vital
  willow supplement list
  willow supplement take "Vitamin D"
  willow supplement forecast
  willow supplement cost --period monthly
  willow supplement cost --period monthly --category vital`,
}

var supplementAddCmd = &cobra.Command{
	Use:   "add <name> <dosage>",
	Short: "Add a supplement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := models.NewSupplement(args[0], args[1], suppStock, suppFreq)
		if suppCost > 0 {
			s.WithCost(suppCost, suppPills)
		}
		if suppVital {
			s.WithCategory(models.CategoryVital)
		}

		if err := appStore.AddSupplement(s); err != nil {
			return fmt.Errorf("failed to add supplement: %w", err)
		}

		color.Green("✓ Added %s (%s)", s.Name, s.Dosage)
		fmt.Printf("  %s stock:%d %d/day\n",
			color.New(color.Faint).Sprint(s.ID.String()[:8]),
			s.Stock, s.Frequency)
		return nil
	},
}

var supplementListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List supplements",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()
		if len(doc.Supplements) == 0 {
			fmt.Println("No supplements yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range doc.Supplements {
			flag := ""
			switch {
			case s.Critical():
				flag = color.RedString(" CRITICAL")
			case s.LowStock():
				flag = color.YellowString(" low")
			}
			fmt.Printf("%s %s %s stock:%-4d %dd left%s\n",
				faint.Sprint(s.ID.String()[:8]),
				padRight(s.Name, 20),
				faint.Sprint(padRight(s.Dosage, 10)),
				s.Stock,
				s.DaysRemaining(),
				flag)
		}
		return nil
	},
}

var supplementTakeCmd = &cobra.Command{
	Use:   "take <id|name>",
	Short: "Take a dose",
	Long: `Take one dose of a supplement.

Decrements stock, appends a supplement log entry, and grants +10 XP.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSupplement(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}

		if err := appStore.TakeSupplement(s.ID); err != nil {
			return fmt.Errorf("failed to take supplement: %w", err)
		}

		updated, err := resolveSupplement(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}
		color.Green("✓ Took %s", updated.Name)
		fmt.Printf("  stock: %d (%d days left)\n", updated.Stock, updated.DaysRemaining())
		if updated.Critical() {
			color.Red("  Running out within %d days. Reorder now.", models.CriticalStockDays)
		} else if updated.LowStock() {
			color.Yellow("  A week or less of supply remains.")
		}
		return nil
	},
}

var supplementForecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Restock forecast",
	Long:  `Rank supplements by restock urgency: critical first, then vital, then fewest days of supply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()
		ranked := insights.RankRestock(doc.Supplements)
		if len(ranked) == 0 {
			fmt.Println("No supplements to forecast.")
			return nil
		}

		faint := color.New(color.Faint)
		for i, s := range ranked {
			flag := ""
			switch {
			case s.Critical():
				flag = color.RedString(" CRITICAL")
			case s.LowStock():
				flag = color.YellowString(" low")
			}
			fmt.Printf("%2d. %s %s %2dd left%s\n",
				i+1,
				padRight(s.Name, 20),
				faint.Sprint(padRight(string(s.Category), 9)),
				s.DaysRemaining(),
				flag)
		}
		return nil
	},
}

var supplementCostCmd = &cobra.Command{
	Use:   "cost",
	Short: "Project supplement spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !insights.IsValidCostPeriod(costPeriod) {
			return fmt.Errorf("unknown period: %s (use daily, weekly, or monthly)", costPeriod)
		}

		var category *models.SupplementCategory
		if costCategory != "" {
			if !models.IsValidSupplementCategory(costCategory) {
				return fmt.Errorf("unknown category: %s (use vital or non-vital)", costCategory)
			}
			c := models.SupplementCategory(costCategory)
			category = &c
		}

		doc := appStore.Snapshot()
		total := insights.ProjectedCost(doc.Supplements, insights.CostPeriod(costPeriod), category)

		label := costPeriod
		if category != nil {
			label += " " + costCategory
		}
		fmt.Printf("%s spend: $%.2f\n", label, total)
		return nil
	},
}

var supplementRmCmd = &cobra.Command{
	Use:     "rm <id|name>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a supplement",
	Long: `Delete a supplement by ID prefix or name.

Existing supplement logs keep their reference to the deleted item.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSupplement(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}
		if err := appStore.DeleteSupplement(s.ID); err != nil {
			return fmt.Errorf("failed to delete supplement: %w", err)
		}
		color.Yellow("✗ Deleted %s", s.Name)
		return nil
	},
}

func init() {
	supplementAddCmd.Flags().IntVar(&suppStock, "stock", 0, "pill count on hand")
	supplementAddCmd.Flags().IntVar(&suppFreq, "frequency", 1, "pills per day")
	supplementAddCmd.Flags().Float64Var(&suppCost, "cost", 0, "cost per bottle")
	supplementAddCmd.Flags().IntVar(&suppPills, "pills", 0, "pills per bottle")
	supplementAddCmd.Flags().BoolVar(&suppVital, "vital", false, "mark as vital")

	supplementCostCmd.Flags().StringVarP(&costPeriod, "period", "p", "monthly", "daily, weekly, or monthly")
	supplementCostCmd.Flags().StringVarP(&costCategory, "category", "c", "", "filter: vital or non-vital")

	supplementCmd.AddCommand(supplementAddCmd)
	supplementCmd.AddCommand(supplementListCmd)
	supplementCmd.AddCommand(supplementTakeCmd)
	supplementCmd.AddCommand(supplementForecastCmd)
	supplementCmd.AddCommand(supplementCostCmd)
	supplementCmd.AddCommand(supplementRmCmd)
	rootCmd.AddCommand(supplementCmd)
}
