// ABOUTME: Supplement forecasting: restock ranking and cost projections.
// ABOUTME: Critical stock pre-empts category; vital outranks non-vital.
package insights

import (
	"sort"

	"github.com/harperreed/willow/internal/models"
)

// CostPeriod scales a projection to a day, week, or month.
type CostPeriod string

const (
	CostDaily   CostPeriod = "daily"
	CostWeekly  CostPeriod = "weekly"
	CostMonthly CostPeriod = "monthly"
)

// IsValidCostPeriod checks if a string is a valid projection period.
func IsValidCostPeriod(s string) bool {
	switch CostPeriod(s) {
	case CostDaily, CostWeekly, CostMonthly:
		return true
	}
	return false
}

// FilterByCategory returns the supplements in the given category; a nil
// filter returns the input unchanged.
func FilterByCategory(supps []*models.Supplement, category *models.SupplementCategory) []*models.Supplement {
	if category == nil {
		return supps
	}
	var out []*models.Supplement
	for _, s := range supps {
		if s.Category == *category {
			out = append(out, s)
		}
	}
	return out
}

// ProjectedCost sums per-day spend across the (optionally filtered) set and
// scales it to the period.
func ProjectedCost(supps []*models.Supplement, period CostPeriod, category *models.SupplementCategory) float64 {
	daily := 0.0
	for _, s := range FilterByCategory(supps, category) {
		daily += s.DailyCost()
	}

	switch period {
	case CostWeekly:
		return daily * 7
	case CostMonthly:
		return daily * 30
	default:
		return daily
	}
}

// RankRestock orders supplements by how urgently they need restocking:
// anything critically low (three days or less) comes first regardless of
// category, then vital outranks non-vital, then fewest days of supply wins.
// The input is not modified.
func RankRestock(supps []*models.Supplement) []*models.Supplement {
	ranked := make([]*models.Supplement, len(supps))
	copy(ranked, supps)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.Critical() != b.Critical() {
			return a.Critical()
		}
		aVital := a.Category == models.CategoryVital
		bVital := b.Category == models.CategoryVital
		if aVital != bVital {
			return aVital
		}
		return a.DaysRemaining() < b.DaysRemaining()
	})

	return ranked
}

// NextRestock returns the supplement that runs out soonest under the restock
// ranking, or nil for an empty set.
func NextRestock(supps []*models.Supplement) *models.Supplement {
	ranked := RankRestock(supps)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}
