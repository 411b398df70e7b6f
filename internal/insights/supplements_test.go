// ABOUTME: Tests for restock ranking and cost projections.
// ABOUTME: Critical stock outranks category; vital outranks non-vital.
package insights

import (
	"math"
	"testing"

	"github.com/harperreed/willow/internal/models"
)

func supp(name string, stock, frequency int, category models.SupplementCategory) *models.Supplement {
	s := models.NewSupplement(name, "1 cap", stock, frequency)
	s.Category = category
	return s
}

func TestRankRestockCriticalFirst(t *testing.T) {
	plenty := supp("Plenty", 90, 1, models.CategoryVital)       // 90 days
	critical := supp("Critical", 2, 1, models.CategoryNonVital) // 2 days
	low := supp("Low", 6, 1, models.CategoryVital)              // 6 days

	ranked := RankRestock([]*models.Supplement{plenty, critical, low})

	want := []string{"Critical", "Low", "Plenty"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Name, name)
		}
	}
}

func TestRankRestockVitalBeforeNonVital(t *testing.T) {
	// Both low but not critical; vital wins despite more days left.
	vital := supp("Vital", 7, 1, models.CategoryVital)
	nonVital := supp("NonVital", 5, 1, models.CategoryNonVital)

	ranked := RankRestock([]*models.Supplement{nonVital, vital})
	if ranked[0].Name != "Vital" {
		t.Errorf("ranked[0] = %s, want Vital", ranked[0].Name)
	}
}

func TestRankRestockFewestDaysWins(t *testing.T) {
	a := supp("A", 30, 1, models.CategoryNonVital)
	b := supp("B", 10, 1, models.CategoryNonVital)

	ranked := RankRestock([]*models.Supplement{a, b})
	if ranked[0].Name != "B" {
		t.Errorf("ranked[0] = %s, want B (10 days < 30 days)", ranked[0].Name)
	}
}

func TestRankRestockDoesNotMutateInput(t *testing.T) {
	a := supp("A", 90, 1, models.CategoryNonVital)
	b := supp("B", 1, 1, models.CategoryNonVital)
	in := []*models.Supplement{a, b}

	RankRestock(in)
	if in[0].Name != "A" {
		t.Error("input slice order changed")
	}
}

func TestNextRestock(t *testing.T) {
	if got := NextRestock(nil); got != nil {
		t.Errorf("NextRestock(nil) = %v, want nil", got)
	}

	a := supp("A", 90, 1, models.CategoryNonVital)
	b := supp("B", 2, 1, models.CategoryNonVital)
	if got := NextRestock([]*models.Supplement{a, b}); got.Name != "B" {
		t.Errorf("NextRestock() = %s, want B", got.Name)
	}
}

func TestProjectedCost(t *testing.T) {
	// $30 bottle of 30 pills, 1/day: $1.00/day.
	a := supp("A", 30, 1, models.CategoryVital).WithCost(30, 30)
	// $20 bottle of 40 pills, 2/day: $1.00/day.
	b := supp("B", 40, 2, models.CategoryNonVital).WithCost(20, 40)
	supps := []*models.Supplement{a, b}

	tests := []struct {
		period CostPeriod
		want   float64
	}{
		{CostDaily, 2},
		{CostWeekly, 14},
		{CostMonthly, 60},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got := ProjectedCost(supps, tt.period, nil)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ProjectedCost(%s) = %f, want %f", tt.period, got, tt.want)
			}
		})
	}
}

func TestProjectedCostCategoryFilter(t *testing.T) {
	a := supp("A", 30, 1, models.CategoryVital).WithCost(30, 30)
	b := supp("B", 40, 2, models.CategoryNonVital).WithCost(20, 40)
	supps := []*models.Supplement{a, b}

	vital := models.CategoryVital
	got := ProjectedCost(supps, CostDaily, &vital)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("ProjectedCost(vital only) = %f, want 1", got)
	}
}

func TestProjectedCostUnpriced(t *testing.T) {
	// No bottle pricing means zero contribution, not NaN.
	a := supp("A", 30, 1, models.CategoryVital)
	got := ProjectedCost([]*models.Supplement{a}, CostMonthly, nil)
	if got != 0 {
		t.Errorf("ProjectedCost(unpriced) = %f, want 0", got)
	}
}
