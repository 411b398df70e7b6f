// ABOUTME: Supplement inventory model with stock and cost derivations.
// ABOUTME: Days-of-supply, low-stock flags, and per-day cost live here.
package models

import "github.com/google/uuid"

// SupplementCategory splits the inventory into must-take and optional.
type SupplementCategory string

const (
	CategoryVital    SupplementCategory = "vital"
	CategoryNonVital SupplementCategory = "non-vital"
)

// IsValidSupplementCategory checks if a string is a valid category.
func IsValidSupplementCategory(s string) bool {
	return s == string(CategoryVital) || s == string(CategoryNonVital)
}

// Thresholds for stock forecasting, in days of supply.
const (
	LowStockDays      = 7
	CriticalStockDays = 3
)

// Supplement is one inventory item. Stock is a pill count decremented by one
// per take event and never auto-replenished.
type Supplement struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Dosage         string             `json:"dosage"`
	Stock          int                `json:"stock"`
	CostPerBottle  float64            `json:"cost_per_bottle"`
	PillsPerBottle int                `json:"pills_per_bottle"`
	Frequency      int                `json:"frequency"` // pills per day
	Category       SupplementCategory `json:"category"`
}

// NewSupplement creates a supplement with generated UUID.
func NewSupplement(name, dosage string, stock, frequency int) *Supplement {
	return &Supplement{
		ID:        uuid.New(),
		Name:      name,
		Dosage:    dosage,
		Stock:     stock,
		Frequency: frequency,
		Category:  CategoryNonVital,
	}
}

// WithCost sets bottle pricing used for cost projections.
func (s *Supplement) WithCost(costPerBottle float64, pillsPerBottle int) *Supplement {
	s.CostPerBottle = costPerBottle
	s.PillsPerBottle = pillsPerBottle
	return s
}

// WithCategory sets the supplement category.
func (s *Supplement) WithCategory(c SupplementCategory) *Supplement {
	s.Category = c
	return s
}

// dailyPills treats a missing or zero frequency as one pill per day, matching
// how the inventory math handles partially filled records.
func (s *Supplement) dailyPills() int {
	if s.Frequency <= 0 {
		return 1
	}
	return s.Frequency
}

// DaysRemaining returns floor(stock / frequency): full days of supply left.
func (s *Supplement) DaysRemaining() int {
	return s.Stock / s.dailyPills()
}

// LowStock reports whether a week or less of supply remains.
func (s *Supplement) LowStock() bool {
	return s.DaysRemaining() <= LowStockDays
}

// Critical reports whether the supplement runs out within three days.
func (s *Supplement) Critical() bool {
	return s.DaysRemaining() <= CriticalStockDays
}

// DailyCost returns the per-day spend: (cost per pill) x (pills per day).
// Zero when bottle pricing is unset.
func (s *Supplement) DailyCost() float64 {
	if s.PillsPerBottle <= 0 {
		return 0
	}
	return s.CostPerBottle / float64(s.PillsPerBottle) * float64(s.dailyPills())
}
