// ABOUTME: MealPlan model: a weekly-recurring template resolved by weekday.
// ABOUTME: Portion keys are weekday indices (0=Sun..6=Sat), not dates.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Recurrence describes how a meal plan repeats across the week.
type Recurrence string

const (
	RecurDaily     Recurrence = "daily"
	RecurAlternate Recurrence = "alternate"
	RecurCustom    Recurrence = "custom"
)

// IsValidRecurrence checks if a string is a valid recurrence mode.
func IsValidRecurrence(s string) bool {
	switch Recurrence(s) {
	case RecurDaily, RecurAlternate, RecurCustom:
		return true
	}
	return false
}

// DefaultPortion is used when a plan is active on a day but has no portion
// recorded for that weekday.
const DefaultPortion = "Standard"

// MealPlan is a weekly-recurring meal template. A date resolves against the
// plan through its weekday index only.
type MealPlan struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	MealType     MealType       `json:"meal_type"`
	Recurrence   Recurrence     `json:"recurrence"`
	SelectedDays []int          `json:"selected_days"` // 0=Sun..6=Sat
	Portions     map[int]string `json:"portions"`      // weekday index -> portion
	Time         string         `json:"time,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}

// NewMealPlan creates a plan covering the given weekdays.
func NewMealPlan(name string, mealType MealType, days []int) *MealPlan {
	return &MealPlan{
		ID:           uuid.New(),
		Name:         name,
		MealType:     mealType,
		Recurrence:   RecurCustom,
		SelectedDays: days,
		Portions:     make(map[int]string),
	}
}

// WithPortion records the portion for one weekday.
func (p *MealPlan) WithPortion(day int, portion string) *MealPlan {
	if p.Portions == nil {
		p.Portions = make(map[int]string)
	}
	p.Portions[day] = portion
	return p
}

// WithTime sets the fixed time of day.
func (p *MealPlan) WithTime(clock string) *MealPlan {
	p.Time = clock
	return p
}

// ActiveOn reports whether the plan is scheduled for the given weekday.
func (p *MealPlan) ActiveOn(day time.Weekday) bool {
	for _, d := range p.SelectedDays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// PortionFor resolves the portion for a weekday, falling back to
// DefaultPortion when the plan has none recorded for that day.
func (p *MealPlan) PortionFor(day time.Weekday) string {
	if portion, ok := p.Portions[int(day)]; ok && portion != "" {
		return portion
	}
	return DefaultPortion
}
