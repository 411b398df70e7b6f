// ABOUTME: Habit model and Frequency enum for recurring practices.
// ABOUTME: Completed dates are a membership set of YYYY-MM-DD strings.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DayFormat is the calendar-day layout used everywhere a date string appears.
const DayFormat = "2006-01-02"

// ClockFormat is the time-of-day layout used by timeline slots and logs.
const ClockFormat = "15:04"

// Frequency describes which days a habit is expected on.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyWeekends Frequency = "weekends"
	FrequencyCustom   Frequency = "custom"
)

// AllFrequencies returns all valid habit frequencies.
var AllFrequencies = []Frequency{
	FrequencyDaily, FrequencyWeekdays, FrequencyWeekends, FrequencyCustom,
}

// IsValidFrequency checks if a string is a valid habit frequency.
func IsValidFrequency(s string) bool {
	for _, f := range AllFrequencies {
		if string(f) == s {
			return true
		}
	}
	return false
}

// Habit represents a recurring user-defined practice tracked by completion date.
type Habit struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Color          string    `json:"color"`
	Icon           string    `json:"icon"`
	CompletedDates []string  `json:"completed_dates"`
	Streak         int       `json:"streak"`
	Frequency      Frequency `json:"frequency,omitempty"`
	CustomDays     []int     `json:"custom_days,omitempty"` // 0=Sun..6=Sat, only for FrequencyCustom
	CreatedAt      time.Time `json:"created_at"`
}

// NewHabit creates a new Habit with generated UUID and current timestamp.
func NewHabit(title, color, icon string) *Habit {
	return &Habit{
		ID:        uuid.New(),
		Title:     title,
		Color:     color,
		Icon:      icon,
		Frequency: FrequencyDaily,
		CreatedAt: time.Now(),
	}
}

// WithFrequency sets the habit's frequency.
func (h *Habit) WithFrequency(f Frequency) *Habit {
	h.Frequency = f
	return h
}

// WithCustomDays sets the custom day-of-week set and switches to FrequencyCustom.
func (h *Habit) WithCustomDays(days []int) *Habit {
	h.Frequency = FrequencyCustom
	h.CustomDays = days
	return h
}

// CompletedOn reports whether the habit was completed on the given day.
func (h *Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// ScheduledOn reports whether the habit is expected on the given weekday.
func (h *Habit) ScheduledOn(day time.Weekday) bool {
	switch h.Frequency {
	case FrequencyWeekdays:
		return day != time.Saturday && day != time.Sunday
	case FrequencyWeekends:
		return day == time.Saturday || day == time.Sunday
	case FrequencyCustom:
		for _, d := range h.CustomDays {
			if d == int(day) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
