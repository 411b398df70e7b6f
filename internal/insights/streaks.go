// ABOUTME: Habit-derived stats: global streak, weekly consistency, active days.
// ABOUTME: Pure functions over a snapshot; recomputed on every read.
package insights

import (
	"math"
	"time"

	"github.com/harperreed/willow/internal/models"
)

// streakHorizon bounds the backward walk.
const streakHorizon = 365

// Streak counts consecutive calendar days, walking backward from today, on
// which at least one habit has a completion. The walk stops at the first gap,
// except that an empty today is day zero, not a gap.
func Streak(habits []*models.Habit, today time.Time) int {
	streak := 0
	for i := 0; i < streakHorizon; i++ {
		day := today.AddDate(0, 0, -i).Format(models.DayFormat)
		if anyCompletedOn(habits, day) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// Consistency is the trailing-7-day completion percentage: completions made
// over completions possible, rounded. Zero when there are no habits.
func Consistency(habits []*models.Habit, today time.Time) int {
	if len(habits) == 0 {
		return 0
	}

	possible := 0
	completed := 0
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -i).Format(models.DayFormat)
		possible += len(habits)
		for _, h := range habits {
			if h.CompletedOn(day) {
				completed++
			}
		}
	}

	return int(math.Round(float64(completed) / float64(possible) * 100))
}

// ActiveDays counts distinct dates with at least one completion across all
// habits. A day counts once no matter how many habits were completed on it.
func ActiveDays(habits []*models.Habit) int {
	days := make(map[string]struct{})
	for _, h := range habits {
		for _, d := range h.CompletedDates {
			days[d] = struct{}{}
		}
	}
	return len(days)
}

// CompletedOn counts habits completed on the given day.
func CompletedOn(habits []*models.Habit, day string) int {
	n := 0
	for _, h := range habits {
		if h.CompletedOn(day) {
			n++
		}
	}
	return n
}

func anyCompletedOn(habits []*models.Habit, day string) bool {
	for _, h := range habits {
		if h.CompletedOn(day) {
			return true
		}
	}
	return false
}
