// ABOUTME: Habit mutations: add, update, delete, and date toggling with xp.
// ABOUTME: Toggling recomputes the habit's own streak; unknown ids are no-ops.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/willow/internal/models"
)

// AddHabit appends a habit. No xp effect.
func (s *Store) AddHabit(h *models.Habit) error {
	return s.mutate(func(doc *Document) {
		doc.Habits = append(doc.Habits, h)
	})
}

// UpdateHabit replaces the habit with the same id. Unknown ids are ignored.
func (s *Store) UpdateHabit(h *models.Habit) error {
	return s.mutate(func(doc *Document) {
		for i, existing := range doc.Habits {
			if existing.ID == h.ID {
				doc.Habits[i] = h
				return
			}
		}
	})
}

// DeleteHabit removes a habit by id. Timeline tasks linked to it are left
// alone; their references dangle on purpose.
func (s *Store) DeleteHabit(id uuid.UUID) error {
	return s.mutate(func(doc *Document) {
		for i, h := range doc.Habits {
			if h.ID == id {
				doc.Habits = append(doc.Habits[:i], doc.Habits[i+1:]...)
				return
			}
		}
	})
}

// ToggleHabit flips the habit's completion for one calendar day.
//
// Completing grants xp, un-completing revokes it (clamped at zero), and the
// habit's own streak counter is recomputed either way. Unknown habit ids are
// silent no-ops.
func (s *Store) ToggleHabit(id uuid.UUID, date string) error {
	return s.mutate(func(doc *Document) {
		h := doc.habitByID(id.String())
		if h == nil {
			return
		}

		if h.CompletedOn(date) {
			kept := h.CompletedDates[:0]
			for _, d := range h.CompletedDates {
				if d != date {
					kept = append(kept, d)
				}
			}
			h.CompletedDates = kept
			applyProgressDelta(&doc.Pet, -progressReward)
		} else {
			h.CompletedDates = append(h.CompletedDates, date)
			applyProgressDelta(&doc.Pet, progressReward)
		}

		h.Streak = habitStreak(h, time.Now())
	})
}

// habitStreak counts consecutive completed days walking back from today.
// Today itself being empty is day zero of the walk, not a gap.
func habitStreak(h *models.Habit, today time.Time) int {
	streak := 0
	for i := 0; i < 365; i++ {
		day := today.AddDate(0, 0, -i).Format(models.DayFormat)
		if h.CompletedOn(day) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}
