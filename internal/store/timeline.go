// ABOUTME: Timeline task mutations; updates apply the xp rule on completion flips.
// ABOUTME: Each task is one dated occurrence; no recurrence lives in the store.
package store

import (
	"github.com/google/uuid"
	"github.com/harperreed/willow/internal/models"
)

// AddTimelineTask appends a task. No xp effect.
func (s *Store) AddTimelineTask(t *models.TimelineTask) error {
	return s.mutate(func(doc *Document) {
		doc.Timeline = append(doc.Timeline, t)
	})
}

// UpdateTimelineTask replaces the task with the same id. When the previous
// record is found and its completed flag changed, the xp rule applies in the
// matching direction. Unknown ids are ignored, with no xp effect.
func (s *Store) UpdateTimelineTask(t *models.TimelineTask) error {
	return s.mutate(func(doc *Document) {
		for i, prev := range doc.Timeline {
			if prev.ID != t.ID {
				continue
			}
			if t.Completed && !prev.Completed {
				applyProgressDelta(&doc.Pet, progressReward)
			} else if !t.Completed && prev.Completed {
				applyProgressDelta(&doc.Pet, -progressReward)
			}
			doc.Timeline[i] = t
			return
		}
	})
}

// DeleteTimelineTask removes a task by id. Completed tasks keep their earned
// xp; deletion never revokes progress.
func (s *Store) DeleteTimelineTask(id uuid.UUID) error {
	return s.mutate(func(doc *Document) {
		for i, t := range doc.Timeline {
			if t.ID == id {
				doc.Timeline = append(doc.Timeline[:i], doc.Timeline[i+1:]...)
				return
			}
		}
	})
}
