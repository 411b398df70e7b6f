// ABOUTME: Health log mutations; logging a meal grants xp, one-directional.
// ABOUTME: Edits and deletes never revoke xp already granted for a meal.
package store

import (
	"github.com/google/uuid"
	"github.com/harperreed/willow/internal/models"
)

// AddHealthLog appends a log entry. Food logs grant xp; other types do not.
// The grant is one-directional: editing or deleting the log later never takes
// the xp back.
func (s *Store) AddHealthLog(l *models.HealthLog) error {
	return s.mutate(func(doc *Document) {
		if l.Type == models.LogFood {
			applyProgressDelta(&doc.Pet, progressReward)
		}
		doc.HealthLogs = append(doc.HealthLogs, l)
	})
}

// UpdateHealthLog replaces the log with the same id. No xp effect.
func (s *Store) UpdateHealthLog(l *models.HealthLog) error {
	return s.mutate(func(doc *Document) {
		for i, existing := range doc.HealthLogs {
			if existing.ID == l.ID {
				doc.HealthLogs[i] = l
				return
			}
		}
	})
}

// DeleteHealthLog removes a log by id. No xp effect.
func (s *Store) DeleteHealthLog(id uuid.UUID) error {
	return s.mutate(func(doc *Document) {
		for i, l := range doc.HealthLogs {
			if l.ID == id {
				doc.HealthLogs = append(doc.HealthLogs[:i], doc.HealthLogs[i+1:]...)
				return
			}
		}
	})
}
