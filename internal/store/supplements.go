// ABOUTME: Supplement inventory mutations and the take-a-dose event.
// ABOUTME: Taking grants xp, floors stock at zero, and appends an intake log.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/willow/internal/models"
)

// AddSupplement appends a supplement. No xp effect.
func (s *Store) AddSupplement(supp *models.Supplement) error {
	return s.mutate(func(doc *Document) {
		doc.Supplements = append(doc.Supplements, supp)
	})
}

// UpdateSupplement replaces the supplement with the same id. Unknown ids are
// ignored.
func (s *Store) UpdateSupplement(supp *models.Supplement) error {
	return s.mutate(func(doc *Document) {
		for i, existing := range doc.Supplements {
			if existing.ID == supp.ID {
				doc.Supplements[i] = supp
				return
			}
		}
	})
}

// DeleteSupplement removes a supplement by id. Intake logs that reference it
// keep their dangling back-reference.
func (s *Store) DeleteSupplement(id uuid.UUID) error {
	return s.mutate(func(doc *Document) {
		for i, supp := range doc.Supplements {
			if supp.ID == id {
				doc.Supplements = append(doc.Supplements[:i], doc.Supplements[i+1:]...)
				return
			}
		}
	})
}

// TakeSupplement records one dose taken now:
//
//  1. xp is granted unconditionally, even at zero stock; callers are expected
//     to stop the user before this point, the store does not.
//  2. Stock drops by one, floored at zero.
//  3. A supplement-type health log documents the event.
func (s *Store) TakeSupplement(id uuid.UUID) error {
	return s.mutate(func(doc *Document) {
		applyProgressDelta(&doc.Pet, progressReward)

		label := "Supplement"
		if supp := doc.supplementByID(id.String()); supp != nil {
			label = fmt.Sprintf("Took %s", supp.Name)
			if supp.Stock > 0 {
				supp.Stock--
			}
		}

		now := time.Now()
		log := &models.HealthLog{
			ID:           uuid.New(),
			RecordedAt:   now,
			Type:         models.LogSupplement,
			Label:        label,
			Time:         now.Format(models.ClockFormat),
			SupplementID: &id,
		}
		doc.HealthLogs = append(doc.HealthLogs, log)
	})
}
