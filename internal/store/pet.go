// ABOUTME: Direct cosmetic edits to the pet singleton, outside the xp rules.
// ABOUTME: Only non-progress fields merge here so the level invariant holds.
package store

import (
	"time"

	"github.com/harperreed/willow/internal/models"
)

// PetUpdate is a partial cosmetic update. XP and level are deliberately
// absent: progress only moves through the completion rules, which keeps
// level derived from xp everywhere.
type PetUpdate struct {
	Name            *string
	Species         *models.PetSpecies
	Mood            *models.PetMood
	LastInteraction *time.Time
}

// UpdatePet shallow-merges the set fields into the singleton.
func (s *Store) UpdatePet(update PetUpdate) error {
	return s.mutate(func(doc *Document) {
		if update.Name != nil {
			doc.Pet.Name = *update.Name
		}
		if update.Species != nil {
			doc.Pet.Species = *update.Species
		}
		if update.Mood != nil {
			doc.Pet.Mood = *update.Mood
		}
		if update.LastInteraction != nil {
			doc.Pet.LastInteraction = *update.LastInteraction
		}
	})
}

// Pet returns the current pet state.
func (s *Store) Pet() models.PetState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Pet
}
