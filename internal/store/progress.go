// ABOUTME: Shared experience-point rule applied by every progress-granting mutation.
// ABOUTME: Keeps level derived from xp by construction; clamps xp at zero.
package store

import "github.com/harperreed/willow/internal/models"

// progressReward is the xp granted or revoked by one completion transition.
const progressReward = 10

// applyProgressDelta adjusts the pet's xp by delta, clamping at zero, and
// rederives the level. Mood flips to excited on a level-up; it is never reset
// here on the way down.
func applyProgressDelta(pet *models.PetState, delta int) {
	xp := pet.XP + delta
	if xp < 0 {
		xp = 0
	}
	pet.XP = xp

	level := models.LevelForXP(xp)
	if level > pet.Level {
		pet.Mood = models.MoodExcited
	}
	pet.Level = level
}
