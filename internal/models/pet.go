// ABOUTME: Companion pet singleton whose level derives from experience points.
// ABOUTME: Level is always floor(xp/100)+1; mood changes opportunistically.
package models

import "time"

// PetSpecies is the companion's species tag.
type PetSpecies string

const (
	SpeciesHummingbird PetSpecies = "hummingbird"
	SpeciesDragon      PetSpecies = "dragon"
)

// PetMood is the companion's displayed mood.
type PetMood string

const (
	MoodHappy   PetMood = "happy"
	MoodNeutral PetMood = "neutral"
	MoodSleepy  PetMood = "sleepy"
	MoodExcited PetMood = "excited"
)

// XPPerLevel is the experience span of one level.
const XPPerLevel = 100

// LevelForXP derives the level for an experience total.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// PetState is the gamification singleton. XP is an unbounded non-negative
// counter; the UI caps its display per level, not the stored value.
type PetState struct {
	Name            string     `json:"name"`
	Species         PetSpecies `json:"species"`
	Level           int        `json:"level"`
	XP              int        `json:"xp"`
	Mood            PetMood    `json:"mood"`
	LastInteraction time.Time  `json:"last_interaction"`
}

// NewPet creates the default companion.
func NewPet() PetState {
	return PetState{
		Name:            "Luna",
		Species:         SpeciesHummingbird,
		Level:           1,
		XP:              0,
		Mood:            MoodHappy,
		LastInteraction: time.Now(),
	}
}

// LevelProgress returns progress into the current level, 0-99.
func (p PetState) LevelProgress() int {
	return p.XP % XPPerLevel
}
