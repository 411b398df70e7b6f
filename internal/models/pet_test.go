// ABOUTME: Tests for the pet level derivation.
// ABOUTME: Level is always floor(xp/100)+1; progress is the remainder.
package models

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{1000, 11},
		{-50, 1},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	p := NewPet()
	p.XP = 250
	if got := p.LevelProgress(); got != 50 {
		t.Errorf("LevelProgress() = %d, want 50", got)
	}
}

func TestNewPetDefaults(t *testing.T) {
	p := NewPet()
	if p.Name != "Luna" {
		t.Errorf("Name = %s, want Luna", p.Name)
	}
	if p.Species != SpeciesHummingbird {
		t.Errorf("Species = %s, want hummingbird", p.Species)
	}
	if p.Level != 1 || p.XP != 0 {
		t.Errorf("Level/XP = %d/%d, want 1/0", p.Level, p.XP)
	}
	if p.Mood != MoodHappy {
		t.Errorf("Mood = %s, want happy", p.Mood)
	}
	if p.LastInteraction.IsZero() {
		t.Error("expected LastInteraction to be set")
	}
}
