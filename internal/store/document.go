// ABOUTME: Document is the canonical persisted state: all collections plus the pet.
// ABOUTME: Serialized whole as one JSON snapshot under a fixed storage name.
package store

import "github.com/harperreed/willow/internal/models"

// Document holds every collection and the pet singleton. It is the single
// source of truth every surface reads from; collections keep insertion order.
type Document struct {
	Habits          []*models.Habit          `json:"habits"`
	Timeline        []*models.TimelineTask   `json:"timeline"`
	HealthLogs      []*models.HealthLog      `json:"health_logs"`
	Supplements     []*models.Supplement     `json:"supplements"`
	Friends         []*models.Friend         `json:"friends"`
	MealPlans       []*models.MealPlan       `json:"meal_plans"`
	Protocols       []*models.Protocol       `json:"protocols"`
	JoinedProtocols []string                 `json:"joined_protocols"`
	FriendActivity  []*models.FriendActivity `json:"friend_activity"`
	Pet             models.PetState          `json:"pet"`
}

// NewDocument creates the initial state: empty collections, the default
// companion, and the built-in protocol catalog.
func NewDocument() *Document {
	return &Document{
		Pet:       models.NewPet(),
		Protocols: seedProtocols(),
	}
}

// seedProtocols is the starter marketplace catalog shown before the user has
// created or joined anything.
func seedProtocols() []*models.Protocol {
	return []*models.Protocol{
		{
			ID:          "p1",
			Title:       "7-Day Keto Kickstart",
			Description: "A beginner-friendly low-carb meal plan to reset your metabolism.",
			CreatorID:   "pro-1",
			CreatorName: "Dr. Sarah Fit",
			Public:      true,
			Followers:   1240,
			Price:       0,
			Rating:      4.8,
			Category:    models.ProtocolNutrition,
		},
		{
			ID:          "p2",
			Title:       "Morning Mobility Routine",
			Description: "15-minute daily stretch routine to improve posture and energy.",
			CreatorID:   "pro-2",
			CreatorName: "Coach Mike",
			Public:      true,
			Followers:   850,
			Price:       29,
			Rating:      4.5,
			Category:    models.ProtocolFitness,
		},
	}
}

func (d *Document) habitByID(id string) *models.Habit {
	for _, h := range d.Habits {
		if h.ID.String() == id {
			return h
		}
	}
	return nil
}

func (d *Document) taskByID(id string) *models.TimelineTask {
	for _, t := range d.Timeline {
		if t.ID.String() == id {
			return t
		}
	}
	return nil
}

func (d *Document) supplementByID(id string) *models.Supplement {
	for _, s := range d.Supplements {
		if s.ID.String() == id {
			return s
		}
	}
	return nil
}

func (d *Document) protocolByID(id string) *models.Protocol {
	for _, p := range d.Protocols {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (d *Document) joined(protocolID string) bool {
	for _, id := range d.JoinedProtocols {
		if id == protocolID {
			return true
		}
	}
	return false
}
