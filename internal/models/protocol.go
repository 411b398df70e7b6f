// ABOUTME: Protocol model for the shareable template catalog.
// ABOUTME: Read-mostly; joining is tracked in the store's joined-id set.
package models

import "github.com/google/uuid"

// ProtocolCategory buckets catalog entries.
type ProtocolCategory string

const (
	ProtocolFitness   ProtocolCategory = "fitness"
	ProtocolNutrition ProtocolCategory = "nutrition"
	ProtocolWellness  ProtocolCategory = "wellness"
	ProtocolMedical   ProtocolCategory = "medical"
)

// AllProtocolCategories returns all valid protocol categories.
var AllProtocolCategories = []ProtocolCategory{
	ProtocolFitness, ProtocolNutrition, ProtocolWellness, ProtocolMedical,
}

// IsValidProtocolCategory checks if a string is a valid protocol category.
func IsValidProtocolCategory(s string) bool {
	for _, c := range AllProtocolCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Protocol is a creator-authored template of recommended tasks.
//
// Tasks holds the template list. Joining currently inserts a single synthetic
// kickoff task rather than materializing the template; see store.JoinProtocol.
type Protocol struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatorID   string           `json:"creator_id"`
	CreatorName string           `json:"creator_name"`
	Tasks       []TimelineTask   `json:"tasks"`
	Public      bool             `json:"public"`
	Followers   int              `json:"followers"`
	Price       float64          `json:"price"`
	Rating      float64          `json:"rating"`
	Category    ProtocolCategory `json:"category"`
	CoverImage  string           `json:"cover_image,omitempty"`
}

// NewProtocol creates a user-authored protocol with a generated id.
func NewProtocol(title, description, creatorName string, category ProtocolCategory) *Protocol {
	return &Protocol{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatorName: creatorName,
		Public:      true,
		Category:    category,
	}
}
