// ABOUTME: Meal plan mutations: weekly-recurring templates, plain CRUD.
// ABOUTME: Resolution to a day's portion is a read-side concern on the model.
package store

import (
	"github.com/google/uuid"
	"github.com/harperreed/willow/internal/models"
)

// AddMealPlan appends a meal plan.
func (s *Store) AddMealPlan(p *models.MealPlan) error {
	return s.mutate(func(doc *Document) {
		doc.MealPlans = append(doc.MealPlans, p)
	})
}

// UpdateMealPlan replaces the plan with the same id. Unknown ids are ignored.
func (s *Store) UpdateMealPlan(p *models.MealPlan) error {
	return s.mutate(func(doc *Document) {
		for i, existing := range doc.MealPlans {
			if existing.ID == p.ID {
				doc.MealPlans[i] = p
				return
			}
		}
	})
}

// DeleteMealPlan removes a plan by id.
func (s *Store) DeleteMealPlan(id uuid.UUID) error {
	return s.mutate(func(doc *Document) {
		for i, p := range doc.MealPlans {
			if p.ID == id {
				doc.MealPlans = append(doc.MealPlans[:i], doc.MealPlans[i+1:]...)
				return
			}
		}
	})
}
