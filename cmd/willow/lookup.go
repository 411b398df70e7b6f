// ABOUTME: ID-prefix resolution and small formatting helpers shared by commands.
// ABOUTME: Every list command prints 8-char prefixes that these resolvers accept.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/willow/internal/models"
	"github.com/harperreed/willow/internal/store"
)

func resolveHabit(doc *store.Document, idOrPrefix string) (*models.Habit, error) {
	var match *models.Habit
	for _, h := range doc.Habits {
		if strings.HasPrefix(h.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous habit id prefix: %s", idOrPrefix)
			}
			match = h
		}
	}
	if match == nil {
		return nil, fmt.Errorf("habit not found: %s", idOrPrefix)
	}
	return match, nil
}

func resolveTask(doc *store.Document, idOrPrefix string) (*models.TimelineTask, error) {
	var match *models.TimelineTask
	for _, t := range doc.Timeline {
		if strings.HasPrefix(t.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous task id prefix: %s", idOrPrefix)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("task not found: %s", idOrPrefix)
	}
	return match, nil
}

// resolveSupplement accepts an ID prefix or a case-insensitive name.
func resolveSupplement(doc *store.Document, idOrName string) (*models.Supplement, error) {
	var match *models.Supplement
	for _, s := range doc.Supplements {
		if strings.HasPrefix(s.ID.String(), idOrName) ||
			strings.EqualFold(s.Name, idOrName) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous supplement: %s", idOrName)
			}
			match = s
		}
	}
	if match == nil {
		return nil, fmt.Errorf("supplement not found: %s", idOrName)
	}
	return match, nil
}

func resolveHealthLog(doc *store.Document, idOrPrefix string) (*models.HealthLog, error) {
	var match *models.HealthLog
	for _, l := range doc.HealthLogs {
		if strings.HasPrefix(l.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous log id prefix: %s", idOrPrefix)
			}
			match = l
		}
	}
	if match == nil {
		return nil, fmt.Errorf("log not found: %s", idOrPrefix)
	}
	return match, nil
}

func resolveFriend(doc *store.Document, idOrName string) (*models.Friend, error) {
	var match *models.Friend
	for _, f := range doc.Friends {
		if strings.HasPrefix(f.ID.String(), idOrName) ||
			strings.EqualFold(f.Name, idOrName) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous friend: %s", idOrName)
			}
			match = f
		}
	}
	if match == nil {
		return nil, fmt.Errorf("friend not found: %s", idOrName)
	}
	return match, nil
}

func resolveMealPlan(doc *store.Document, idOrName string) (*models.MealPlan, error) {
	var match *models.MealPlan
	for _, p := range doc.MealPlans {
		if strings.HasPrefix(p.ID.String(), idOrName) ||
			strings.EqualFold(p.Name, idOrName) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous meal plan: %s", idOrName)
			}
			match = p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("meal plan not found: %s", idOrName)
	}
	return match, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
