// ABOUTME: Report aggregation: partitions a snapshot by type and date range.
// ABOUTME: Read-side projection only; nothing here mutates the store.
package report

import (
	"sort"
	"time"

	"github.com/harperreed/willow/internal/models"
	"github.com/harperreed/willow/internal/store"
)

// Sections toggles which report blocks get built.
type Sections struct {
	Habits      bool
	Tasks       bool
	Meals       bool
	Symptoms    bool
	Supplements bool
}

// AllSections enables every block.
func AllSections() Sections {
	return Sections{Habits: true, Tasks: true, Meals: true, Symptoms: true, Supplements: true}
}

// HabitSummary is one habit's completion count inside the range.
type HabitSummary struct {
	Title       string `json:"title"`
	Streak      int    `json:"streak"`
	Completions int    `json:"completions"`
}

// Report is the aggregated, range-filtered view of the document.
type Report struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Range       Range               `json:"range"`
	Habits      []HabitSummary      `json:"habits,omitempty"`
	Tasks       []*models.TimelineTask `json:"tasks,omitempty"`
	Meals       []*models.HealthLog    `json:"meals,omitempty"`
	Symptoms    []*models.HealthLog    `json:"symptoms,omitempty"`
	Intakes     []*models.HealthLog    `json:"supplement_intakes,omitempty"`
}

// Build partitions the snapshot by the range and the requested sections.
// Symptom blocks include biomarker readings, matching the log surface.
func Build(doc *store.Document, r Range, sections Sections) *Report {
	rep := &Report{GeneratedAt: time.Now(), Range: r}

	if sections.Habits {
		for _, h := range doc.Habits {
			n := 0
			for _, d := range h.CompletedDates {
				if r.ContainsDay(d) {
					n++
				}
			}
			rep.Habits = append(rep.Habits, HabitSummary{
				Title:       h.Title,
				Streak:      h.Streak,
				Completions: n,
			})
		}
	}

	if sections.Tasks {
		for _, t := range doc.Timeline {
			if r.ContainsDay(t.Date) {
				rep.Tasks = append(rep.Tasks, t)
			}
		}
		sort.SliceStable(rep.Tasks, func(i, j int) bool {
			if rep.Tasks[i].Date != rep.Tasks[j].Date {
				return rep.Tasks[i].Date < rep.Tasks[j].Date
			}
			// Zero-padded HH:mm makes the lexicographic compare safe.
			return rep.Tasks[i].Time < rep.Tasks[j].Time
		})
	}

	for _, l := range doc.HealthLogs {
		if !r.Contains(l.RecordedAt) {
			continue
		}
		switch l.Type {
		case models.LogFood:
			if sections.Meals {
				rep.Meals = append(rep.Meals, l)
			}
		case models.LogSymptom, models.LogBiomarker:
			if sections.Symptoms {
				rep.Symptoms = append(rep.Symptoms, l)
			}
		case models.LogSupplement:
			if sections.Supplements {
				rep.Intakes = append(rep.Intakes, l)
			}
		}
	}

	return rep
}
