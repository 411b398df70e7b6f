// ABOUTME: Markdown rendering for reports: one table per enabled section.
// ABOUTME: The formatted document mirrors the filtered snapshot, nothing more.
package report

import (
	"fmt"
	"strings"

	"github.com/harperreed/willow/internal/models"
)

// Markdown renders the report as a Markdown document.
func (rep *Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Willow Report - %s\n\n", rep.GeneratedAt.Format(models.DayFormat)))
	sb.WriteString(fmt.Sprintf("Generated: %s | Range: %s\n\n",
		rep.GeneratedAt.Format("2006-01-02 15:04"), strings.ToUpper(rep.Range.Label())))

	if rep.Habits != nil {
		sb.WriteString("## Habits\n\n")
		sb.WriteString("| Habit | Completions | Streak |\n")
		sb.WriteString("|-------|-------------|--------|\n")
		for _, h := range rep.Habits {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d |\n", h.Title, h.Completions, h.Streak))
		}
		sb.WriteString("\n")
	}

	if rep.Tasks != nil {
		sb.WriteString("## Timeline\n\n")
		sb.WriteString("| Date | Time | Task | Type | Done |\n")
		sb.WriteString("|------|------|------|------|------|\n")
		for _, t := range rep.Tasks {
			done := " "
			if t.Completed {
				done = "x"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				t.Date, t.Time, t.Title, t.Type, done))
		}
		sb.WriteString("\n")
	}

	if rep.Meals != nil {
		sb.WriteString("## Meals\n\n")
		sb.WriteString("| Date | Time | Meal | Category | Notes |\n")
		sb.WriteString("|------|------|------|----------|-------|\n")
		for _, l := range rep.Meals {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				l.Day(), l.Time, l.Label, l.MealType, notesOf(l)))
		}
		sb.WriteString("\n")
	}

	if rep.Symptoms != nil {
		sb.WriteString("## Symptoms & Biomarkers\n\n")
		sb.WriteString("| Date | Time | Entry | Type | Severity | Notes |\n")
		sb.WriteString("|------|------|-------|------|----------|-------|\n")
		for _, l := range rep.Symptoms {
			severity := ""
			if l.Severity != nil {
				severity = fmt.Sprintf("%d/5", *l.Severity)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
				l.Day(), l.Time, l.Label, l.Type, severity, notesOf(l)))
		}
		sb.WriteString("\n")
	}

	if rep.Intakes != nil {
		sb.WriteString("## Supplement Intake\n\n")
		sb.WriteString("| Date | Time | Entry |\n")
		sb.WriteString("|------|------|-------|\n")
		for _, l := range rep.Intakes {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", l.Day(), l.Time, l.Label))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func notesOf(l *models.HealthLog) string {
	if l.Notes == nil {
		return ""
	}
	return *l.Notes
}
