// ABOUTME: HealthLog model for symptom, food, biomarker, and supplement records.
// ABOUTME: Append-mostly; severity range is a UI concern, not enforced here.
package models

import (
	"time"

	"github.com/google/uuid"
)

// LogType categorizes a health log entry.
type LogType string

const (
	LogSymptom    LogType = "symptom"
	LogFood       LogType = "food"
	LogBiomarker  LogType = "biomarker"
	LogSupplement LogType = "supplement"
)

// AllLogTypes returns all valid health log types.
var AllLogTypes = []LogType{LogSymptom, LogFood, LogBiomarker, LogSupplement}

// IsValidLogType checks if a string is a valid health log type.
func IsValidLogType(s string) bool {
	for _, lt := range AllLogTypes {
		if string(lt) == s {
			return true
		}
	}
	return false
}

// MealType categorizes a food log entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes returns all valid meal categories.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string is a valid meal category.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// IsValidSeverity checks that a symptom severity is on the 1-5 scale.
// Callers validate before handing a log to the store; the store persists
// whatever it is given.
func IsValidSeverity(n int) bool {
	return n >= 1 && n <= 5
}

// HealthLog is an append-style record of a symptom, meal, biomarker reading,
// or supplement intake event.
type HealthLog struct {
	ID           uuid.UUID  `json:"id"`
	RecordedAt   time.Time  `json:"recorded_at"`
	Type         LogType    `json:"type"`
	Label        string     `json:"label"`
	Severity     *int       `json:"severity,omitempty"` // 1-5
	Time         string     `json:"time,omitempty"`     // HH:mm
	Notes        *string    `json:"notes,omitempty"`
	MealType     MealType   `json:"meal_type,omitempty"`
	SupplementID *uuid.UUID `json:"supplement_id,omitempty"`
}

// NewHealthLog creates a log entry recorded now.
func NewHealthLog(logType LogType, label string) *HealthLog {
	now := time.Now()
	return &HealthLog{
		ID:         uuid.New(),
		RecordedAt: now,
		Type:       logType,
		Label:      label,
		Time:       now.Format(ClockFormat),
	}
}

// WithSeverity sets the 1-5 severity.
func (l *HealthLog) WithSeverity(n int) *HealthLog {
	l.Severity = &n
	return l
}

// WithNotes sets notes on the log.
func (l *HealthLog) WithNotes(notes string) *HealthLog {
	l.Notes = &notes
	return l
}

// WithMealType sets the meal category for food logs.
func (l *HealthLog) WithMealType(mt MealType) *HealthLog {
	l.MealType = mt
	return l
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (l *HealthLog) WithRecordedAt(t time.Time) *HealthLog {
	l.RecordedAt = t
	l.Time = t.Format(ClockFormat)
	return l
}

// Day returns the calendar day of the record in DayFormat.
func (l *HealthLog) Day() string {
	return l.RecordedAt.Format(DayFormat)
}
