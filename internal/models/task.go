// ABOUTME: TimelineTask model and TaskType enum for scheduled occurrences.
// ABOUTME: One task is one instance on one date; recurrence is not modeled.
package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskType categorizes a timeline entry.
type TaskType string

const (
	TaskHabit      TaskType = "habit"
	TaskTodo       TaskType = "todo"
	TaskMedication TaskType = "medication"
	TaskMeal       TaskType = "meal"
	TaskEvent      TaskType = "event"
)

// AllTaskTypes returns all valid task types.
var AllTaskTypes = []TaskType{
	TaskHabit, TaskTodo, TaskMedication, TaskMeal, TaskEvent,
}

// IsValidTaskType checks if a string is a valid task type.
func IsValidTaskType(s string) bool {
	for _, tt := range AllTaskTypes {
		if string(tt) == s {
			return true
		}
	}
	return false
}

// TimelineTask represents a single scheduled occurrence on one date and time slot.
// Multiple tasks may share a (date, time) slot; display order is the lexicographic
// order of the zero-padded HH:mm time string.
type TimelineTask struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Time          string     `json:"time"` // HH:mm
	Date          string     `json:"date"` // YYYY-MM-DD
	Type          TaskType   `json:"type"`
	Completed     bool       `json:"completed"`
	LinkedHabitID *uuid.UUID `json:"linked_habit_id,omitempty"`
}

// NewTimelineTask creates a task scheduled for the given date and time.
func NewTimelineTask(title string, taskType TaskType, date, clock string) *TimelineTask {
	return &TimelineTask{
		ID:    uuid.New(),
		Title: title,
		Time:  clock,
		Date:  date,
		Type:  taskType,
	}
}

// WithLinkedHabit ties the task to a habit. The reference is soft: deleting the
// habit later leaves it dangling.
func (t *TimelineTask) WithLinkedHabit(habitID uuid.UUID) *TimelineTask {
	t.LinkedHabitID = &habitID
	return t
}

// Today returns the current calendar day in DayFormat.
func Today() string {
	return time.Now().Format(DayFormat)
}
