// ABOUTME: Date range resolution for reports: today, week, month, all, custom.
// ABOUTME: Intervals are boundary inclusive; weeks start on Monday.
package report

import (
	"fmt"
	"time"

	"github.com/harperreed/willow/internal/models"
)

// RangeKind names a report window.
type RangeKind string

const (
	RangeToday  RangeKind = "today"
	RangeWeek   RangeKind = "week"
	RangeMonth  RangeKind = "month"
	RangeAll    RangeKind = "all"
	RangeCustom RangeKind = "custom"
)

// IsValidRangeKind checks if a string names a preset range.
func IsValidRangeKind(s string) bool {
	switch RangeKind(s) {
	case RangeToday, RangeWeek, RangeMonth, RangeAll:
		return true
	}
	return false
}

// Range is an inclusive time interval. RangeAll matches everything and keeps
// zero bounds.
type Range struct {
	Kind  RangeKind `json:"kind"`
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// RangeFor resolves a preset range kind relative to now.
func RangeFor(kind RangeKind, now time.Time) Range {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch kind {
	case RangeToday:
		return Range{Kind: kind, Start: dayStart, End: endOfDay(dayStart)}
	case RangeWeek:
		// Monday-start week containing now.
		offset := (int(now.Weekday()) + 6) % 7
		weekStart := dayStart.AddDate(0, 0, -offset)
		return Range{Kind: kind, Start: weekStart, End: endOfDay(weekStart.AddDate(0, 0, 6))}
	case RangeMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Kind: kind, Start: monthStart, End: endOfDay(monthStart.AddDate(0, 1, -1))}
	default:
		return Range{Kind: RangeAll}
	}
}

// CustomRange builds an inclusive interval from two calendar days.
func CustomRange(startDay, endDay string) (Range, error) {
	start, err := time.Parse(models.DayFormat, startDay)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start date: %s (use YYYY-MM-DD)", startDay)
	}
	end, err := time.Parse(models.DayFormat, endDay)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end date: %s (use YYYY-MM-DD)", endDay)
	}
	if end.Before(start) {
		return Range{}, fmt.Errorf("end date %s is before start date %s", endDay, startDay)
	}
	return Range{Kind: RangeCustom, Start: start, End: endOfDay(end)}, nil
}

func endOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Contains reports whether t falls inside the interval, boundaries included.
func (r Range) Contains(t time.Time) bool {
	if r.Kind == RangeAll {
		return true
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

// ContainsDay reports whether a YYYY-MM-DD day string falls inside the
// interval. Unparseable day strings never match.
func (r Range) ContainsDay(day string) bool {
	if r.Kind == RangeAll {
		return true
	}
	t, err := time.ParseInLocation(models.DayFormat, day, r.Start.Location())
	if err != nil {
		return false
	}
	return r.Contains(t)
}

// Label is the human heading for the range.
func (r Range) Label() string {
	switch r.Kind {
	case RangeCustom:
		return fmt.Sprintf("%s to %s", r.Start.Format(models.DayFormat), r.End.Format(models.DayFormat))
	default:
		return string(r.Kind)
	}
}
