// ABOUTME: Tests for report range resolution and membership.
// ABOUTME: Weeks start Monday; custom ranges are boundary inclusive.
package report

import (
	"testing"
	"time"
)

func TestRangeForToday(t *testing.T) {
	now := time.Date(2026, 8, 27, 14, 30, 0, 0, time.UTC)
	r := RangeFor(RangeToday, now)

	if !r.ContainsDay("2026-08-27") {
		t.Error("today should contain 2026-08-27")
	}
	if r.ContainsDay("2026-08-26") || r.ContainsDay("2026-08-28") {
		t.Error("today should not contain adjacent days")
	}
}

func TestRangeForWeekStartsMonday(t *testing.T) {
	// 2026-08-27 is a Thursday; its week runs Mon 24th through Sun 30th.
	now := time.Date(2026, 8, 27, 14, 30, 0, 0, time.UTC)
	r := RangeFor(RangeWeek, now)

	if got := r.Start.Format("2006-01-02"); got != "2026-08-24" {
		t.Errorf("week start = %s, want 2026-08-24", got)
	}
	if !r.ContainsDay("2026-08-24") || !r.ContainsDay("2026-08-30") {
		t.Error("week boundaries should be inclusive")
	}
	if r.ContainsDay("2026-08-23") || r.ContainsDay("2026-08-31") {
		t.Error("week should exclude the surrounding days")
	}
}

func TestRangeForWeekOnSunday(t *testing.T) {
	// A Sunday belongs to the week that started the previous Monday.
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	r := RangeFor(RangeWeek, now)
	if got := r.Start.Format("2006-01-02"); got != "2026-08-24" {
		t.Errorf("week start = %s, want 2026-08-24", got)
	}
}

func TestRangeForMonth(t *testing.T) {
	now := time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC)
	r := RangeFor(RangeMonth, now)

	if !r.ContainsDay("2026-02-01") || !r.ContainsDay("2026-02-28") {
		t.Error("month boundaries should be inclusive")
	}
	if r.ContainsDay("2026-01-31") || r.ContainsDay("2026-03-01") {
		t.Error("month should exclude surrounding days")
	}
}

func TestRangeAllMatchesEverything(t *testing.T) {
	r := RangeFor(RangeAll, time.Now())
	if !r.ContainsDay("1999-01-01") || !r.Contains(time.Now().AddDate(10, 0, 0)) {
		t.Error("all range should match any time")
	}
}

func TestCustomRangeInclusive(t *testing.T) {
	r, err := CustomRange("2026-08-01", "2026-08-15")
	if err != nil {
		t.Fatalf("CustomRange() error = %v", err)
	}

	if !r.ContainsDay("2026-08-01") {
		t.Error("start day should be included")
	}
	if !r.ContainsDay("2026-08-15") {
		t.Error("end day should be included")
	}
	if r.ContainsDay("2026-07-31") || r.ContainsDay("2026-08-16") {
		t.Error("days outside the range should be excluded")
	}

	// Late on the end day still counts.
	if !r.Contains(time.Date(2026, 8, 15, 23, 59, 59, 0, time.UTC)) {
		t.Error("end of the last day should be included")
	}
}

func TestCustomRangeValidation(t *testing.T) {
	if _, err := CustomRange("not-a-date", "2026-08-15"); err == nil {
		t.Error("expected error for bad start date")
	}
	if _, err := CustomRange("2026-08-15", "2026-08-01"); err == nil {
		t.Error("expected error for end before start")
	}
}

func TestContainsDayUnparseable(t *testing.T) {
	r, _ := CustomRange("2026-08-01", "2026-08-15")
	if r.ContainsDay("garbage") {
		t.Error("unparseable day should never match")
	}
}

func TestRangeLabel(t *testing.T) {
	r := RangeFor(RangeWeek, time.Now())
	if got := r.Label(); got != "week" {
		t.Errorf("Label() = %q, want week", got)
	}

	custom, _ := CustomRange("2026-08-01", "2026-08-15")
	if got := custom.Label(); got != "2026-08-01 to 2026-08-15" {
		t.Errorf("Label() = %q", got)
	}
}
