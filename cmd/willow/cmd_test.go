// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers parseTime, weekday/portion/section parsing, and resolvers.
package main

import (
	"testing"

	"github.com/harperreed/willow/internal/models"
	"github.com/harperreed/willow/internal/store"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2026-08-27 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2026-08-27T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2026-08-27",
			wantErr: false,
		},
		{
			name:    "garbage",
			input:   "not a time",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseWeekdays(t *testing.T) {
	days, err := parseWeekdays("1, 3,5")
	if err != nil {
		t.Fatalf("parseWeekdays() error = %v", err)
	}
	want := []int{1, 3, 5}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %d, want %d", i, days[i], want[i])
		}
	}

	if _, err := parseWeekdays("7"); err == nil {
		t.Error("parseWeekdays(\"7\") expected error, got nil")
	}
	if _, err := parseWeekdays("mon"); err == nil {
		t.Error("parseWeekdays(\"mon\") expected error, got nil")
	}
}

func TestParsePortions(t *testing.T) {
	portions, err := parsePortions("1=200g, 3=250g")
	if err != nil {
		t.Fatalf("parsePortions() error = %v", err)
	}
	if portions[1] != "200g" {
		t.Errorf("portions[1] = %q, want %q", portions[1], "200g")
	}
	if portions[3] != "250g" {
		t.Errorf("portions[3] = %q, want %q", portions[3], "250g")
	}

	if _, err := parsePortions("1"); err == nil {
		t.Error("parsePortions(\"1\") expected error, got nil")
	}
	if _, err := parsePortions("9=200g"); err == nil {
		t.Error("parsePortions(\"9=200g\") expected error, got nil")
	}
}

func TestParseSections(t *testing.T) {
	all, err := parseSections("")
	if err != nil {
		t.Fatalf("parseSections(\"\") error = %v", err)
	}
	if !all.Habits || !all.Tasks || !all.Meals || !all.Symptoms || !all.Supplements {
		t.Error("empty sections should enable everything")
	}

	some, err := parseSections("habits, meals")
	if err != nil {
		t.Fatalf("parseSections() error = %v", err)
	}
	if !some.Habits || !some.Meals {
		t.Error("named sections should be enabled")
	}
	if some.Tasks || some.Symptoms || some.Supplements {
		t.Error("unnamed sections should be disabled")
	}

	if _, err := parseSections("bogus"); err == nil {
		t.Error("parseSections(\"bogus\") expected error, got nil")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long string here", 10); got != "a very ..." {
		t.Errorf("truncate() = %q, want %q", got, "a very ...")
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight() = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight() = %q, want %q", got, "abcdef")
	}
}

func TestResolveHabitByPrefix(t *testing.T) {
	doc := store.NewDocument()
	h := models.NewHabit("Run", "#4caf50", "")
	doc.Habits = append(doc.Habits, h)

	got, err := resolveHabit(doc, h.ID.String()[:8])
	if err != nil {
		t.Fatalf("resolveHabit() error = %v", err)
	}
	if got.ID != h.ID {
		t.Errorf("resolved wrong habit: %s", got.ID)
	}

	if _, err := resolveHabit(doc, "zzzzzzzz"); err == nil {
		t.Error("expected not-found error, got nil")
	}
}

func TestResolveSupplementByName(t *testing.T) {
	doc := store.NewDocument()
	s := models.NewSupplement("Vitamin D", "2000 IU", 90, 1)
	doc.Supplements = append(doc.Supplements, s)

	got, err := resolveSupplement(doc, "vitamin d")
	if err != nil {
		t.Fatalf("resolveSupplement() error = %v", err)
	}
	if got.ID != s.ID {
		t.Errorf("resolved wrong supplement: %s", got.ID)
	}
}

func TestWeekdayNames(t *testing.T) {
	if got := weekdayNames([]int{5, 1, 3}); got != "Mon,Wed,Fri" {
		t.Errorf("weekdayNames() = %q, want %q", got, "Mon,Wed,Fri")
	}
}
