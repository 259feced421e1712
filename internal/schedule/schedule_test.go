package schedule

import (
	"testing"
	"time"
)

func mustLoadLoc(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestValidateRange(t *testing.T) {
	if err := ValidateRange("09:00", "10:00"); err != nil {
		t.Fatalf("ValidateRange error: %v", err)
	}
	if err := ValidateRange("10:00", "09:00"); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if err := ValidateRange("10:00", "10:00"); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange for equal times, got %v", err)
	}
	if err := ValidateRange("not-a-time", "10:00"); err != ErrInvalidTime {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestIsDatePast(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, loc)

	past, err := IsDatePast("2025-06-03", loc, now)
	if err != nil {
		t.Fatalf("IsDatePast error: %v", err)
	}
	if !past {
		t.Fatalf("expected date to be past")
	}

	past, err = IsDatePast("2025-06-04", loc, now)
	if err != nil {
		t.Fatalf("IsDatePast error: %v", err)
	}
	if past {
		t.Fatalf("expected today to not be past")
	}
}

func TestInPeriod(t *testing.T) {
	cases := []struct {
		start  string
		period string
		want   bool
	}{
		{"08:00", PeriodMorning, true},
		{"11:59", PeriodMorning, true},
		{"12:00", PeriodMorning, false},
		{"12:00", PeriodAfternoon, true},
		{"16:30", PeriodAfternoon, true},
		{"17:00", PeriodEvening, true},
		{"20:30", PeriodEvening, true},
		{"21:00", PeriodEvening, false},
		{"19:00", PeriodAll, true},
		{"19:00", "", true},
	}
	for _, c := range cases {
		got, err := InPeriod(c.start, c.period)
		if err != nil {
			t.Fatalf("InPeriod(%q, %q) error: %v", c.start, c.period, err)
		}
		if got != c.want {
			t.Fatalf("InPeriod(%q, %q) = %v, want %v", c.start, c.period, got, c.want)
		}
	}

	if _, err := InPeriod("09:00", "midnight"); err != ErrInvalidPeriod {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestFormatLongDate(t *testing.T) {
	loc := mustLoadLoc(t)
	got, err := FormatLongDate("2025-06-10", loc)
	if err != nil {
		t.Fatalf("FormatLongDate error: %v", err)
	}
	if got != "Tuesday, 10 June 2025" {
		t.Fatalf("unexpected long date: %q", got)
	}
}

func TestFormatTimeRange(t *testing.T) {
	got, err := FormatTimeRange("09:00", "10:00")
	if err != nil {
		t.Fatalf("FormatTimeRange error: %v", err)
	}
	if got != "9:00 AM – 10:00 AM" {
		t.Fatalf("unexpected time range: %q", got)
	}

	got, err = FormatTimeRange("17:30", "18:30")
	if err != nil {
		t.Fatalf("FormatTimeRange error: %v", err)
	}
	if got != "5:30 PM – 6:30 PM" {
		t.Fatalf("unexpected time range: %q", got)
	}
}
