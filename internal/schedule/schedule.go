package schedule

import (
	"errors"
	"fmt"
	"time"
)

const (
	PeriodAll       = "all"
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
)

var (
	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidTime   = errors.New("invalid time format")
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidRange  = errors.New("end time must be after start time")
)

// Period boundaries in minutes from midnight. A slot belongs to the
// period that contains its start time.
var periodBounds = map[string][2]int{
	PeriodMorning:   {8 * 60, 12 * 60},
	PeriodAfternoon: {12 * 60, 17 * 60},
	PeriodEvening:   {17 * 60, 21 * 60},
}

func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func ParseClockToMinutes(timeStr string) (int, error) {
	tm, err := time.Parse("15:04", timeStr)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func IsDatePast(dateStr string, loc *time.Location, now time.Time) (bool, error) {
	date, err := ParseDate(dateStr, loc)
	if err != nil {
		return false, err
	}
	localNow := now.In(loc)
	startToday := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)
	return date.Before(startToday), nil
}

// ValidateRange checks that both times parse and that end is after start.
func ValidateRange(startStr, endStr string) error {
	start, err := ParseClockToMinutes(startStr)
	if err != nil {
		return err
	}
	end, err := ParseClockToMinutes(endStr)
	if err != nil {
		return err
	}
	if end <= start {
		return ErrInvalidRange
	}
	return nil
}

func IsValidPeriod(period string) bool {
	if period == "" || period == PeriodAll {
		return true
	}
	_, ok := periodBounds[period]
	return ok
}

// InPeriod reports whether a slot starting at startStr falls inside the
// named period. "all" and "" match everything.
func InPeriod(startStr, period string) (bool, error) {
	if period == "" || period == PeriodAll {
		return true, nil
	}
	bounds, ok := periodBounds[period]
	if !ok {
		return false, ErrInvalidPeriod
	}
	start, err := ParseClockToMinutes(startStr)
	if err != nil {
		return false, err
	}
	return start >= bounds[0] && start < bounds[1], nil
}

// FormatLongDate renders a date the way the site shows it, e.g.
// "Tuesday, 10 June 2025".
func FormatLongDate(dateStr string, loc *time.Location) (string, error) {
	date, err := ParseDate(dateStr, loc)
	if err != nil {
		return "", err
	}
	return date.Format("Monday, 2 January 2006"), nil
}

// FormatClock12 renders a 24h clock string as 12h, e.g. "09:00" -> "9:00 AM".
func FormatClock12(timeStr string) (string, error) {
	tm, err := time.Parse("15:04", timeStr)
	if err != nil {
		return "", ErrInvalidTime
	}
	return tm.Format("3:04 PM"), nil
}

// FormatTimeRange renders a slot interval, e.g. "9:00 AM – 10:00 AM".
func FormatTimeRange(startStr, endStr string) (string, error) {
	start, err := FormatClock12(startStr)
	if err != nil {
		return "", err
	}
	end, err := FormatClock12(endStr)
	if err != nil {
		return "", err
	}
	return start + " – " + end, nil
}
