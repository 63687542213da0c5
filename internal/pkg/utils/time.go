package utils

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

// ClockToMinutes converts a zero-padded 24-hour "HH:MM" string to minutes since
// midnight. Integer comparison on the result sidesteps timezone and date-object
// pitfalls when deciding whether a slot has already elapsed today.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}
	return hour*60 + minute, nil
}

// IsValidClock reports whether the string parses as a 24-hour HH:MM value.
func IsValidClock(clock string) bool {
	_, err := ClockToMinutes(clock)
	return err == nil
}

// ParseCalendarDate parses an ISO calendar date in the clinic timezone.
func ParseCalendarDate(date string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateFormat, date, time.Local)
}

// IsSameCalendarDay compares year, month and day only.
func IsSameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsBeforeToday reports whether the given calendar day is strictly before now's.
func IsBeforeToday(day time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}
