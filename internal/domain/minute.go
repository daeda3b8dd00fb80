// Package domain contains the core entities and rules for the tail risk
// analysis engine. These types are source-agnostic and form the foundation
// upon which the analysis pipeline is built.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Minutes in a day and half a day. Half a day is the pivot for all
// midnight-wrap corrections.
const (
	MinutesPerDay = 1440
	HalfDay       = 720
)

// MinuteOfDay is a clock time expressed as minutes after midnight,
// in the range [0, 1439]. The date is deliberately not represented.
type MinuteOfDay int

// clockPattern matches times in HH:MM format.
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// NewMinuteOfDay builds a MinuteOfDay from an hour and minute.
func NewMinuteOfDay(hour, minute int) MinuteOfDay {
	return MinuteOfDay(hour*60 + minute)
}

// MinuteOfDayFromTime extracts the minute-of-day from a time value,
// using the location the value is already expressed in.
func MinuteOfDayFromTime(t time.Time) MinuteOfDay {
	return NewMinuteOfDay(t.Hour(), t.Minute())
}

// ParseMinuteOfDay parses a 24-hour "HH:MM" string into a MinuteOfDay.
// Returns a wrapped ErrInvalidRequest error on malformed input.
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: time must be in HH:MM format, got %q", ErrInvalidRequest, s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if hour > 23 {
		return 0, fmt.Errorf("%w: hour must be between 00 and 23, got %q", ErrInvalidRequest, s)
	}
	if minute > 59 {
		return 0, fmt.Errorf("%w: minute must be between 00 and 59, got %q", ErrInvalidRequest, s)
	}

	return NewMinuteOfDay(hour, minute), nil
}

// IsValid reports whether the value is a real clock time.
func (m MinuteOfDay) IsValid() bool {
	return m >= 0 && m < MinutesPerDay
}

// Hour returns the hour component (0-23).
func (m MinuteOfDay) Hour() int {
	return int(m) / 60
}

// Minute returns the minute component (0-59).
func (m MinuteOfDay) Minute() int {
	return int(m) % 60
}

// String formats the value as "HH:MM".
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

// CircularDistance returns the shortest distance in minutes between two
// clock times, going either forward or backward across midnight.
// 23:50 and 00:10 are 20 minutes apart, not 1420.
func CircularDistance(a, b MinuteOfDay) int {
	diff := int(a) - int(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > HalfDay {
		diff = MinutesPerDay - diff
	}
	return diff
}
