// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// Minute returns a MinuteOfDay for the given clock time.
func Minute(hour, minute int) domain.MinuteOfDay {
	return domain.NewMinuteOfDay(hour, minute)
}

// MinutePtr returns a pointer to a MinuteOfDay for the given clock time.
func MinutePtr(hour, minute int) *domain.MinuteOfDay {
	return Ptr(domain.NewMinuteOfDay(hour, minute))
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// ArrivedRecord builds a non-cancelled record with its own schedule and
// actual arrival.
func ArrivedRecord(scheduled, actual domain.MinuteOfDay) domain.FlightRecord {
	return domain.FlightRecord{
		Scheduled: Ptr(scheduled),
		Actual:    Ptr(actual),
	}
}

// CancelledRecord builds a cancelled record scheduled at the given time.
func CancelledRecord(scheduled domain.MinuteOfDay) domain.FlightRecord {
	return domain.FlightRecord{
		Scheduled: Ptr(scheduled),
		Cancelled: true,
	}
}
