package usecase

import "github.com/tailrisk/flight-tail-risk-engine/internal/domain"

// ComputeDelay returns the signed delay in minutes between a scheduled and
// an actual minute-of-day, with day-wrap correction: a raw difference more
// negative than -720 gains a day, one more positive than +720 loses a day.
// This bounds the result to [-720, +720] and keeps a flight scheduled at
// 23:55 that arrived at 00:05 at +10 minutes rather than -1430.
func ComputeDelay(scheduled, actual domain.MinuteOfDay) int {
	delay := int(actual) - int(scheduled)
	if delay < -domain.HalfDay {
		delay += domain.MinutesPerDay
	} else if delay > domain.HalfDay {
		delay -= domain.MinutesPerDay
	}
	return delay
}

// recordDelay computes the delay for one record relative to the request
// target. The record's own schedule is used when it has one; CSV-style
// records without a per-record schedule are measured against the target.
// Returns false for cancelled records and records without an actual time:
// their delay is undefined, not zero.
func recordDelay(r domain.FlightRecord, target domain.MinuteOfDay) (int, bool) {
	if r.Cancelled || r.Actual == nil {
		return 0, false
	}

	scheduled := target
	if r.Scheduled != nil {
		scheduled = *r.Scheduled
	}
	return ComputeDelay(scheduled, *r.Actual), true
}
