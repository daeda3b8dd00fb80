// Package usecase contains the tail risk analysis pipeline. Each stage is
// a pure transformation over an in-memory record set; all I/O lives in the
// source adapters.
package usecase

import "github.com/tailrisk/flight-tail-risk-engine/internal/domain"

// FilterWindow retains exactly those records whose circular distance to
// the target time is at most halfWidth minutes. The filter base is the
// record's own scheduled time when present, otherwise its actual time.
// A cancelled record with no time of its own (a CSV cancellation row) is
// presumed scheduled at the target and always matches.
//
// Non-cancelled records with no usable time value are excluded and counted
// in the second return value rather than silently dropped. Relative order
// of retained records is preserved.
func FilterWindow(records []domain.FlightRecord, target domain.MinuteOfDay, halfWidth int) (matched []domain.FlightRecord, missingTime int) {
	matched = make([]domain.FlightRecord, 0, len(records))

	for _, r := range records {
		base, ok := r.FilterTime()
		if !ok {
			if r.Cancelled {
				matched = append(matched, r)
				continue
			}
			missingTime++
			continue
		}
		if domain.CircularDistance(base, target) <= halfWidth {
			matched = append(matched, r)
		}
	}

	return matched, missingTime
}
