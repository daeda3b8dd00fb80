package domain

import (
	"context"
	"time"
)

// FlightRecord is one historical flight instance after normalization.
// Exactly one of {Actual present, Cancelled} holds. Records are immutable
// once created and are consumed exactly once by the pipeline.
type FlightRecord struct {
	// Scheduled is the record's own scheduled arrival time. Sources that
	// carry no per-record schedule (CSV history exports) leave it nil and
	// the engine substitutes the request's target time.
	Scheduled *MinuteOfDay

	// Actual is the actual arrival time. Nil when the flight was cancelled.
	Actual *MinuteOfDay

	// Cancelled marks a cancelled flight. Cancelled records never carry
	// an actual time.
	Cancelled bool

	// Overnight marks a flight whose arrival clock time fell before its
	// departure clock time, i.e. the arrival happened after a midnight
	// rollover relative to departure.
	Overnight bool

	// Meta carries optional route and aircraft metadata.
	Meta RecordMeta
}

// RecordMeta holds optional descriptive metadata for a flight record.
type RecordMeta struct {
	// Origin is the origin airport code, if known.
	Origin string

	// Destination is the destination airport code, if known.
	Destination string

	// Aircraft is the aircraft type, if known.
	Aircraft string

	// Date is the flight date, if known.
	Date time.Time
}

// FilterTime returns the time the window filter should compare against the
// request target: the record's own scheduled time when present, otherwise
// the actual time. The second return value is false when the record has no
// usable time at all.
func (r FlightRecord) FilterTime() (MinuteOfDay, bool) {
	if r.Scheduled != nil {
		return *r.Scheduled, true
	}
	if r.Actual != nil {
		return *r.Actual, true
	}
	return 0, false
}

// History is a fully materialized record set produced by one source fetch
// or parse. Skipped counts records the source could not normalize; they are
// excluded from Records but surfaced rather than silently dropped.
type History struct {
	// Records are the normalized flight records.
	Records []FlightRecord

	// Skipped is the number of raw records that failed normalization.
	Skipped int

	// Meta describes the record set as a whole.
	Meta HistoryMeta
}

// HistoryMeta describes a record set.
type HistoryMeta struct {
	// Origin is the most common origin airport in the set.
	Origin string

	// Destination is the most common destination airport in the set.
	Destination string

	// Aircraft is the most common aircraft type in the set.
	Aircraft string

	// Source identifies which collaborator produced the set.
	Source string
}

// HistorySource fetches historical flight records for an identifier.
// Implementations own all I/O concerns (transport, credentials, retries);
// the engine only ever sees a materialized History.
type HistorySource interface {
	// Name returns the source's unique identifier.
	Name() string

	// Fetch retrieves the flight history for the given flight identifier.
	Fetch(ctx context.Context, ident string) (*History, error)
}
