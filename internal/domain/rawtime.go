package domain

import (
	"strings"
	"time"
)

// RawTimeKind identifies which representation a RawTime carries.
type RawTimeKind string

// Supported raw time representations.
const (
	// RawTimeClockText is 12-hour clock text with an AM/PM marker,
	// e.g. "07:17AM". Trailing timezone tokens from scraped data
	// ("07:17AM CET") are tolerated and ignored.
	RawTimeClockText RawTimeKind = "clock_text"

	// RawTimeTimestamp is an absolute timestamp carrying its own offset,
	// e.g. an RFC 3339 value from an upstream API.
	RawTimeTimestamp RawTimeKind = "timestamp"
)

// RawTime is a tagged union of the raw time representations the upstream
// sources produce. It is resolved into a MinuteOfDay exactly once, at
// ingestion; the rest of the pipeline never sees raw representations.
type RawTime struct {
	// Kind selects which of the fields below is meaningful.
	Kind RawTimeKind

	// Text is the raw clock text (RawTimeClockText only).
	Text string

	// Timestamp is the absolute time (RawTimeTimestamp only).
	Timestamp time.Time
}

// ClockText builds a RawTime from 12-hour clock text.
func ClockText(s string) RawTime {
	return RawTime{Kind: RawTimeClockText, Text: s}
}

// Timestamp builds a RawTime from an absolute time value.
func Timestamp(t time.Time) RawTime {
	return RawTime{Kind: RawTimeTimestamp, Timestamp: t}
}

// Normalize converts the raw representation into a minute-of-day.
//
// Clock text is parsed as a 12-hour time with an AM/PM marker; "12:00AM"
// maps to minute 0 and "12:00PM" to minute 720. Timestamps are converted
// to the reference location before the minute-of-day is extracted, so
// values with different offsets land in a common frame. A nil reference
// leaves the timestamp in its own location.
//
// Returns a *ParseError when the input matches neither representation.
func (rt RawTime) Normalize(reference *time.Location) (MinuteOfDay, error) {
	switch rt.Kind {
	case RawTimeClockText:
		return normalizeClockText(rt.Text)
	case RawTimeTimestamp:
		if rt.Timestamp.IsZero() {
			return 0, NewParseError("", "timestamp is zero")
		}
		t := rt.Timestamp
		if reference != nil {
			t = t.In(reference)
		}
		return MinuteOfDayFromTime(t), nil
	default:
		return 0, NewParseError(rt.Text, "unsupported raw time representation")
	}
}

// clockLayouts are tried in order when parsing clock text.
var clockLayouts = []string{
	"3:04PM",
	"3:04 PM",
	"15:04",
}

// normalizeClockText parses 12-hour clock text into a minute-of-day.
// Timezone abbreviations appended by scrapers ("CET", "CEST") are stripped
// before parsing.
func normalizeClockText(raw string) (MinuteOfDay, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return 0, NewParseError(raw, "empty time string")
	}

	s = stripTimezoneToken(s)

	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return MinuteOfDayFromTime(t), nil
		}
	}

	return 0, NewParseError(raw, "not a recognized clock time")
}

// stripTimezoneToken removes a trailing alphabetic timezone token that is
// not an AM/PM marker, e.g. "07:17AM CET" -> "07:17AM".
func stripTimezoneToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return s
	}

	last := fields[len(fields)-1]
	if last == "AM" || last == "PM" {
		return s
	}
	for _, r := range last {
		if r < 'A' || r > 'Z' {
			return s
		}
	}
	return strings.Join(fields[:len(fields)-1], " ")
}
