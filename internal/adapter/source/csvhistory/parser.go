// Package csvhistory parses CSV flight-history exports into normalized
// flight records. Exports carry per-day actual times but no per-flight
// schedule, so records leave Scheduled unset and the engine measures
// delay against the request's target time.
package csvhistory

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// SourceName identifies the CSV history source.
const SourceName = "csv"

// dateLayout is the date format used by history exports, e.g. "21-Nov-25".
const dateLayout = "02-Jan-06"

// Column names recognized in the header row. Date, Departure and Arrival
// are required; the rest are optional.
const (
	colDate        = "date"
	colDeparture   = "departure"
	colArrival     = "arrival"
	colDuration    = "duration"
	colOrigin      = "origin"
	colDestination = "destination"
	colAircraft    = "aircraft"
)

// Parse reads a CSV history export and returns the normalized record set.
// Rows that cannot be normalized are skipped and counted in
// History.Skipped, never silently dropped. Clock text is interpreted in
// the given reference location context (the zone only matters for
// consistency; clock text carries no offset).
//
// Returns a wrapped ErrInvalidRequest error when the CSV itself is
// unreadable or missing a required column.
func Parse(r io.Reader, reference *time.Location) (*domain.History, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.WrapInvalidRequest("reading CSV header: %v", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	history := &domain.History{Meta: domain.HistoryMeta{Source: SourceName}}
	origins := newModeCounter()
	destinations := newModeCounter()
	aircraft := newModeCounter()

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row is a per-record failure, not a
			// fatal one.
			history.Skipped++
			continue
		}

		record, err := parseRow(row, columns, reference)
		if err != nil {
			history.Skipped++
			continue
		}

		origins.add(record.Meta.Origin)
		destinations.add(record.Meta.Destination)
		aircraft.add(record.Meta.Aircraft)
		history.Records = append(history.Records, record)
	}

	history.Meta.Origin = origins.mode()
	history.Meta.Destination = destinations.mode()
	history.Meta.Aircraft = aircraft.mode()

	return history, nil
}

// ParseString parses CSV content held in a string.
func ParseString(content string, reference *time.Location) (*domain.History, error) {
	return Parse(strings.NewReader(content), reference)
}

// mapColumns resolves header names to column indexes, case-insensitively.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{colDate, colDeparture, colArrival} {
		if _, ok := columns[required]; !ok {
			return nil, domain.WrapInvalidRequest("CSV is missing required column %q", required)
		}
	}
	return columns, nil
}

// parseRow converts one CSV row into a flight record.
func parseRow(row []string, columns map[string]int, reference *time.Location) (domain.FlightRecord, error) {
	date, err := time.Parse(dateLayout, cell(row, columns, colDate))
	if err != nil {
		return domain.FlightRecord{}, domain.NewParseError(cell(row, columns, colDate), "not a recognized date")
	}

	record := domain.FlightRecord{
		Cancelled: isCancelled(cell(row, columns, colDuration)),
		Meta: domain.RecordMeta{
			Origin:      cell(row, columns, colOrigin),
			Destination: cell(row, columns, colDestination),
			Aircraft:    cell(row, columns, colAircraft),
			Date:        date,
		},
	}

	if record.Cancelled {
		// Cancelled rows carry no usable arrival; the invariant is
		// exactly one of {actual present, cancelled}.
		return record, nil
	}

	departure, err := domain.ClockText(cell(row, columns, colDeparture)).Normalize(reference)
	if err != nil {
		return domain.FlightRecord{}, err
	}
	arrival, err := domain.ClockText(cell(row, columns, colArrival)).Normalize(reference)
	if err != nil {
		return domain.FlightRecord{}, err
	}

	record.Actual = &arrival
	// Arrival clock before departure clock means the flight landed after
	// a midnight rollover.
	record.Overnight = arrival < departure

	return record, nil
}

// cell returns the trimmed value of an optional column, or "" when the
// column is absent or the row is short.
func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// isCancelled reports whether a Duration cell marks a cancelled flight.
func isCancelled(duration string) bool {
	return strings.Contains(strings.ToLower(duration), "cancelled")
}

// modeCounter tracks the most frequent non-empty value of one column.
type modeCounter struct {
	counts map[string]int
	order  []string
}

func newModeCounter() *modeCounter {
	return &modeCounter{counts: make(map[string]int)}
}

func (m *modeCounter) add(v string) {
	if v == "" {
		return
	}
	if _, seen := m.counts[v]; !seen {
		m.order = append(m.order, v)
	}
	m.counts[v]++
}

func (m *modeCounter) mode() string {
	best, bestCount := "", 0
	for _, v := range m.order {
		if m.counts[v] > bestCount {
			best, bestCount = v, m.counts[v]
		}
	}
	return best
}
