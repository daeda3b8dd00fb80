// Package aeroapi implements a flight-history source backed by a
// FlightAware AeroAPI compatible endpoint. Timestamps from the API carry
// their own offsets and are converted to the destination airport's
// timezone before normalization, so all records land in the frame the
// traveller experiences.
package aeroapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tailrisk/flight-tail-risk-engine/internal/config"
	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
	"github.com/tailrisk/flight-tail-risk-engine/internal/infrastructure/retry"
	"github.com/tailrisk/flight-tail-risk-engine/internal/infrastructure/timeutil"
)

// SourceName is the unique identifier for the AeroAPI history source.
const SourceName = "aeroapi"

// apiKeyHeader is the header AeroAPI expects the key in.
const apiKeyHeader = "x-apikey"

// Client fetches historical flight records from AeroAPI.
type Client struct {
	baseURL    string
	apiKey     string
	maxPages   int
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewClient creates an AeroAPI client. The API key is passed explicitly;
// the client never reads the environment itself.
func NewClient(cfg config.AeroAPIConfig, apiKey string) *Client {
	retryCfg := retry.SourceConfig
	retryCfg.RetryIf = domain.IsSourceRetryable

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   apiKey,
		maxPages: cfg.MaxPages,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryCfg: retryCfg,
	}
}

// Name returns the source identifier.
func (c *Client) Name() string {
	return SourceName
}

// Fetch retrieves historical arrivals for a flight identifier (e.g.
// "VY8433"). Transient upstream failures are retried with exponential
// backoff; client-side failures (bad identifier, auth) are not.
func (c *Client) Fetch(ctx context.Context, ident string) (*domain.History, error) {
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return nil, domain.WrapInvalidRequest("flight identifier is empty")
	}

	var resp *flightsResponse
	err := retry.Do(ctx, func() error {
		var fetchErr error
		resp, fetchErr = c.fetchFlights(ctx, ident)
		return fetchErr
	}, c.retryCfg)
	if err != nil {
		return nil, err
	}

	return c.normalize(resp.Flights)
}

// fetchFlights performs one HTTP round trip against the flights endpoint.
func (c *Client) fetchFlights(ctx context.Context, ident string) (*flightsResponse, error) {
	endpoint := fmt.Sprintf("%s/flights/%s", c.baseURL, url.PathEscape(ident))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("max_pages", fmt.Sprintf("%d", c.maxPages))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures (DNS, connection reset, timeout) are worth
		// retrying.
		return nil, domain.NewRetryableSourceError(SourceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: unexpected status %d", domain.ErrSourceUnavailable, resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, domain.NewRetryableSourceError(SourceName, err)
		}
		return nil, domain.NewSourceError(SourceName, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewRetryableSourceError(SourceName, err)
	}

	var parsed flightsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("decoding response: %w", err))
	}

	return &parsed, nil
}

// normalize converts API flights into the domain record set. Flights that
// cannot be normalized are counted in Skipped, never silently dropped.
func (c *Client) normalize(flights []apiFlight) (*domain.History, error) {
	history := &domain.History{Meta: domain.HistoryMeta{Source: SourceName}}
	origins := newModeCounter()
	destinations := newModeCounter()
	aircraft := newModeCounter()

	for _, f := range flights {
		record, err := normalizeFlight(f)
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

// normalizeFlight converts a single API flight into a flight record.
// Times are converted to the destination airport's timezone so the
// minute-of-day matches the local arrival clock.
func normalizeFlight(f apiFlight) (domain.FlightRecord, error) {
	record := domain.FlightRecord{
		Cancelled: f.isCancelled(),
		Meta: domain.RecordMeta{
			Origin:      f.Origin.Code,
			Destination: f.Destination.Code,
			Aircraft:    f.AircraftType,
		},
	}

	dest, err := destinationLocation(f.Destination)
	if err != nil {
		return domain.FlightRecord{}, err
	}

	if scheduled, err := parseTimestamp(f.ScheduledIn, dest); err == nil {
		record.Scheduled = &scheduled
		record.Meta.Date = f.scheduledDate(dest)
	}

	if record.Cancelled {
		return record, nil
	}

	arrival := f.ActualIn
	if arrival == "" {
		arrival = f.EstimatedIn
	}
	actual, err := parseTimestamp(arrival, dest)
	if err != nil {
		return domain.FlightRecord{}, err
	}
	record.Actual = &actual

	if record.Scheduled != nil {
		record.Overnight = actual < *record.Scheduled
	}

	return record, nil
}

// destinationLocation resolves the destination airport's timezone,
// defaulting to UTC when the API omits it.
func destinationLocation(ref airportRef) (*time.Location, error) {
	if ref.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := timeutil.GetLocation(ref.Timezone)
	if err != nil {
		return nil, domain.NewParseError(ref.Timezone, "unknown destination timezone")
	}
	return loc, nil
}

// parseTimestamp parses an RFC 3339 timestamp and normalizes it in the
// given location.
func parseTimestamp(raw string, loc *time.Location) (domain.MinuteOfDay, error) {
	if raw == "" {
		return 0, domain.NewParseError(raw, "empty timestamp")
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0, domain.NewParseError(raw, "not an RFC 3339 timestamp")
	}
	return domain.Timestamp(t).Normalize(loc)
}

// flightsResponse is the top-level AeroAPI flights payload.
type flightsResponse struct {
	Flights []apiFlight `json:"flights"`
}

// apiFlight is one flight instance as AeroAPI reports it.
type apiFlight struct {
	Ident        string     `json:"ident"`
	Status       string     `json:"status"`
	Cancelled    bool       `json:"cancelled"`
	AircraftType string     `json:"aircraft_type"`
	Origin       airportRef `json:"origin"`
	Destination  airportRef `json:"destination"`
	ScheduledIn  string     `json:"scheduled_in"`
	EstimatedIn  string     `json:"estimated_in"`
	ActualIn     string     `json:"actual_in"`
}

// airportRef is an airport reference within a flight payload.
type airportRef struct {
	Code     string `json:"code"`
	Timezone string `json:"timezone"`
}

// isCancelled reports whether the flight was cancelled, from either the
// boolean flag or the status text.
func (f apiFlight) isCancelled() bool {
	return f.Cancelled || strings.Contains(strings.ToLower(f.Status), "cancelled")
}

// scheduledDate extracts the flight date in the destination zone.
func (f apiFlight) scheduledDate(loc *time.Location) time.Time {
	t, err := time.Parse(time.RFC3339, f.ScheduledIn)
	if err != nil {
		return time.Time{}
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// modeCounter tracks the most frequent non-empty value of one field.
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
