// Package mock provides test doubles for the tail risk analysis system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// Source is a configurable mock implementation of domain.HistorySource.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and upstream failures.
type Source struct {
	name      string
	history   *domain.History
	err       error
	delay     time.Duration
	callCount int
	lastIdent string
	mu        sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{
		name: name,
	}
}

// WithHistory configures the source to return the given history.
func (s *Source) WithHistory(history *domain.History) *Source {
	s.history = history
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *Source) Name() string {
	return s.name
}

// Fetch implements domain.HistorySource.Fetch.
// It respects context cancellation, applies the configured delay, and
// returns the configured history or error.
func (s *Source) Fetch(ctx context.Context, ident string) (*domain.History, error) {
	s.mu.Lock()
	s.callCount++
	s.lastIdent = ident
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}

	if s.history == nil {
		return &domain.History{Meta: domain.HistoryMeta{Source: s.name}}, nil
	}
	return s.history, nil
}

// CallCount returns the number of times Fetch was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// LastIdent returns the flight identifier of the most recent Fetch call.
func (s *Source) LastIdent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastIdent
}

// Reset resets the recorded calls.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
	s.lastIdent = ""
}

// Ensure Source implements domain.HistorySource at compile time.
var _ domain.HistorySource = (*Source)(nil)

// SampleHistory returns a history of count records clustered around the
// given arrival time, with every cancelEvery-th record cancelled. Records
// carry realistic route metadata. cancelEvery <= 0 disables cancellations.
func SampleHistory(source string, around domain.MinuteOfDay, count, cancelEvery int) *domain.History {
	history := &domain.History{
		Meta: domain.HistoryMeta{
			Origin:      "BCN",
			Destination: "ORY",
			Aircraft:    "A320",
			Source:      source,
		},
	}

	baseDate := time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		scheduled := around
		record := domain.FlightRecord{
			Scheduled: &scheduled,
			Meta: domain.RecordMeta{
				Origin:      "BCN",
				Destination: "ORY",
				Aircraft:    "A320",
				Date:        baseDate.AddDate(0, 0, -i),
			},
		}

		if cancelEvery > 0 && i%cancelEvery == cancelEvery-1 {
			record.Cancelled = true
		} else {
			// Spread delays from -10 to +N minutes around the target.
			actual := domain.MinuteOfDay((int(around) + i*5 - 10 + domain.MinutesPerDay) % domain.MinutesPerDay)
			record.Actual = &actual
		}

		history.Records = append(history.Records, record)
	}

	return history
}
