package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

func classifyRequest(deadline *domain.MinuteOfDay) domain.AnalysisRequest {
	return domain.AnalysisRequest{
		Scheduled:            domain.NewMinuteOfDay(8, 30),
		Deadline:             deadline,
		WindowMinutes:        180,
		NuisanceThreshold:    15,
		SignificantThreshold: 45,
	}
}

func TestClassifyFlights(t *testing.T) {
	deadline := domain.NewMinuteOfDay(9, 0)
	req := classifyRequest(&deadline)

	records := []domain.FlightRecord{
		actualOnlyRecord(domain.NewMinuteOfDay(8, 34)),  // +4, on time
		actualOnlyRecord(domain.NewMinuteOfDay(8, 45)),  // +15, nuisance
		actualOnlyRecord(domain.NewMinuteOfDay(9, 20)),  // +50, missed deadline (beats significant)
		actualOnlyRecord(domain.NewMinuteOfDay(8, 8)),   // -22, on time
		{Cancelled: true},
	}

	classified := ClassifyFlights(records, req)
	require.Len(t, classified, 5)

	assert.Equal(t, domain.CategoryOnTime, classified[0].Category)
	assert.Equal(t, domain.CategoryNuisance, classified[1].Category)
	assert.Equal(t, domain.CategoryMissedDeadline, classified[2].Category)
	assert.Equal(t, domain.CategoryOnTime, classified[3].Category)
	assert.Equal(t, domain.CategoryCancelled, classified[4].Category)

	require.NotNil(t, classified[0].Delay)
	assert.Equal(t, 4, *classified[0].Delay)
	assert.Nil(t, classified[4].Delay, "cancelled flight delay is undefined, not zero")
}

func TestClassifyFlights_NoDeadline(t *testing.T) {
	req := classifyRequest(nil)

	records := []domain.FlightRecord{
		actualOnlyRecord(domain.NewMinuteOfDay(9, 20)), // +50 with no deadline: significant
	}

	classified := ClassifyFlights(records, req)
	require.Len(t, classified, 1)
	assert.Equal(t, domain.CategorySignificant, classified[0].Category)
}

func TestClassifyFlights_DeadlineWrap(t *testing.T) {
	// Redeye: scheduled 23:30, deadline 00:30 next day, buffer 60 minutes.
	deadline := domain.NewMinuteOfDay(0, 30)
	req := domain.AnalysisRequest{
		Scheduled:            domain.NewMinuteOfDay(23, 30),
		Deadline:             &deadline,
		WindowMinutes:        180,
		NuisanceThreshold:    15,
		SignificantThreshold: 45,
	}

	records := []domain.FlightRecord{
		// Arrived 00:20 next day: +50 minutes, within the 60-minute buffer.
		scheduledRecord(domain.NewMinuteOfDay(23, 30), domain.NewMinuteOfDay(0, 20)),
		// Arrived 00:45 next day: +75 minutes, past the deadline.
		scheduledRecord(domain.NewMinuteOfDay(23, 30), domain.NewMinuteOfDay(0, 45)),
	}

	classified := ClassifyFlights(records, req)
	require.Len(t, classified, 2)
	assert.Equal(t, domain.CategorySignificant, classified[0].Category)
	assert.Equal(t, domain.CategoryMissedDeadline, classified[1].Category)
}
