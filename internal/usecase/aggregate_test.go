package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

func TestAggregate_EmptySample(t *testing.T) {
	req := classifyRequest(nil)

	_, err := Aggregate(nil, 10, 0, 2, req)

	require.Error(t, err)
	assert.True(t, domain.IsInsufficientData(err))
}

func TestAggregate_CategoryCountsSumToN(t *testing.T) {
	deadline := domain.NewMinuteOfDay(9, 0)
	req := classifyRequest(&deadline)

	records := []domain.FlightRecord{
		actualOnlyRecord(domain.NewMinuteOfDay(8, 34)),
		actualOnlyRecord(domain.NewMinuteOfDay(8, 50)),
		actualOnlyRecord(domain.NewMinuteOfDay(10, 0)),
		{Cancelled: true},
	}
	classified := ClassifyFlights(records, req)

	result, err := Aggregate(classified, len(records), 0, 0, req)
	require.NoError(t, err)

	require.Len(t, result.Categories, 5, "all five categories present")
	sum := 0
	for _, c := range domain.Categories() {
		count, ok := result.Categories[c]
		assert.True(t, ok)
		sum += count
	}
	assert.Equal(t, result.WindowMatches, sum)
}

func TestAggregate_MeanAndPercentile(t *testing.T) {
	req := classifyRequest(nil)

	// Delays: 0, 10, 20, ..., 90 relative to the 08:30 target.
	records := make([]domain.FlightRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, actualOnlyRecord(domain.NewMinuteOfDay(8, 30)+domain.MinuteOfDay(i*10)))
	}
	classified := ClassifyFlights(records, req)

	result, err := Aggregate(classified, len(records), 0, 0, req)
	require.NoError(t, err)

	require.NotNil(t, result.MeanDelay)
	assert.InDelta(t, 45.0, *result.MeanDelay, 1e-9)

	// Linear interpolation: rank 0.9*9 = 8.1 between 80 and 90.
	require.NotNil(t, result.P90Delay)
	assert.InDelta(t, 81.0, *result.P90Delay, 1e-9)
}

func TestAggregate_DelayStatisticsUndefinedBelowTwoFlights(t *testing.T) {
	req := classifyRequest(nil)

	records := []domain.FlightRecord{
		actualOnlyRecord(domain.NewMinuteOfDay(8, 45)),
		{Cancelled: true},
	}
	classified := ClassifyFlights(records, req)

	result, err := Aggregate(classified, len(records), 0, 0, req)
	require.NoError(t, err)

	assert.Nil(t, result.MeanDelay, "mean undefined below two non-cancelled flights")
	assert.Nil(t, result.P90Delay)
	assert.InDelta(t, 0.5, result.CancellationRate, 1e-9)
}

func TestAggregate_NoDeadlineOmitsMissProbability(t *testing.T) {
	req := classifyRequest(nil)

	records := []domain.FlightRecord{
		actualOnlyRecord(domain.NewMinuteOfDay(8, 34)),
		actualOnlyRecord(domain.NewMinuteOfDay(8, 40)),
	}
	classified := ClassifyFlights(records, req)

	result, err := Aggregate(classified, len(records), 0, 0, req)
	require.NoError(t, err)

	assert.Nil(t, result.DeadlineMissProbability)
	assert.False(t, result.HighRisk)
}

func TestAggregate_RouteMeta(t *testing.T) {
	req := classifyRequest(nil)

	withMeta := func(actual domain.MinuteOfDay, origin, dest, aircraft string) domain.FlightRecord {
		r := actualOnlyRecord(actual)
		r.Meta = domain.RecordMeta{Origin: origin, Destination: dest, Aircraft: aircraft}
		return r
	}

	records := []domain.FlightRecord{
		withMeta(domain.NewMinuteOfDay(8, 34), "BCN", "ORY", "A320"),
		withMeta(domain.NewMinuteOfDay(8, 40), "BCN", "ORY", "A20N"),
		withMeta(domain.NewMinuteOfDay(8, 50), "BCN", "ORY", "A320"),
		withMeta(domain.NewMinuteOfDay(8, 55), "MAD", "ORY", ""),
	}
	classified := ClassifyFlights(records, req)

	result, err := Aggregate(classified, len(records), 0, 0, req)
	require.NoError(t, err)

	assert.Equal(t, "BCN", result.Route.Origin)
	assert.Equal(t, "ORY", result.Route.Destination)
	assert.Equal(t, "A320", result.Route.Aircraft)
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sample []int
		p      float64
		want   float64
	}{
		{name: "single value", sample: []int{42}, p: 90, want: 42},
		{name: "two values interpolated", sample: []int{0, 100}, p: 90, want: 90},
		{name: "median of three", sample: []int{10, 20, 30}, p: 50, want: 20},
		{name: "unsorted input", sample: []int{30, 10, 20}, p: 50, want: 20},
		{name: "zeroth percentile", sample: []int{5, 10, 15}, p: 0, want: 5},
		{name: "hundredth percentile", sample: []int{5, 10, 15}, p: 100, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, percentile(tt.sample, tt.p), 1e-9)
		})
	}
}
