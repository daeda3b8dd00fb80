package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// TestAnalyze_DeadlineScenario runs the reference scenario: five flights
// scheduled around 08:30 with a 09:00 deadline and 15/45 thresholds.
func TestAnalyze_DeadlineScenario(t *testing.T) {
	deadline := domain.NewMinuteOfDay(9, 0)
	req := domain.AnalysisRequest{
		Scheduled:            domain.NewMinuteOfDay(8, 30),
		Deadline:             &deadline,
		WindowMinutes:        180,
		NuisanceThreshold:    15,
		SignificantThreshold: 45,
	}

	history := domain.History{
		Records: []domain.FlightRecord{
			actualOnlyRecord(domain.NewMinuteOfDay(8, 34)), // +4
			actualOnlyRecord(domain.NewMinuteOfDay(8, 8)),  // -22
			actualOnlyRecord(domain.NewMinuteOfDay(8, 45)), // +15
			{Cancelled: true, Scheduled: minutePtr(domain.NewMinuteOfDay(8, 30))},
			actualOnlyRecord(domain.NewMinuteOfDay(8, 30)), // 0
		},
	}

	result, err := NewTailRiskUseCase().Analyze(context.Background(), history, req)
	require.NoError(t, err)

	assert.Equal(t, 5, result.FlightsConsidered)
	assert.Equal(t, 5, result.WindowMatches)
	assert.InDelta(t, 0.2, result.CancellationRate, 1e-9)
	assert.ElementsMatch(t, []int{4, -22, 15, 0}, result.Delays)

	assert.Equal(t, 1, result.Categories[domain.CategoryCancelled])
	assert.Equal(t, 3, result.Categories[domain.CategoryOnTime])
	assert.Equal(t, 1, result.Categories[domain.CategoryNuisance])
	assert.Equal(t, 0, result.Categories[domain.CategorySignificant])
	assert.Equal(t, 0, result.Categories[domain.CategoryMissedDeadline])

	// Only the cancellation misses the deadline: 08:45 lands before 09:00.
	require.NotNil(t, result.DeadlineMissProbability)
	assert.InDelta(t, 0.2, *result.DeadlineMissProbability, 1e-9)
	assert.True(t, result.HighRisk)
}

func TestAnalyze_InsufficientData(t *testing.T) {
	req := domain.AnalysisRequest{Scheduled: domain.NewMinuteOfDay(8, 30)}

	history := domain.History{
		Records: []domain.FlightRecord{
			// Evening flights, far outside the morning window.
			actualOnlyRecord(domain.NewMinuteOfDay(20, 0)),
			actualOnlyRecord(domain.NewMinuteOfDay(21, 30)),
		},
	}

	_, err := NewTailRiskUseCase().Analyze(context.Background(), history, req)

	require.Error(t, err)
	assert.True(t, domain.IsInsufficientData(err))
}

func TestAnalyze_ConfigurationRejectedBeforeProcessing(t *testing.T) {
	req := domain.AnalysisRequest{
		Scheduled:            domain.NewMinuteOfDay(8, 30),
		WindowMinutes:        180,
		NuisanceThreshold:    45,
		SignificantThreshold: 45,
	}

	_, err := NewTailRiskUseCase().Analyze(context.Background(), domain.History{}, req)

	require.Error(t, err)
	assert.True(t, domain.IsConfiguration(err))
}

func TestAnalyze_SkippedRecordsSurfaced(t *testing.T) {
	req := domain.AnalysisRequest{Scheduled: domain.NewMinuteOfDay(8, 30)}

	history := domain.History{
		Records: []domain.FlightRecord{
			actualOnlyRecord(domain.NewMinuteOfDay(8, 34)),
			actualOnlyRecord(domain.NewMinuteOfDay(8, 40)),
		},
		Skipped: 3,
	}

	result, err := NewTailRiskUseCase().Analyze(context.Background(), history, req)
	require.NoError(t, err)

	assert.Equal(t, 3, result.SkippedRecords)
}

// fakeSource is a minimal in-package HistorySource stub.
type fakeSource struct {
	history *domain.History
	err     error
	gotCtx  bool
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Fetch(ctx context.Context, _ string) (*domain.History, error) {
	_, f.gotCtx = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func TestAnalyzeFlight(t *testing.T) {
	source := &fakeSource{
		history: &domain.History{
			Records: []domain.FlightRecord{
				scheduledRecord(domain.NewMinuteOfDay(16, 45), domain.NewMinuteOfDay(17, 0)),
				scheduledRecord(domain.NewMinuteOfDay(16, 45), domain.NewMinuteOfDay(16, 40)),
			},
		},
	}
	uc := NewFlightAnalysisUseCase(source, NewTailRiskUseCase(), 0)

	req := domain.AnalysisRequest{Scheduled: domain.NewMinuteOfDay(16, 45)}
	result, err := uc.AnalyzeFlight(context.Background(), "VY6612", req)

	require.NoError(t, err)
	assert.Equal(t, 2, result.WindowMatches)
	assert.True(t, source.gotCtx, "fetch must run under a deadline")
}

func TestAnalyzeFlight_SourceError(t *testing.T) {
	wantErr := domain.NewSourceError("fake", errors.New("boom"))
	uc := NewFlightAnalysisUseCase(&fakeSource{err: wantErr}, NewTailRiskUseCase(), 0)

	req := domain.AnalysisRequest{Scheduled: domain.NewMinuteOfDay(16, 45)}
	_, err := uc.AnalyzeFlight(context.Background(), "VY6612", req)

	assert.ErrorIs(t, err, wantErr)
}

func TestAnalyzeFlight_EmptyHistory(t *testing.T) {
	uc := NewFlightAnalysisUseCase(&fakeSource{history: &domain.History{}}, NewTailRiskUseCase(), 0)

	req := domain.AnalysisRequest{Scheduled: domain.NewMinuteOfDay(16, 45)}
	_, err := uc.AnalyzeFlight(context.Background(), "VY6612", req)

	assert.ErrorIs(t, err, domain.ErrNoHistory)
}

func TestAnalyzeFlight_InvalidRequestSkipsFetch(t *testing.T) {
	source := &fakeSource{}
	uc := NewFlightAnalysisUseCase(source, NewTailRiskUseCase(), 0)

	req := domain.AnalysisRequest{
		Scheduled:            domain.NewMinuteOfDay(16, 45),
		WindowMinutes:        -1,
		NuisanceThreshold:    15,
		SignificantThreshold: 45,
	}
	_, err := uc.AnalyzeFlight(context.Background(), "VY6612", req)

	require.Error(t, err)
	assert.True(t, domain.IsConfiguration(err))
	assert.False(t, source.gotCtx, "fetch must not run for a misconfigured request")
}
