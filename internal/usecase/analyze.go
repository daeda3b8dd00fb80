package usecase

import (
	"context"
	"time"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// DefaultFetchTimeout bounds a single history fetch when the caller did
// not configure one.
const DefaultFetchTimeout = 10 * time.Second

// TailRiskUseCase is the single synchronous analysis operation: a fully
// materialized record set plus a request in, a summary result out. The
// pipeline holds no state across invocations.
type TailRiskUseCase interface {
	// Analyze runs the normalization-window-delay-classify-aggregate
	// pipeline over the history for the given request.
	Analyze(ctx context.Context, history domain.History, req domain.AnalysisRequest) (*domain.AnalysisResult, error)
}

// tailRiskUseCase implements TailRiskUseCase.
type tailRiskUseCase struct{}

// NewTailRiskUseCase creates the analysis pipeline.
func NewTailRiskUseCase() TailRiskUseCase {
	return &tailRiskUseCase{}
}

// Analyze implements TailRiskUseCase. Malformed requests are fatal to the
// invocation and rejected before any record is touched.
func (uc *tailRiskUseCase) Analyze(_ context.Context, history domain.History, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	matched, missingTime := FilterWindow(history.Records, req.Scheduled, req.WindowMinutes)
	classified := ClassifyFlights(matched, req)

	return Aggregate(classified, len(history.Records), history.Skipped, missingTime, req)
}

// FlightAnalysisUseCase fetches a flight's history from a source and runs
// the analysis pipeline over it.
type FlightAnalysisUseCase interface {
	// AnalyzeFlight fetches the history for ident and analyzes it.
	AnalyzeFlight(ctx context.Context, ident string, req domain.AnalysisRequest) (*domain.AnalysisResult, error)
}

// flightAnalysisUseCase implements FlightAnalysisUseCase.
type flightAnalysisUseCase struct {
	source       domain.HistorySource
	engine       TailRiskUseCase
	fetchTimeout time.Duration
}

// NewFlightAnalysisUseCase creates a FlightAnalysisUseCase backed by the
// given source. A non-positive fetchTimeout falls back to
// DefaultFetchTimeout.
func NewFlightAnalysisUseCase(source domain.HistorySource, engine TailRiskUseCase, fetchTimeout time.Duration) FlightAnalysisUseCase {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &flightAnalysisUseCase{
		source:       source,
		engine:       engine,
		fetchTimeout: fetchTimeout,
	}
}

// AnalyzeFlight implements FlightAnalysisUseCase. The request is validated
// before the fetch so a misconfigured request never costs an API call.
func (uc *flightAnalysisUseCase) AnalyzeFlight(ctx context.Context, ident string, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()

	history, err := uc.source.Fetch(ctx, ident)
	if err != nil {
		return nil, err
	}
	if len(history.Records) == 0 {
		return nil, domain.ErrNoHistory
	}

	return uc.engine.Analyze(ctx, *history, req)
}

// Compile-time interface checks.
var (
	_ TailRiskUseCase       = (*tailRiskUseCase)(nil)
	_ FlightAnalysisUseCase = (*flightAnalysisUseCase)(nil)
)
