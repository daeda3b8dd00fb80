package http

import (
	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// AnalysisResponseDTO is the data transfer object for analysis responses.
// It matches the expected API output format with snake_case fields.
type AnalysisResponseDTO struct {
	Source     string            `json:"source"`
	Parameters ParametersDTO     `json:"parameters"`
	Summary    SummaryDTO        `json:"summary"`
	Categories CategoryCountsDTO `json:"categories"`
	Delays     []int             `json:"delay_minutes"`
	Route      RouteDTO          `json:"route"`
}

// ParametersDTO echoes the effective analysis parameters after defaults
// were applied, so the caller can see what was actually computed.
type ParametersDTO struct {
	ScheduledTime        string `json:"scheduled_time"`
	DeadlineTime         string `json:"deadline_time,omitempty"`
	WindowMinutes        int    `json:"window_minutes"`
	NuisanceThreshold    int    `json:"nuisance_threshold"`
	SignificantThreshold int    `json:"significant_threshold"`
}

// SummaryDTO carries the aggregated statistics.
type SummaryDTO struct {
	FlightsConsidered       int      `json:"flights_considered"`
	WindowMatches           int      `json:"window_matches"`
	MissingTimeRecords      int      `json:"missing_time_records"`
	SkippedRecords          int      `json:"skipped_records"`
	CancellationRate        float64  `json:"cancellation_rate"`
	MeanDelayMinutes        *float64 `json:"mean_delay_minutes,omitempty"`
	P90DelayMinutes         *float64 `json:"p90_delay_minutes,omitempty"`
	DeadlineMissProbability *float64 `json:"deadline_miss_probability,omitempty"`
	HighRisk                bool     `json:"high_risk"`
}

// CategoryCountsDTO carries the per-category counts with stable field
// names, rather than a map whose key set the client would have to know.
type CategoryCountsDTO struct {
	Cancelled      int `json:"cancelled"`
	MissedDeadline int `json:"missed_deadline"`
	Significant    int `json:"significant"`
	Nuisance       int `json:"nuisance"`
	OnTime         int `json:"on_time"`
}

// RouteDTO describes the analyzed route.
type RouteDTO struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	Aircraft    string `json:"aircraft,omitempty"`
}

// ToAnalysisResponseDTO converts a domain analysis result to the response
// DTO, echoing the effective request parameters and the source that
// produced the history.
func ToAnalysisResponseDTO(result *domain.AnalysisResult, req domain.AnalysisRequest, source string) *AnalysisResponseDTO {
	if result == nil {
		return nil
	}

	dto := &AnalysisResponseDTO{
		Source: source,
		Parameters: ParametersDTO{
			ScheduledTime:        req.Scheduled.String(),
			WindowMinutes:        req.WindowMinutes,
			NuisanceThreshold:    req.NuisanceThreshold,
			SignificantThreshold: req.SignificantThreshold,
		},
		Summary: SummaryDTO{
			FlightsConsidered:       result.FlightsConsidered,
			WindowMatches:           result.WindowMatches,
			MissingTimeRecords:      result.MissingTime,
			SkippedRecords:          result.SkippedRecords,
			CancellationRate:        result.CancellationRate,
			MeanDelayMinutes:        result.MeanDelay,
			P90DelayMinutes:         result.P90Delay,
			DeadlineMissProbability: result.DeadlineMissProbability,
			HighRisk:                result.HighRisk,
		},
		Categories: CategoryCountsDTO{
			Cancelled:      result.Categories[domain.CategoryCancelled],
			MissedDeadline: result.Categories[domain.CategoryMissedDeadline],
			Significant:    result.Categories[domain.CategorySignificant],
			Nuisance:       result.Categories[domain.CategoryNuisance],
			OnTime:         result.Categories[domain.CategoryOnTime],
		},
		Delays: result.Delays,
		Route: RouteDTO{
			Origin:      result.Route.Origin,
			Destination: result.Route.Destination,
			Aircraft:    result.Route.Aircraft,
		},
	}

	if req.Deadline != nil {
		dto.Parameters.DeadlineTime = req.Deadline.String()
	}
	if dto.Delays == nil {
		dto.Delays = []int{}
	}

	return dto
}
