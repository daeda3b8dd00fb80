// Package http provides the HTTP handler layer for the tail risk analysis API.
package http

import (
	"github.com/tailrisk/flight-tail-risk-engine/internal/config"
	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// ToAnalysisRequest converts request parameters into a domain analysis
// request, filling unset overrides from the configured defaults. Clock
// fields were already validated, so parse failures here indicate a bug in
// validation and surface as errors rather than panics.
func ToAnalysisRequest(p AnalysisParamsDTO, defaults config.AnalysisConfig) (domain.AnalysisRequest, error) {
	scheduled, err := domain.ClockText(p.ScheduledTime).Normalize(nil)
	if err != nil {
		return domain.AnalysisRequest{}, err
	}

	req := domain.AnalysisRequest{
		Scheduled:            scheduled,
		WindowMinutes:        p.WindowMinutes,
		NuisanceThreshold:    p.NuisanceThreshold,
		SignificantThreshold: p.SignificantThreshold,
	}

	if p.DeadlineTime != "" {
		deadline, err := domain.ClockText(p.DeadlineTime).Normalize(nil)
		if err != nil {
			return domain.AnalysisRequest{}, err
		}
		req.Deadline = &deadline
	}

	if req.WindowMinutes == 0 {
		req.WindowMinutes = defaults.WindowMinutes
	}
	if req.NuisanceThreshold == 0 {
		req.NuisanceThreshold = defaults.NuisanceThreshold
	}
	if req.SignificantThreshold == 0 {
		req.SignificantThreshold = defaults.SignificantThreshold
	}

	return req, nil
}
