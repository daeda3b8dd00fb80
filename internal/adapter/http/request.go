// Package http provides the HTTP handler layer for the tail risk analysis
// API. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"regexp"
	"strings"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// AnalysisParamsDTO carries the analysis parameters shared by both
// analysis endpoints. Zero-valued overrides fall back to the configured
// defaults.
type AnalysisParamsDTO struct {
	// ScheduledTime is the caller's scheduled arrival time. Accepts 24-hour
	// "HH:MM" or 12-hour "HH:MMAM" clock text.
	ScheduledTime string `json:"scheduled_time"`

	// DeadlineTime is the caller's cutoff time, in the same formats as
	// ScheduledTime. A deadline clock earlier than the scheduled clock is
	// interpreted as next-day. Optional.
	DeadlineTime string `json:"deadline_time,omitempty"`

	// WindowMinutes overrides the window half-width (optional).
	WindowMinutes int `json:"window_minutes,omitempty"`

	// NuisanceThreshold overrides the lower delay band boundary (optional).
	NuisanceThreshold int `json:"nuisance_threshold,omitempty"`

	// SignificantThreshold overrides the upper delay band boundary (optional).
	SignificantThreshold int `json:"significant_threshold,omitempty"`
}

// AnalyzeFlightRequest is the request body for flight history analysis.
type AnalyzeFlightRequest struct {
	// Flight is the flight identifier to fetch history for (e.g., "VY8433").
	Flight string `json:"flight"`

	AnalysisParamsDTO
}

// AnalyzeCSVRequest is the request body for CSV history analysis.
type AnalyzeCSVRequest struct {
	// CSVContent is the raw CSV history export.
	CSVContent string `json:"csv_content"`

	AnalysisParamsDTO
}

// flightIdentPattern matches airline flight identifiers like "VY8433".
var flightIdentPattern = regexp.MustCompile(`^[A-Z0-9]{2,8}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the flight analysis request.
func (r *AnalyzeFlightRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateFlight(errs)
	r.AnalysisParamsDTO.validate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *AnalyzeFlightRequest) validateFlight(errs *ValidationErrors) {
	if r.Flight == "" {
		errs.Add("flight", "flight is required")
		return
	}

	ident := strings.ToUpper(strings.TrimSpace(r.Flight))
	if !flightIdentPattern.MatchString(ident) {
		errs.Add("flight", "flight must be an airline flight identifier, e.g. VY8433")
		return
	}
	r.Flight = ident // Normalize to uppercase
}

// Validate validates the CSV analysis request.
func (r *AnalyzeCSVRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.CSVContent) == "" {
		errs.Add("csv_content", "csv_content is required")
	}
	r.AnalysisParamsDTO.validate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validate checks the shared analysis parameters.
func (p *AnalysisParamsDTO) validate(errs *ValidationErrors) {
	if p.ScheduledTime == "" {
		errs.Add("scheduled_time", "scheduled_time is required")
	} else if !isValidClockText(p.ScheduledTime) {
		errs.Add("scheduled_time", "scheduled_time must be a clock time like 08:30 or 10:15PM")
	}

	if p.DeadlineTime != "" && !isValidClockText(p.DeadlineTime) {
		errs.Add("deadline_time", "deadline_time must be a clock time like 08:30 or 10:15PM")
	}

	if p.WindowMinutes < 0 {
		errs.Add("window_minutes", "window_minutes must be a positive number")
	}
	if p.NuisanceThreshold < 0 {
		errs.Add("nuisance_threshold", "nuisance_threshold must be a positive number")
	}
	if p.SignificantThreshold < 0 {
		errs.Add("significant_threshold", "significant_threshold must be a positive number")
	}
	if p.NuisanceThreshold > 0 && p.SignificantThreshold > 0 &&
		p.NuisanceThreshold >= p.SignificantThreshold {
		errs.Add("significant_threshold", "significant_threshold must be greater than nuisance_threshold")
	}
}

// isValidClockText reports whether a string parses as a clock time in any
// of the accepted formats.
func isValidClockText(s string) bool {
	_, err := domain.ClockText(s).Normalize(nil)
	return err == nil
}
