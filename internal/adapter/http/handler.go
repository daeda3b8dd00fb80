// Package http provides the HTTP handler layer for the tail risk analysis
// API. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tailrisk/flight-tail-risk-engine/internal/adapter/http/response"
	"github.com/tailrisk/flight-tail-risk-engine/internal/adapter/source/csvhistory"
	"github.com/tailrisk/flight-tail-risk-engine/internal/config"
	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
	"github.com/tailrisk/flight-tail-risk-engine/internal/usecase"
)

// AnalysisHandler handles HTTP requests for the analysis endpoints.
type AnalysisHandler struct {
	engine     usecase.TailRiskUseCase
	flights    usecase.FlightAnalysisUseCase
	sourceName string
	defaults   config.AnalysisConfig
	reference  *time.Location
}

// NewAnalysisHandler creates an AnalysisHandler. sourceName identifies the
// remote source backing the flight endpoint; reference is the timezone CSV
// clock text is interpreted in.
func NewAnalysisHandler(
	engine usecase.TailRiskUseCase,
	flights usecase.FlightAnalysisUseCase,
	sourceName string,
	defaults config.AnalysisConfig,
	reference *time.Location,
) *AnalysisHandler {
	return &AnalysisHandler{
		engine:     engine,
		flights:    flights,
		sourceName: sourceName,
		defaults:   defaults,
		reference:  reference,
	}
}

// AnalyzeFlight handles POST /api/v1/analysis/flight
//
// @Summary Analyze a flight's deadline risk
// @Description Fetch the flight's arrival history and estimate the probability of missing the deadline
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeFlightRequest true "Analysis parameters"
// @Success 200 {object} AnalysisResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Insufficient data"
// @Failure 503 {object} response.ErrorDetail "History source unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/analysis/flight [post]
func (h *AnalysisHandler) AnalyzeFlight(c echo.Context) error {
	var req AnalyzeFlightRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	analysisReq, err := ToAnalysisRequest(req.AnalysisParamsDTO, h.defaults)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.flights.AnalyzeFlight(c.Request().Context(), req.Flight, analysisReq)
	if err != nil {
		return h.handleError(c, err)
	}

	analysisReq.SetDefaults()
	return response.AnalysisResult(c, ToAnalysisResponseDTO(result, analysisReq, h.sourceName))
}

// AnalyzeCSV handles POST /api/v1/analysis/csv
//
// @Summary Analyze deadline risk from a CSV history export
// @Description Parse a CSV flight-history export and estimate the probability of missing the deadline
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeCSVRequest true "CSV content and analysis parameters"
// @Success 200 {object} AnalysisResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Insufficient data"
// @Router /api/v1/analysis/csv [post]
func (h *AnalysisHandler) AnalyzeCSV(c echo.Context) error {
	var req AnalyzeCSVRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	analysisReq, err := ToAnalysisRequest(req.AnalysisParamsDTO, h.defaults)
	if err != nil {
		return h.handleError(c, err)
	}

	history, err := csvhistory.ParseString(req.CSVContent, h.reference)
	if err != nil {
		return h.handleError(c, err)
	}
	if len(history.Records) == 0 {
		return response.InsufficientData(c, "no usable flight records in the CSV")
	}

	result, err := h.engine.Analyze(c.Request().Context(), *history, analysisReq)
	if err != nil {
		return h.handleError(c, err)
	}

	analysisReq.SetDefaults()
	return response.AnalysisResult(c, ToAnalysisResponseDTO(result, analysisReq, history.Meta.Source))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *AnalysisHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *AnalysisHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsInsufficientData(err):
		return response.InsufficientData(c, err.Error())

	case errors.Is(err, domain.ErrNoHistory):
		return response.InsufficientData(c, err.Error())

	case errors.Is(err, domain.ErrSourceUnavailable):
		return response.SourceUnavailable(c)

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case domain.IsConfiguration(err):
		return response.ConfigurationError(c, err.Error())

	case domain.IsInvalidRequest(err), domain.IsParseError(err):
		return response.BadRequest(c, err.Error())
	}

	// A SourceError without a recognized sentinel is still an upstream
	// failure, not a client one.
	var se *domain.SourceError
	if errors.As(err, &se) {
		return response.SourceUnavailable(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *AnalysisHandler) Health(c echo.Context) error {
	return response.Health(c)
}
