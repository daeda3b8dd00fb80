// Package integration provides helpers and integration tests for the tail
// risk analysis system. Integration tests verify that components work
// together correctly, including HTTP handlers, use cases, and mock
// history sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/tailrisk/flight-tail-risk-engine/internal/adapter/http"
	"github.com/tailrisk/flight-tail-risk-engine/internal/adapter/http/middleware"
	"github.com/tailrisk/flight-tail-risk-engine/internal/adapter/http/response"
	"github.com/tailrisk/flight-tail-risk-engine/internal/config"
	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
	"github.com/tailrisk/flight-tail-risk-engine/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.AnalysisHandler
}

// DefaultAnalysisConfig returns the analysis defaults used by the test server.
func DefaultAnalysisConfig() config.AnalysisConfig {
	return config.AnalysisConfig{
		WindowMinutes:        180,
		NuisanceThreshold:    15,
		SignificantThreshold: 45,
		ReferenceTimezone:    "UTC",
	}
}

// NewTestServer creates a test server wired to the given history source.
func NewTestServer(source domain.HistorySource) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, zerolog.Nop())

	engine := usecase.NewTailRiskUseCase()
	flights := usecase.NewFlightAnalysisUseCase(source, engine, time.Second)

	handler := httpAdapter.NewAnalysisHandler(engine, flights, source.Name(), DefaultAnalysisConfig(), time.UTC)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// AnalyzeFlight posts a flight analysis request.
func (ts *TestServer) AnalyzeFlight(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/analysis/flight",
		Body:   body,
	})
}

// AnalyzeCSV posts a CSV analysis request.
func (ts *TestServer) AnalyzeCSV(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/analysis/csv",
		Body:   body,
	})
}

// Health makes a health check request.
func (ts *TestServer) Health() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseAnalysis parses the response body as an analysis response DTO.
func (r *Response) ParseAnalysis() (*httpAdapter.AnalysisResponseDTO, error) {
	var dto httpAdapter.AnalysisResponseDTO
	if err := json.Unmarshal(r.Body, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// FlightRequestBody is a helper struct for building flight analysis
// request bodies.
type FlightRequestBody struct {
	Flight               string `json:"flight"`
	ScheduledTime        string `json:"scheduled_time"`
	DeadlineTime         string `json:"deadline_time,omitempty"`
	WindowMinutes        int    `json:"window_minutes,omitempty"`
	NuisanceThreshold    int    `json:"nuisance_threshold,omitempty"`
	SignificantThreshold int    `json:"significant_threshold,omitempty"`
}

// CSVRequestBody is a helper struct for building CSV analysis request bodies.
type CSVRequestBody struct {
	CSVContent           string `json:"csv_content"`
	ScheduledTime        string `json:"scheduled_time"`
	DeadlineTime         string `json:"deadline_time,omitempty"`
	WindowMinutes        int    `json:"window_minutes,omitempty"`
	NuisanceThreshold    int    `json:"nuisance_threshold,omitempty"`
	SignificantThreshold int    `json:"significant_threshold,omitempty"`
}

// DefaultFlightRequest returns a valid flight analysis request body.
func DefaultFlightRequest() FlightRequestBody {
	return FlightRequestBody{
		Flight:        "VY8433",
		ScheduledTime: "08:30",
		DeadlineTime:  "10:00",
	}
}
