// Package tool provides the programmatic invocation pathway: one JSON
// analysis request read from a stream, one JSON result envelope written
// back. It is the non-interactive twin of the HTTP adapter and drives the
// same pipeline.
package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/tailrisk/flight-tail-risk-engine/internal/adapter/source/csvhistory"
	"github.com/tailrisk/flight-tail-risk-engine/internal/config"
	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
	"github.com/tailrisk/flight-tail-risk-engine/internal/usecase"
)

// Request is the tool invocation payload.
type Request struct {
	// CSVContent is the raw CSV history export to analyze.
	CSVContent string `json:"csv_content"`

	// ScheduledTime is the scheduled arrival clock time ("08:30" or "10:15PM").
	ScheduledTime string `json:"scheduled_time"`

	// DeadlineTime is the optional cutoff clock time.
	DeadlineTime string `json:"deadline_time,omitempty"`

	// Options overrides the configured analysis defaults.
	Options *Options `json:"options,omitempty"`
}

// Options carries optional analysis parameter overrides.
type Options struct {
	WindowMinutes        int `json:"window_minutes,omitempty"`
	NuisanceThreshold    int `json:"nuisance_threshold,omitempty"`
	SignificantThreshold int `json:"significant_threshold,omitempty"`
}

// Envelope is the tool response. Exactly one of Result and Error is set.
type Envelope struct {
	OK     bool                   `json:"ok"`
	Result *domain.AnalysisResult `json:"result,omitempty"`
	Error  *ErrorPayload          `json:"error,omitempty"`
}

// ErrorPayload reports a failed invocation.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes reported in envelopes.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeConfiguration    = "configuration_error"
	CodeInsufficientData = "insufficient_data"
	CodeInternalError    = "internal_error"
)

// Runner executes tool requests against the analysis pipeline.
type Runner struct {
	engine    usecase.TailRiskUseCase
	defaults  config.AnalysisConfig
	reference *time.Location
	log       zerolog.Logger
}

// NewRunner creates a Runner. reference is the timezone CSV clock text is
// interpreted in.
func NewRunner(engine usecase.TailRiskUseCase, defaults config.AnalysisConfig, reference *time.Location, log zerolog.Logger) *Runner {
	return &Runner{
		engine:    engine,
		defaults:  defaults,
		reference: reference,
		log:       log,
	}
}

// Run reads one JSON request from in, analyzes it, and writes a JSON
// envelope to out. Analysis failures are reported inside the envelope;
// the returned error covers only stream-level failures.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	var req Request
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return r.write(out, failure(CodeInvalidRequest, fmt.Sprintf("decoding request: %v", err)))
	}

	result, err := r.analyze(ctx, req)
	if err != nil {
		r.log.Warn().Err(err).Msg("Tool analysis failed")
		return r.write(out, toEnvelope(err))
	}

	return r.write(out, &Envelope{OK: true, Result: result})
}

// analyze converts the request and runs the pipeline.
func (r *Runner) analyze(ctx context.Context, req Request) (*domain.AnalysisResult, error) {
	if req.CSVContent == "" {
		return nil, domain.WrapInvalidRequest("csv_content is required")
	}
	if req.ScheduledTime == "" {
		return nil, domain.WrapInvalidRequest("scheduled_time is required")
	}

	scheduled, err := domain.ClockText(req.ScheduledTime).Normalize(r.reference)
	if err != nil {
		return nil, err
	}

	analysisReq := domain.AnalysisRequest{
		Scheduled:            scheduled,
		WindowMinutes:        r.defaults.WindowMinutes,
		NuisanceThreshold:    r.defaults.NuisanceThreshold,
		SignificantThreshold: r.defaults.SignificantThreshold,
	}

	if req.DeadlineTime != "" {
		deadline, err := domain.ClockText(req.DeadlineTime).Normalize(r.reference)
		if err != nil {
			return nil, err
		}
		analysisReq.Deadline = &deadline
	}

	if req.Options != nil {
		if req.Options.WindowMinutes != 0 {
			analysisReq.WindowMinutes = req.Options.WindowMinutes
		}
		if req.Options.NuisanceThreshold != 0 {
			analysisReq.NuisanceThreshold = req.Options.NuisanceThreshold
		}
		if req.Options.SignificantThreshold != 0 {
			analysisReq.SignificantThreshold = req.Options.SignificantThreshold
		}
	}

	history, err := csvhistory.ParseString(req.CSVContent, r.reference)
	if err != nil {
		return nil, err
	}
	if len(history.Records) == 0 {
		return nil, fmt.Errorf("%w: no usable flight records in the CSV", domain.ErrInsufficientData)
	}

	return r.engine.Analyze(ctx, *history, analysisReq)
}

// write encodes an envelope onto the output stream.
func (r *Runner) write(out io.Writer, env *Envelope) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	return nil
}

// toEnvelope maps an analysis error to a failure envelope.
func toEnvelope(err error) *Envelope {
	switch {
	case domain.IsInsufficientData(err), errors.Is(err, domain.ErrNoHistory):
		return failure(CodeInsufficientData, err.Error())
	case domain.IsConfiguration(err):
		return failure(CodeConfiguration, err.Error())
	case domain.IsInvalidRequest(err), domain.IsParseError(err):
		return failure(CodeInvalidRequest, err.Error())
	default:
		return failure(CodeInternalError, err.Error())
	}
}

func failure(code, message string) *Envelope {
	return &Envelope{
		OK:    false,
		Error: &ErrorPayload{Code: code, Message: message},
	}
}
