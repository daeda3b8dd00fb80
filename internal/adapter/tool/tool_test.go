package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailrisk/flight-tail-risk-engine/internal/config"
	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
	"github.com/tailrisk/flight-tail-risk-engine/internal/usecase"
)

const toolCSV = `Date,Origin,Destination,Aircraft,Departure,Arrival,Duration
21-Nov-25,BCN,ORY,A320,07:10AM,08:34AM,1h 24m
20-Nov-25,BCN,ORY,A320,06:55AM,08:08AM,1h 13m
19-Nov-25,BCN,ORY,A320,07:20AM,08:45AM,1h 25m
18-Nov-25,BCN,ORY,A320,,,Cancelled
17-Nov-25,BCN,ORY,A20N,07:05AM,08:30AM,1h 25m
`

func newRunner() *Runner {
	return NewRunner(
		usecase.NewTailRiskUseCase(),
		config.AnalysisConfig{
			WindowMinutes:        180,
			NuisanceThreshold:    15,
			SignificantThreshold: 45,
		},
		time.UTC,
		zerolog.Nop(),
	)
}

// run executes one request and decodes the envelope.
func run(t *testing.T, input string) Envelope {
	t.Helper()

	var out bytes.Buffer
	require.NoError(t, newRunner().Run(context.Background(), strings.NewReader(input), &out))

	var env Envelope
	require.NoError(t, json.Unmarshal(out.Bytes(), &env))
	return env
}

func TestRun(t *testing.T) {
	body, err := json.Marshal(Request{
		CSVContent:    toolCSV,
		ScheduledTime: "08:30",
		DeadlineTime:  "10:00",
	})
	require.NoError(t, err)

	env := run(t, string(body))

	require.True(t, env.OK, "expected success, got %+v", env.Error)
	require.NotNil(t, env.Result)
	assert.Nil(t, env.Error)

	assert.Equal(t, 5, env.Result.FlightsConsidered)
	assert.Equal(t, 5, env.Result.WindowMatches)
	assert.InDelta(t, 0.2, env.Result.CancellationRate, 1e-9)
	require.NotNil(t, env.Result.DeadlineMissProbability)
	assert.InDelta(t, 0.2, *env.Result.DeadlineMissProbability, 1e-9)
	assert.True(t, env.Result.HighRisk)
	assert.Equal(t, 1, env.Result.Categories[domain.CategoryCancelled])
	assert.Equal(t, 1, env.Result.Categories[domain.CategoryNuisance])
	assert.Equal(t, 3, env.Result.Categories[domain.CategoryOnTime])
}

func TestRun_TwelveHourClockInput(t *testing.T) {
	env := run(t, `{"csv_content": "Date,Departure,Arrival\n21-Nov-25,09:40PM,10:05PM\n20-Nov-25,09:45PM,10:20PM\n", "scheduled_time": "10:00 PM"}`)

	require.True(t, env.OK)
	assert.Equal(t, 2, env.Result.WindowMatches)
}

func TestRun_OptionsOverrideDefaults(t *testing.T) {
	body, err := json.Marshal(Request{
		CSVContent:    toolCSV,
		ScheduledTime: "08:30",
		Options: &Options{
			WindowMinutes: 10,
		},
	})
	require.NoError(t, err)

	env := run(t, string(body))

	require.True(t, env.OK)
	// Only 08:34, 08:30 within 10 minutes, plus the timeless cancellation.
	assert.Equal(t, 3, env.Result.WindowMatches)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{
			name:     "malformed JSON",
			input:    `{not json`,
			wantCode: CodeInvalidRequest,
		},
		{
			name:     "missing csv content",
			input:    `{"scheduled_time": "08:30"}`,
			wantCode: CodeInvalidRequest,
		},
		{
			name:     "missing scheduled time",
			input:    `{"csv_content": "Date,Departure,Arrival\n"}`,
			wantCode: CodeInvalidRequest,
		},
		{
			name:     "unparseable scheduled time",
			input:    `{"csv_content": "Date,Departure,Arrival\n21-Nov-25,07:10AM,08:34AM\n", "scheduled_time": "whenever"}`,
			wantCode: CodeInvalidRequest,
		},
		{
			name:     "no usable records",
			input:    `{"csv_content": "Date,Departure,Arrival\nbad,row,here\n", "scheduled_time": "08:30"}`,
			wantCode: CodeInsufficientData,
		},
		{
			name:     "empty window",
			input:    `{"csv_content": "Date,Departure,Arrival\n21-Nov-25,07:10AM,08:34AM\n", "scheduled_time": "20:30", "options": {"window_minutes": 30}}`,
			wantCode: CodeInsufficientData,
		},
		{
			name:     "inconsistent thresholds",
			input:    `{"csv_content": "Date,Departure,Arrival\n21-Nov-25,07:10AM,08:34AM\n", "scheduled_time": "08:30", "options": {"nuisance_threshold": 60, "significant_threshold": 45}}`,
			wantCode: CodeConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := run(t, tt.input)

			assert.False(t, env.OK)
			assert.Nil(t, env.Result)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestRun_OutputIsSingleJSONLine(t *testing.T) {
	var out bytes.Buffer
	input := `{"csv_content": "Date,Departure,Arrival\n21-Nov-25,07:10AM,08:34AM\n", "scheduled_time": "08:30"}`
	require.NoError(t, newRunner().Run(context.Background(), strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}
