package domain

import "fmt"

// Default analysis parameters, applied by SetDefaults.
const (
	// DefaultWindowMinutes is the default window half-width: records within
	// three hours of the target time are considered relevant.
	DefaultWindowMinutes = 180

	// DefaultNuisanceThreshold is the default lower delay band boundary.
	DefaultNuisanceThreshold = 15

	// DefaultSignificantThreshold is the default upper delay band boundary.
	DefaultSignificantThreshold = 45
)

// HighRiskProbability is the deadline-miss probability above which a result
// is flagged as high risk.
const HighRiskProbability = 0.15

// AnalysisRequest defines the parameters for one tail risk analysis.
type AnalysisRequest struct {
	// Scheduled is the caller's scheduled arrival time.
	Scheduled MinuteOfDay `json:"scheduled"`

	// Deadline is the caller's cutoff time, in the same minute-of-day frame
	// as Scheduled. A deadline numerically earlier than Scheduled is
	// interpreted as occurring on the next day (a single day-wrap, never
	// multiple). Nil when the caller has no deadline.
	Deadline *MinuteOfDay `json:"deadline,omitempty"`

	// WindowMinutes is the window half-width in minutes (default 180).
	WindowMinutes int `json:"windowMinutes"`

	// NuisanceThreshold is the delay in minutes at which a flight stops
	// being on time (default 15).
	NuisanceThreshold int `json:"nuisanceThreshold"`

	// SignificantThreshold is the delay in minutes at which a delay becomes
	// significant (default 45). Must be greater than NuisanceThreshold.
	SignificantThreshold int `json:"significantThreshold"`
}

// SetDefaults applies default values to unset optional fields.
func (r *AnalysisRequest) SetDefaults() {
	if r.WindowMinutes == 0 {
		r.WindowMinutes = DefaultWindowMinutes
	}
	if r.NuisanceThreshold == 0 {
		r.NuisanceThreshold = DefaultNuisanceThreshold
	}
	if r.SignificantThreshold == 0 {
		r.SignificantThreshold = DefaultSignificantThreshold
	}
}

// Validate checks the request before any record processing begins.
// Returns a wrapped ErrConfiguration error if the request is malformed.
func (r *AnalysisRequest) Validate() error {
	if !r.Scheduled.IsValid() {
		return fmt.Errorf("%w: scheduled time %d is outside [0, 1439]", ErrConfiguration, int(r.Scheduled))
	}
	if r.Deadline != nil && !r.Deadline.IsValid() {
		return fmt.Errorf("%w: deadline %d is outside [0, 1439]", ErrConfiguration, int(*r.Deadline))
	}
	if r.WindowMinutes <= 0 {
		return fmt.Errorf("%w: window half-width must be positive, got %d", ErrConfiguration, r.WindowMinutes)
	}
	if r.NuisanceThreshold <= 0 {
		return fmt.Errorf("%w: nuisance threshold must be positive, got %d", ErrConfiguration, r.NuisanceThreshold)
	}
	if r.SignificantThreshold <= 0 {
		return fmt.Errorf("%w: significant threshold must be positive, got %d", ErrConfiguration, r.SignificantThreshold)
	}
	if r.NuisanceThreshold >= r.SignificantThreshold {
		return fmt.Errorf("%w: nuisance threshold (%d) must be less than significant threshold (%d)",
			ErrConfiguration, r.NuisanceThreshold, r.SignificantThreshold)
	}
	return nil
}

// DeadlineBuffer returns the number of minutes between the scheduled time
// and the deadline, applying the next-day interpretation when the deadline
// is numerically earlier than the scheduled time. The second return value
// is false when the request has no deadline.
func (r *AnalysisRequest) DeadlineBuffer() (int, bool) {
	if r.Deadline == nil {
		return 0, false
	}
	buffer := int(*r.Deadline) - int(r.Scheduled)
	if buffer < 0 {
		buffer += MinutesPerDay
	}
	return buffer, true
}
