package domain

// ClassifiedFlight is a flight record with its derived delay and risk
// category. It is produced by the pipeline's classification stage and
// consumed only by the aggregator; it is not retained.
type ClassifiedFlight struct {
	// Record is the underlying flight record.
	Record FlightRecord

	// Delay is the wrap-corrected delay in minutes, signed. Nil for
	// cancelled flights, whose delay is undefined rather than zero.
	Delay *int

	// Category is the assigned risk category.
	Category RiskCategory
}

// AnalysisResult is the summary produced by one analysis. All rate and
// probability fields are fractions in [0, 1]; rendering as percentages is
// a presentation concern. The struct is plain data so both a UI renderer
// and a text tool can serialize it without engine involvement.
type AnalysisResult struct {
	// FlightsConsidered is the number of records handed to the pipeline.
	FlightsConsidered int `json:"flights_considered"`

	// WindowMatches is the number of records within the analysis window.
	WindowMatches int `json:"window_matches"`

	// MissingTime is the number of records excluded from the window filter
	// because they carried no usable time value.
	MissingTime int `json:"missing_time_records"`

	// SkippedRecords is the number of raw records the source could not
	// normalize, surfaced from ingestion.
	SkippedRecords int `json:"skipped_records"`

	// Categories maps each risk category to its count within the window.
	// All five categories are always present, zero-valued when empty, and
	// the counts sum to WindowMatches.
	Categories map[RiskCategory]int `json:"categories"`

	// CancellationRate is cancelled flights over WindowMatches.
	CancellationRate float64 `json:"cancellation_rate"`

	// MeanDelay is the mean delay in minutes over non-cancelled flights.
	// Nil when fewer than two non-cancelled flights matched.
	MeanDelay *float64 `json:"mean_delay_minutes,omitempty"`

	// P90Delay is the 90th-percentile delay in minutes over non-cancelled
	// flights, computed with linear interpolation between order statistics.
	// Nil when fewer than two non-cancelled flights matched.
	P90Delay *float64 `json:"p90_delay_minutes,omitempty"`

	// DeadlineMissProbability is the fraction of matched flights that were
	// either cancelled or arrived after the deadline. Nil when the request
	// carried no deadline.
	DeadlineMissProbability *float64 `json:"deadline_miss_probability,omitempty"`

	// HighRisk is set when DeadlineMissProbability exceeds
	// HighRiskProbability.
	HighRisk bool `json:"high_risk"`

	// Delays is the delay sample in minutes over non-cancelled matched
	// flights, in input order.
	Delays []int `json:"delay_minutes"`

	// Route describes the analyzed route.
	Route RouteMeta `json:"route"`
}

// RouteMeta identifies the route the matched sample describes. Values are
// the most frequent ones observed in the sample.
type RouteMeta struct {
	// Origin is the modal origin airport code.
	Origin string `json:"origin,omitempty"`

	// Destination is the modal destination airport code.
	Destination string `json:"destination,omitempty"`

	// Aircraft is the modal aircraft type.
	Aircraft string `json:"aircraft,omitempty"`
}
