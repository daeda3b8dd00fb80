package usecase

import (
	"math"
	"sort"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

// delayPercentile is the high percentile reported alongside the mean.
const delayPercentile = 90

// minDelaySample is the smallest non-cancelled sample for which mean and
// percentile delay are defined.
const minDelaySample = 2

// Aggregate reduces the classified, filtered sample into summary
// statistics. considered and missingTime come from the stages before
// classification and are surfaced unchanged.
//
// Returns ErrInsufficientData when zero flights passed the window filter,
// so callers can tell "no data" apart from "0% risk".
func Aggregate(classified []domain.ClassifiedFlight, considered, skipped, missingTime int, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	n := len(classified)
	if n == 0 {
		return nil, domain.ErrInsufficientData
	}

	counts := make(map[domain.RiskCategory]int, len(domain.Categories()))
	for _, c := range domain.Categories() {
		counts[c] = 0
	}

	delays := make([]int, 0, n)
	for _, cf := range classified {
		counts[cf.Category]++
		if cf.Delay != nil {
			delays = append(delays, *cf.Delay)
		}
	}

	result := &domain.AnalysisResult{
		FlightsConsidered: considered,
		WindowMatches:     n,
		MissingTime:       missingTime,
		SkippedRecords:    skipped,
		Categories:        counts,
		CancellationRate:  float64(counts[domain.CategoryCancelled]) / float64(n),
		Delays:            delays,
		Route:             routeMeta(classified),
	}

	if len(delays) >= minDelaySample {
		mean := meanDelay(delays)
		p90 := percentile(delays, delayPercentile)
		result.MeanDelay = &mean
		result.P90Delay = &p90
	}

	if _, hasDeadline := req.DeadlineBuffer(); hasDeadline {
		missed := counts[domain.CategoryCancelled] + counts[domain.CategoryMissedDeadline]
		prob := float64(missed) / float64(n)
		result.DeadlineMissProbability = &prob
		result.HighRisk = prob > domain.HighRiskProbability
	}

	return result, nil
}

// meanDelay returns the arithmetic mean of the delay sample.
func meanDelay(delays []int) float64 {
	sum := 0
	for _, d := range delays {
		sum += d
	}
	return float64(sum) / float64(len(delays))
}

// percentile computes the p-th percentile of the sample using linear
// interpolation between order statistics. The input is not mutated.
func percentile(sample []int, p float64) float64 {
	sorted := make([]float64, len(sample))
	for i, v := range sample {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// routeMeta picks the most frequent origin, destination and aircraft from
// the matched sample. Ties break toward the value seen first.
func routeMeta(classified []domain.ClassifiedFlight) domain.RouteMeta {
	return domain.RouteMeta{
		Origin:      modalValue(classified, func(m domain.RecordMeta) string { return m.Origin }),
		Destination: modalValue(classified, func(m domain.RecordMeta) string { return m.Destination }),
		Aircraft:    modalValue(classified, func(m domain.RecordMeta) string { return m.Aircraft }),
	}
}

// modalValue returns the most frequent non-empty value of one metadata
// field across the sample.
func modalValue(classified []domain.ClassifiedFlight, field func(domain.RecordMeta) string) string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, cf := range classified {
		v := field(cf.Record.Meta)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
