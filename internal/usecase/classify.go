package usecase

import "github.com/tailrisk/flight-tail-risk-engine/internal/domain"

// ClassifyFlights derives the delay and risk category for each filtered
// record. Classification delegates to the ordered rule list in the domain
// package, so precedence is enforced in exactly one place.
func ClassifyFlights(records []domain.FlightRecord, req domain.AnalysisRequest) []domain.ClassifiedFlight {
	var bufferPtr *int
	if buffer, ok := req.DeadlineBuffer(); ok {
		bufferPtr = &buffer
	}

	classified := make([]domain.ClassifiedFlight, 0, len(records))
	for _, r := range records {
		cf := domain.ClassifiedFlight{Record: r}

		delay, hasDelay := recordDelay(r, req.Scheduled)
		if hasDelay {
			d := delay
			cf.Delay = &d
		}

		cf.Category = domain.Classify(domain.ClassificationInput{
			Cancelled:            r.Cancelled,
			Delay:                delay,
			DeadlineBuffer:       bufferPtr,
			NuisanceThreshold:    req.NuisanceThreshold,
			SignificantThreshold: req.SignificantThreshold,
		})

		classified = append(classified, cf)
	}

	return classified
}
