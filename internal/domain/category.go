package domain

// RiskCategory is one of the ordered delay-severity categories a flight is
// classified into.
type RiskCategory string

// Risk categories, in precedence order. A flight maps to exactly one
// category: the first whose rule matches.
const (
	// CategoryCancelled is a flight flagged cancelled.
	CategoryCancelled RiskCategory = "cancelled"

	// CategoryMissedDeadline is a flight that arrived after the caller's
	// deadline. It takes precedence over the threshold bands: a flight that
	// is late enough to be significant and past the deadline is reported
	// here, never double-counted.
	CategoryMissedDeadline RiskCategory = "missed_deadline"

	// CategorySignificant is a delay at or above the significant threshold.
	CategorySignificant RiskCategory = "significant"

	// CategoryNuisance is a delay at or above the nuisance threshold and
	// below the significant threshold.
	CategoryNuisance RiskCategory = "nuisance"

	// CategoryOnTime is a delay below the nuisance threshold. Early
	// arrivals are always on time, regardless of magnitude.
	CategoryOnTime RiskCategory = "on_time"
)

// Categories returns all risk categories in precedence order.
func Categories() []RiskCategory {
	return []RiskCategory{
		CategoryCancelled,
		CategoryMissedDeadline,
		CategorySignificant,
		CategoryNuisance,
		CategoryOnTime,
	}
}

// ClassificationInput is the derived state a classification rule sees for
// one flight.
type ClassificationInput struct {
	// Cancelled marks a cancelled flight. Delay is meaningless when set.
	Cancelled bool

	// Delay is the wrap-corrected delay in minutes, signed.
	Delay int

	// DeadlineBuffer is the minutes between the scheduled time and the
	// deadline. Nil when the request has no deadline.
	DeadlineBuffer *int

	// NuisanceThreshold is the lower band boundary in minutes.
	NuisanceThreshold int

	// SignificantThreshold is the upper band boundary in minutes.
	SignificantThreshold int
}

// ClassificationRule pairs a category with its predicate.
type ClassificationRule struct {
	// Category is assigned when Matches returns true.
	Category RiskCategory

	// Matches reports whether the flight belongs to this category.
	Matches func(ClassificationInput) bool
}

// ClassificationRules returns the ordered rule list. Rules are evaluated
// in sequence and the first match wins; the final rule always matches, so
// classification is total. The order is the precedence contract and must
// not be rearranged.
func ClassificationRules() []ClassificationRule {
	return []ClassificationRule{
		{
			Category: CategoryCancelled,
			Matches: func(in ClassificationInput) bool {
				return in.Cancelled
			},
		},
		{
			Category: CategoryMissedDeadline,
			Matches: func(in ClassificationInput) bool {
				// Arriving exactly at the deadline is not a miss.
				return in.DeadlineBuffer != nil && in.Delay > *in.DeadlineBuffer
			},
		},
		{
			Category: CategorySignificant,
			Matches: func(in ClassificationInput) bool {
				// Boundary is inclusive on the higher band.
				return in.Delay >= in.SignificantThreshold
			},
		},
		{
			Category: CategoryNuisance,
			Matches: func(in ClassificationInput) bool {
				return in.Delay >= in.NuisanceThreshold
			},
		},
		{
			Category: CategoryOnTime,
			Matches: func(ClassificationInput) bool {
				return true
			},
		},
	}
}

// Classify assigns the input to exactly one risk category by evaluating
// the ordered rule list.
func Classify(in ClassificationInput) RiskCategory {
	for _, rule := range ClassificationRules() {
		if rule.Matches(in) {
			return rule.Category
		}
	}
	// Unreachable: the last rule always matches.
	return CategoryOnTime
}
