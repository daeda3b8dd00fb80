package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func classificationInput(delay int, buffer *int) ClassificationInput {
	return ClassificationInput{
		Delay:                delay,
		DeadlineBuffer:       buffer,
		NuisanceThreshold:    15,
		SignificantThreshold: 45,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   ClassificationInput
		want RiskCategory
	}{
		{
			name: "cancelled takes precedence over everything",
			in: ClassificationInput{
				Cancelled:            true,
				Delay:                120,
				DeadlineBuffer:       intPtr(30),
				NuisanceThreshold:    15,
				SignificantThreshold: 45,
			},
			want: CategoryCancelled,
		},
		{
			name: "missed deadline beats significant",
			in:   classificationInput(100, intPtr(30)),
			want: CategoryMissedDeadline,
		},
		{
			name: "arriving exactly at the deadline is not a miss",
			in:   classificationInput(30, intPtr(30)),
			want: CategoryNuisance,
		},
		{
			name: "one minute past the deadline is a miss",
			in:   classificationInput(31, intPtr(30)),
			want: CategoryMissedDeadline,
		},
		{
			name: "significant without deadline",
			in:   classificationInput(100, nil),
			want: CategorySignificant,
		},
		{
			name: "exactly at significant threshold is significant",
			in:   classificationInput(45, intPtr(900)),
			want: CategorySignificant,
		},
		{
			name: "just under significant threshold is nuisance",
			in:   classificationInput(44, intPtr(900)),
			want: CategoryNuisance,
		},
		{
			name: "exactly at nuisance threshold is nuisance",
			in:   classificationInput(15, intPtr(900)),
			want: CategoryNuisance,
		},
		{
			name: "just under nuisance threshold is on time",
			in:   classificationInput(14, intPtr(900)),
			want: CategoryOnTime,
		},
		{
			name: "zero delay is on time",
			in:   classificationInput(0, intPtr(30)),
			want: CategoryOnTime,
		},
		{
			name: "very early arrival is still on time",
			in:   classificationInput(-300, intPtr(30)),
			want: CategoryOnTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_TotalPartition(t *testing.T) {
	// Every input maps to exactly one category: exactly one rule in the
	// ordered list is the first match, and the final rule always matches.
	buffers := []*int{nil, intPtr(0), intPtr(30), intPtr(975)}
	for _, buffer := range buffers {
		for delay := -720; delay <= 720; delay += 33 {
			in := classificationInput(delay, buffer)

			matched := 0
			for _, rule := range ClassificationRules() {
				if rule.Matches(in) {
					matched++
					break
				}
			}
			assert.Equal(t, 1, matched)
			assert.Contains(t, Categories(), Classify(in))
		}
	}
}

func TestClassificationRules_PrecedenceOrder(t *testing.T) {
	var got []RiskCategory
	for _, rule := range ClassificationRules() {
		got = append(got, rule.Category)
	}
	assert.Equal(t, Categories(), got)
}
