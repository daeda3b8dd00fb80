package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailrisk/flight-tail-risk-engine/internal/domain"
)

func TestPtr(t *testing.T) {
	v := Ptr(42)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	s := Ptr("x")
	assert.Equal(t, "x", *s)
}

func TestMinuteHelpers(t *testing.T) {
	assert.Equal(t, domain.MinuteOfDay(510), Minute(8, 30))

	p := MinutePtr(23, 59)
	require.NotNil(t, p)
	assert.Equal(t, domain.MinuteOfDay(1439), *p)
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2025-11-21")
	assert.Equal(t, time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC), parsed)
}

func TestRecordBuilders(t *testing.T) {
	arrived := ArrivedRecord(Minute(8, 30), Minute(8, 45))
	require.NotNil(t, arrived.Scheduled)
	require.NotNil(t, arrived.Actual)
	assert.False(t, arrived.Cancelled)

	cancelled := CancelledRecord(Minute(8, 30))
	require.NotNil(t, cancelled.Scheduled)
	assert.Nil(t, cancelled.Actual)
	assert.True(t, cancelled.Cancelled)
}
