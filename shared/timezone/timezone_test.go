package timezone_test

import (
	"smartoffice/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load("UTC"))
	assert.Equal(t, time.Local, timezone.Load(""))
	assert.Equal(t, time.Local, timezone.Load("Not/AZone"))
}

func TestNowAndToday(t *testing.T) {
	now := timezone.Now()
	assert.False(t, now.IsZero())
	assert.Len(t, timezone.Today(), len("2006-01-02"))
	assert.NotNil(t, timezone.GetLocation())
}

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 30, 45, 0, timezone.GetLocation())

	assert.Equal(t, 630, timezone.MinuteOfDay(at))
	assert.Equal(t, "2024-05-01", timezone.DayOf(at))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 10, 0, 0, time.UTC)
	clock := timezone.FixedClock(at)

	assert.True(t, clock.Now().Equal(at))
}

func TestParseDay(t *testing.T) {
	day, err := timezone.ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, day.Day())

	_, err = timezone.ParseDay("2023-02-29")
	assert.Error(t, err)

	_, err = timezone.ParseDay("01/05/2024")
	assert.Error(t, err)
}
