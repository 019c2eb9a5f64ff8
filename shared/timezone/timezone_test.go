package timezone_test

import (
	"testing"
	"time"

	"villa/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	require.NotNil(t, timezone.Location())
	assert.Equal(t, timezone.Location(), timezone.Now().Location())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Equal(t, today, today.Truncate(24*time.Hour))

	now := timezone.Now()
	assert.Equal(t, now.Day(), today.Day())
	assert.Equal(t, now.Month(), today.Month())
}

func TestDayOf(t *testing.T) {
	loc := timezone.Location()

	lateEvening := time.Date(2025, time.March, 15, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), timezone.DayOf(lateEvening))

	earlyMorning := time.Date(2025, time.March, 16, 0, 15, 0, 0, loc)
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), timezone.DayOf(earlyMorning))
}
