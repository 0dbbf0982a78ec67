package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))

	loc := Location("Mars/Olympus")
	require.NotNil(t, loc)

	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestCalendarBoundaries(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	// Thursday
	ts := time.Date(2026, 3, 12, 15, 42, 10, 0, loc)

	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, loc), StartOfDay(ts))
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), StartOfWeek(ts))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), StartOfMonth(ts))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, loc), StartOfYear(ts))

	sunday := time.Date(2026, 3, 15, 23, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), StartOfWeek(sunday))

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	assert.Equal(t, monday, StartOfWeek(monday))
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)

	d, err := ParseDate("2026-03-10", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), d)

	_, err = ParseDate("10/03/2026", loc)
	assert.Error(t, err)
}

func TestWallClock(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	raw := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	got := WallClock(raw, loc)

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.True(t, got.Equal(time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)))
}
