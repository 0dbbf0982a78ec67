package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, start time.Time, minutes int) Interval {
	t.Helper()
	iv, err := NewInterval(start, minutes)
	require.NoError(t, err)
	return iv
}

func TestNewInterval_DerivesEndFromDuration(t *testing.T) {
	iv := mustInterval(t, at(10, 0), 30)

	assert.True(t, iv.Start.Equal(at(10, 0)))
	assert.True(t, iv.End.Equal(at(10, 30)))
	assert.Equal(t, 30*time.Minute, iv.Duration())
}

func TestNewInterval_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	start := time.Date(2026, 3, 10, 7, 0, 0, 0, loc)

	iv := mustInterval(t, start, 45)

	assert.Equal(t, time.UTC, iv.Start.Location())
	assert.True(t, iv.Start.Equal(at(10, 0)))
}

func TestNewInterval_RejectsNonPositiveDuration(t *testing.T) {
	for _, minutes := range []int{0, -15} {
		_, err := NewInterval(at(10, 0), minutes)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDuration))
		assert.Equal(t, KindInvalidInput, KindOf(err))
	}
}

func TestOverlaps(t *testing.T) {
	base := mustInterval(t, at(10, 0), 30)

	cases := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"partial overlap at end", mustInterval(t, at(10, 15), 30), true},
		{"partial overlap at start", mustInterval(t, at(9, 45), 30), true},
		{"identical", mustInterval(t, at(10, 0), 30), true},
		{"contained", mustInterval(t, at(10, 5), 10), true},
		{"containing", mustInterval(t, at(9, 0), 180), true},
		{"back to back after", mustInterval(t, at(10, 30), 30), false},
		{"back to back before", mustInterval(t, at(9, 30), 30), false},
		{"disjoint", mustInterval(t, at(12, 0), 30), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(base, tc.other))
			// symmetry
			assert.Equal(t, Overlaps(base, tc.other), Overlaps(tc.other, base))
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
		})
	}
}

func TestOverlaps_BoundaryNeverOverlaps(t *testing.T) {
	for minutes := 1; minutes <= 120; minutes += 17 {
		a := mustInterval(t, at(8, 0), minutes)
		b := mustInterval(t, a.End, 30)
		assert.False(t, Overlaps(a, b), "duration %d", minutes)
		assert.False(t, Overlaps(b, a), "duration %d", minutes)
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	s, err = ParseStatus("cancelado")
	require.NoError(t, err)
	assert.True(t, s.IsCancelled())

	_, err = ParseStatus("finalizado")
	require.Error(t, err)
	assert.Equal(t, "invalid_status", CodeOf(err))
}

func TestBusinessHoursWindow(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	bh := BusinessHours{Open: "09:00", Close: "18:30"}

	open, closeAt, err := bh.Window(time.Date(2026, 3, 10, 15, 0, 0, 0, loc), loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, loc), open)
	assert.Equal(t, time.Date(2026, 3, 10, 18, 30, 0, 0, loc), closeAt)

	_, _, err = BusinessHours{Open: "18:00", Close: "09:00"}.Window(open, loc)
	assert.Equal(t, KindInvalidInput, KindOf(err))

	_, _, err = BusinessHours{Open: "9am", Close: "18:00"}.Window(open, loc)
	assert.Equal(t, "invalid_business_hours", CodeOf(err))
}
