package appointment

import "time"

// Interval is a half-open booked range [Start, End), always in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, ErrInvalidDuration
	}

	s := start.UTC()
	return Interval{
		Start: s,
		End:   s.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// Overlaps reports whether a and b share any instant. Back-to-back intervals
// (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
