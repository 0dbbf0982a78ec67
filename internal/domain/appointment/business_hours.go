package appointment

import (
	"time"
)

// BusinessHours is the daily opening window, as "15:04" strings in the
// salon's timezone.
type BusinessHours struct {
	Open  string
	Close string
}

// Window resolves the opening window for the calendar day of date, in loc.
func (bh BusinessHours) Window(date time.Time, loc *time.Location) (time.Time, time.Time, error) {
	d := date.In(loc)

	parseHM := func(hm string) (time.Time, error) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(
			d.Year(), d.Month(), d.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), nil
	}

	open, err := parseHM(bh.Open)
	if err != nil {
		return time.Time{}, time.Time{}, InvalidInput("invalid_business_hours")
	}
	closeAt, err := parseHM(bh.Close)
	if err != nil {
		return time.Time{}, time.Time{}, InvalidInput("invalid_business_hours")
	}
	if !closeAt.After(open) {
		return time.Time{}, time.Time{}, InvalidInput("invalid_business_hours")
	}

	return open, closeAt, nil
}
