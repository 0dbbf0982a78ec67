package appointment

import "time"

type TimeSlot struct {
	Start time.Time `json:"inicio"`
	End   time.Time `json:"fin"`
}

// FreeSlots walks [open, close) in steps of step and returns every slot of
// length durationMinutes that does not collide with a non-cancelled booking
// of employeeID. Slots starting before notBefore are skipped.
func FreeSlots(
	employeeID uint,
	open time.Time,
	closeAt time.Time,
	durationMinutes int,
	step time.Duration,
	existing []Booking,
	notBefore time.Time,
) ([]TimeSlot, error) {

	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if step <= 0 {
		step = time.Duration(durationMinutes) * time.Minute
	}

	slotDuration := time.Duration(durationMinutes) * time.Minute
	slots := []TimeSlot{}

	for cur := open; !cur.Add(slotDuration).After(closeAt); cur = cur.Add(step) {
		if cur.Before(notBefore) {
			continue
		}

		candidate, err := NewInterval(cur, durationMinutes)
		if err != nil {
			return nil, err
		}

		if _, taken := FindConflict(employeeID, candidate, existing, nil); taken {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: cur,
			End:   cur.Add(slotDuration),
		})
	}

	return slots, nil
}
