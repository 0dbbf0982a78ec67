package appointment

// Booking is the snapshot of an existing appointment the conflict scan needs.
type Booking struct {
	AppointmentID uint
	EmployeeID    uint
	Interval      Interval
	Status        Status
}

// FindConflict returns the id of the first booking in existing (input order)
// that belongs to employeeID, is not cancelled, is not exclude, and overlaps
// candidate.
func FindConflict(
	employeeID uint,
	candidate Interval,
	existing []Booking,
	exclude *uint,
) (uint, bool) {

	for _, b := range existing {
		if b.EmployeeID != employeeID {
			continue
		}
		if b.Status.IsCancelled() {
			continue
		}
		if exclude != nil && b.AppointmentID == *exclude {
			continue
		}
		if Overlaps(candidate, b.Interval) {
			return b.AppointmentID, true
		}
	}

	return 0, false
}
