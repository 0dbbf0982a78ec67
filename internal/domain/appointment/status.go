package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
)

// ParseStatus accepts the closed set of statuses. An empty value resolves to
// the initial status.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case "":
		return InitialStatus(), nil
	case StatusPending, StatusConfirmed, StatusCancelled:
		return s, nil
	default:
		return "", InvalidInput("invalid_status")
	}
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

func InitialStatus() Status {
	return StatusPending
}
