package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/locker"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientID   uint
	EmployeeID uint
	ServiceID  uint

	Start  time.Time
	Status string

	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	guard bookingGuard
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	lk locker.Locker,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		guard: newBookingGuard(repo, lk, log),
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	status, err := validateRefs(in.ClientID, in.EmployeeID, in.ServiceID, in.Start, in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Client and employee
	// --------------------------------------------------
	if err := uc.guard.requireClient(ctx, in.ClientID); err != nil {
		return nil, err
	}
	if err := uc.guard.requireEmployee(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Interval from service duration
	// --------------------------------------------------
	candidate, err := uc.guard.candidate(ctx, in.ServiceID, in.Start)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:   in.ClientID,
		EmployeeID: in.EmployeeID,
		ServiceID:  in.ServiceID,
		StartTime:  candidate.Start,
		Status:     string(status),

		DurationMin: bookedMinutes(candidate),
	}

	insert := func(ctx context.Context) error {
		return uc.repo.InsertAppointment(ctx, ap)
	}

	// --------------------------------------------------
	// 4. Conflict scan + insert
	// --------------------------------------------------
	if status.IsCancelled() {
		err = insert(ctx)
	} else {
		err = uc.guard.withinSlot(ctx, in.EmployeeID, candidate, nil, insert)
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "appointment_created",
		Entity:   "turno",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"empleado_id": ap.EmployeeID,
			"fecha_hora":  ap.StartTime,
			"fin":         candidate.End,
		},
	})

	return ap, nil
}

// validateRefs checks the well-formedness of a booking request and resolves
// its status.
func validateRefs(
	clientID, employeeID, serviceID uint,
	start time.Time,
	rawStatus string,
) (domain.Status, error) {

	switch {
	case clientID == 0:
		return "", domain.InvalidInput("invalid_client_id")
	case employeeID == 0:
		return "", domain.InvalidInput("invalid_employee_id")
	case serviceID == 0:
		return "", domain.InvalidInput("invalid_service_id")
	case start.IsZero():
		return "", domain.InvalidInput("invalid_start")
	}
	return domain.ParseStatus(rawStatus)
}
