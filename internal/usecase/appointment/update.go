package appointment

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/locker"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

// UpdateInput carries the fields to change; nil means keep the current value.
type UpdateInput struct {
	ClientID   *uint
	EmployeeID *uint
	ServiceID  *uint

	Start  *time.Time
	Status *string

	ActorID *uint
}

type UpdateAppointment struct {
	guard bookingGuard
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	lk locker.Locker,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		guard: newBookingGuard(repo, lk, log),
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in UpdateInput,
) (*models.Appointment, error) {

	if appointmentID == 0 {
		return nil, domain.InvalidInput("invalid_appointment_id")
	}

	current, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Merge
	// --------------------------------------------------
	next := *current
	rawStatus := current.Status

	if in.ClientID != nil && *in.ClientID != next.ClientID {
		next.ClientID = *in.ClientID
		next.Client = models.Client{}
	}
	if in.EmployeeID != nil && *in.EmployeeID != next.EmployeeID {
		next.EmployeeID = *in.EmployeeID
		next.Employee = models.Employee{}
	}
	if in.ServiceID != nil && *in.ServiceID != next.ServiceID {
		next.ServiceID = *in.ServiceID
		next.Service = models.Service{}
	}
	if in.Start != nil {
		next.StartTime = *in.Start
	}
	if in.Status != nil {
		if strings.TrimSpace(*in.Status) == "" {
			return nil, domain.InvalidInput("invalid_status")
		}
		rawStatus = *in.Status
	}

	status, err := validateRefs(next.ClientID, next.EmployeeID, next.ServiceID, next.StartTime, rawStatus)
	if err != nil {
		return nil, err
	}
	next.Status = string(status)

	// --------------------------------------------------
	// Changed references
	// --------------------------------------------------
	if next.ClientID != current.ClientID {
		if err := uc.guard.requireClient(ctx, next.ClientID); err != nil {
			return nil, err
		}
	}
	if next.EmployeeID != current.EmployeeID {
		if err := uc.guard.requireEmployee(ctx, next.EmployeeID); err != nil {
			return nil, err
		}
	}

	candidate, err := uc.guard.rebook(ctx, current, next.ServiceID, next.StartTime)
	if err != nil {
		return nil, err
	}
	next.StartTime = candidate.Start
	next.DurationMin = bookedMinutes(candidate)

	write := func(ctx context.Context) error {
		return uc.repo.UpdateAppointment(ctx, &next)
	}

	// --------------------------------------------------
	// Conflict scan (self excluded) + write
	// --------------------------------------------------
	if status.IsCancelled() {
		err = write(ctx)
	} else {
		err = uc.guard.withinSlot(ctx, next.EmployeeID, candidate, &appointmentID, write)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "appointment_updated",
		Entity:   "turno",
		EntityID: &next.ID,
		Metadata: map[string]any{
			"estado_anterior": current.Status,
			"estado":          next.Status,
			"empleado_id":     next.EmployeeID,
			"fecha_hora":      next.StartTime,
		},
	})

	return &next, nil
}
