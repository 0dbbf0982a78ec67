package appointment

import (
	"context"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID *uint,
) error {

	if appointmentID == 0 {
		return domain.InvalidInput("invalid_appointment_id")
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_deleted",
		Entity:   "turno",
		EntityID: &appointmentID,
	})

	return nil
}
