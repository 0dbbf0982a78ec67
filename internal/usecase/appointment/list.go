package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	if filter.Status != "" {
		if _, err := domain.ParseStatus(string(filter.Status)); err != nil {
			return nil, err
		}
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, domain.InvalidInput("invalid_range")
	}

	return uc.repo.ListAppointments(ctx, filter)
}

// ExecuteForClient lists every appointment of one client, oldest first.
func (uc *ListAppointments) ExecuteForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	if clientID == 0 {
		return nil, domain.InvalidInput("invalid_client_id")
	}

	ok, err := uc.repo.ClientExists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("client_not_found")
	}

	return uc.repo.ListAppointments(ctx, domain.ListFilter{ClientID: clientID})
}
