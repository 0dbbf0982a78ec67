package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/timezone"
)

type AvailabilityInput struct {
	EmployeeID uint
	ServiceID  uint

	// calendar date; only year, month and day are used
	Date time.Time
}

type GetAvailability struct {
	repo  domain.Repository
	hours domain.BusinessHours
	step  time.Duration
	loc   *time.Location
	now   func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	hours domain.BusinessHours,
	step time.Duration,
	tz string,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		hours: hours,
		step:  step,
		loc:   timezone.Location(tz),
		now:   time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.TimeSlot, error) {

	switch {
	case in.EmployeeID == 0:
		return nil, domain.InvalidInput("invalid_employee_id")
	case in.ServiceID == 0:
		return nil, domain.InvalidInput("invalid_service_id")
	case in.Date.IsZero():
		return nil, domain.InvalidInput("invalid_date")
	}

	ok, err := uc.repo.EmployeeExists(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("employee_not_found")
	}

	minutes, err := uc.repo.GetServiceDuration(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	day := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 12, 0, 0, 0, uc.loc)
	open, closeAt, err := uc.hours.Window(day, uc.loc)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListBookingsForEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(
		in.EmployeeID,
		open,
		closeAt,
		minutes,
		uc.step,
		existing,
		uc.now(),
	)
}
