package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/locker"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

// bookingGuard runs the check-then-write section of create and update while
// holding the employee lock.
type bookingGuard struct {
	repo   domain.Repository
	locker locker.Locker
	log    *zap.Logger
}

func newBookingGuard(
	repo domain.Repository,
	lk locker.Locker,
	log *zap.Logger,
) bookingGuard {
	if log == nil {
		log = zap.NewNop()
	}
	return bookingGuard{repo: repo, locker: lk, log: log}
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (g bookingGuard) requireClient(ctx context.Context, clientID uint) error {
	ok, err := g.repo.ClientExists(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("client_not_found")
	}
	return nil
}

func (g bookingGuard) requireEmployee(ctx context.Context, employeeID uint) error {
	ok, err := g.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("employee_not_found")
	}
	return nil
}

// candidate resolves the service duration and builds the interval the booking
// would occupy.
func (g bookingGuard) candidate(
	ctx context.Context,
	serviceID uint,
	start time.Time,
) (domain.Interval, error) {

	minutes, err := g.repo.GetServiceDuration(ctx, serviceID)
	if err != nil {
		return domain.Interval{}, err
	}
	return domain.NewInterval(start, minutes)
}

// rebook keeps the length a booking was made with unless its service changes.
func (g bookingGuard) rebook(
	ctx context.Context,
	current *models.Appointment,
	serviceID uint,
	start time.Time,
) (domain.Interval, error) {

	if serviceID == current.ServiceID && current.DurationMin > 0 {
		return domain.NewInterval(start, current.DurationMin)
	}
	return g.candidate(ctx, serviceID, start)
}

func bookedMinutes(iv domain.Interval) int {
	return int(iv.Duration() / time.Minute)
}

// --------------------------------------------------
// Check then write
// --------------------------------------------------

// withinSlot locks employeeID, rejects candidate if it overlaps a live
// booking other than exclude, and otherwise runs write before unlocking.
func (g bookingGuard) withinSlot(
	ctx context.Context,
	employeeID uint,
	candidate domain.Interval,
	exclude *uint,
	write func(ctx context.Context) error,
) error {

	unlock, err := g.locker.Lock(ctx, locker.EmployeeKey(employeeID))
	if err != nil {
		g.log.Warn("employee lock not acquired",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return domain.Persistence("lock_timeout", err)
	}
	defer unlock()

	existing, err := g.repo.ListBookingsForEmployee(ctx, employeeID)
	if err != nil {
		g.log.Error("list bookings failed",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}

	if id, found := domain.FindConflict(employeeID, candidate, existing, exclude); found {
		g.log.Info("booking rejected",
			zap.Uint("employee_id", employeeID),
			zap.Uint("conflicting_id", id),
			zap.Time("start", candidate.Start),
			zap.Time("end", candidate.End),
		)
		return domain.Conflict(id)
	}

	if err := write(ctx); err != nil {
		g.log.Error("booking write failed",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
