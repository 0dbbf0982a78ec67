package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

// ListFilter narrows ListAppointments. Zero values mean "any".
type ListFilter struct {
	EmployeeID uint
	ClientID   uint
	Status     Status
	From       *time.Time
	To         *time.Time
}

// Repository is the persistence collaborator of the scheduler. Implementations
// return *Error values of kind NotFound or Persistence.
type Repository interface {
	// -------- References --------
	GetServiceDuration(
		ctx context.Context,
		serviceID uint,
	) (int, error)

	ClientExists(
		ctx context.Context,
		clientID uint,
	) (bool, error)

	EmployeeExists(
		ctx context.Context,
		employeeID uint,
	) (bool, error)

	// -------- Conflict scan --------
	ListBookingsForEmployee(
		ctx context.Context,
		employeeID uint,
	) ([]Booking, error)

	// -------- Appointment --------
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
