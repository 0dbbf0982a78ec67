package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository. The function fields, when set,
// replace the default behaviour of the matching method.
type fakeRepo struct {
	mu sync.Mutex

	clients   map[uint]bool
	employees map[uint]bool
	durations map[uint]int

	appointments map[uint]models.Appointment
	nextID       uint

	listBookingsCalls int
	inserts           int
	updates           int

	listBookingsFn func(ctx context.Context, employeeID uint) ([]domain.Booking, error)
	insertFn       func(ctx context.Context, ap *models.Appointment) error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      map[uint]bool{1: true, 2: true},
		employees:    map[uint]bool{7: true, 8: true},
		durations:    map[uint]int{10: 30, 11: 60, 12: 0},
		appointments: map[uint]models.Appointment{},
		nextID:       100,
	}
}

// seed stores an appointment directly, bypassing the scheduler.
func (f *fakeRepo) seed(id, employeeID, serviceID uint, start time.Time, status domain.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments[id] = models.Appointment{
		ID:         id,
		ClientID:   1,
		EmployeeID: employeeID,
		ServiceID:  serviceID,
		StartTime:  start,
		Status:     string(status),
	}
}

func (f *fakeRepo) setDuration(serviceID uint, minutes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations[serviceID] = minutes
}

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

func (f *fakeRepo) GetServiceDuration(ctx context.Context, serviceID uint) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.durations[serviceID]
	if !ok {
		return 0, domain.NotFound("service_not_found")
	}
	return d, nil
}

func (f *fakeRepo) ClientExists(ctx context.Context, clientID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clients[clientID], nil
}

func (f *fakeRepo) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.employees[employeeID], nil
}

func (f *fakeRepo) ListBookingsForEmployee(ctx context.Context, employeeID uint) ([]domain.Booking, error) {
	f.mu.Lock()
	f.listBookingsCalls++
	f.mu.Unlock()

	if f.listBookingsFn != nil {
		return f.listBookingsFn(ctx, employeeID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Booking
	for _, ap := range f.appointments {
		if ap.EmployeeID != employeeID {
			continue
		}
		minutes := ap.DurationMin
		if minutes <= 0 {
			minutes = f.durations[ap.ServiceID]
		}
		iv, err := domain.NewInterval(ap.StartTime, minutes)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Booking{
			AppointmentID: ap.ID,
			EmployeeID:    ap.EmployeeID,
			Interval:      iv,
			Status:        domain.Status(ap.Status),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Interval.Start.Equal(out[j].Interval.Start) {
			return out[i].AppointmentID < out[j].AppointmentID
		}
		return out[i].Interval.Start.Before(out[j].Interval.Start)
	})
	return out, nil
}

func (f *fakeRepo) InsertAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.insertFn != nil {
		return f.insertFn(ctx, ap)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = *ap
	f.inserts++
	return nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appointments[ap.ID]; !ok {
		return domain.NotFound("appointment_not_found")
	}
	f.appointments[ap.ID] = *ap
	f.updates++
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, appointmentID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appointments[appointmentID]; !ok {
		return domain.NotFound("appointment_not_found")
	}
	delete(f.appointments, appointmentID)
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.appointments[appointmentID]
	if !ok {
		return nil, domain.NotFound("appointment_not_found")
	}
	return &ap, nil
}

func (f *fakeRepo) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if filter.ClientID != 0 && ap.ClientID != filter.ClientID {
			continue
		}
		if filter.EmployeeID != 0 && ap.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && ap.Status != string(filter.Status) {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
