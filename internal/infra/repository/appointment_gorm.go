package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServiceDuration(
	ctx context.Context,
	serviceID uint,
) (int, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Select("id", "duracion").
		First(&svc, serviceID).Error; err != nil {
		return 0, translate(err, "service_not_found", "get_service_failed")
	}
	return svc.DurationMin, nil
}

func (r *AppointmentGormRepository) ClientExists(
	ctx context.Context,
	clientID uint,
) (bool, error) {
	return r.exists(ctx, &models.Client{}, clientID)
}

func (r *AppointmentGormRepository) EmployeeExists(
	ctx context.Context,
	employeeID uint,
) (bool, error) {
	return r.exists(ctx, &models.Employee{}, employeeID)
}

func (r *AppointmentGormRepository) exists(
	ctx context.Context,
	model any,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, domain.Persistence("lookup_failed", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Conflict scan
// --------------------------------------------------

type bookingRow struct {
	ID          uint
	EmployeeID  uint
	StartTime   time.Time
	Status      string
	DurationMin int
}

func (r *AppointmentGormRepository) ListBookingsForEmployee(
	ctx context.Context,
	employeeID uint,
) ([]domain.Booking, error) {

	var rows []bookingRow
	if err := r.db.WithContext(ctx).
		Table("turnos").
		Select(`turnos.id AS id,
			turnos.empleado_id AS employee_id,
			turnos.fecha_hora AS start_time,
			turnos.estado AS status,
			COALESCE(NULLIF(turnos.duracion, 0), servicios.duracion) AS duration_min`).
		Joins("JOIN servicios ON servicios.id = turnos.servicio_id").
		Where("turnos.empleado_id = ? AND turnos.estado <> ?", employeeID, string(domain.StatusCancelled)).
		Order("turnos.fecha_hora ASC, turnos.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, domain.Persistence("list_bookings_failed", err)
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		iv, err := domain.NewInterval(row.StartTime, row.DurationMin)
		if err != nil {
			// a non-positive stored duration cannot be scanned
			return nil, domain.Persistence("invalid_stored_duration", err)
		}
		out = append(out, domain.Booking{
			AppointmentID: row.ID,
			EmployeeID:    row.EmployeeID,
			Interval:      iv,
			Status:        domain.Status(row.Status),
		})
	}

	return out, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
	return translate(err, "appointment_not_found", "insert_appointment_failed")
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ap.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"cliente_id":  ap.ClientID,
			"empleado_id": ap.EmployeeID,
			"servicio_id": ap.ServiceID,
			"fecha_hora":  ap.StartTime,
			"duracion":    ap.DurationMin,
			"estado":      ap.Status,
			"updated_at":  ap.UpdatedAt,
		})
	if res.Error != nil {
		return translate(res.Error, "appointment_not_found", "update_appointment_failed")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("appointment_not_found")
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, appointmentID)
	if res.Error != nil {
		return translate(res.Error, "appointment_not_found", "delete_appointment_failed")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("appointment_not_found")
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, translate(err, "appointment_not_found", "get_appointment_failed")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Service")

	if filter.EmployeeID != 0 {
		q = q.Where("empleado_id = ?", filter.EmployeeID)
	}
	if filter.ClientID != 0 {
		q = q.Where("cliente_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("estado = ?", string(filter.Status))
	}
	if filter.From != nil {
		q = q.Where("fecha_hora >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("fecha_hora < ?", filter.To.UTC())
	}

	var apps []models.Appointment
	if err := q.
		Order("fecha_hora ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, domain.Persistence("list_appointments_failed", err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
