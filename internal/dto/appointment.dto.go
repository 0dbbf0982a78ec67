package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

type AppointmentDTO struct {
	ID     uint      `json:"id"`
	Start  time.Time `json:"fecha_hora"`
	End    time.Time `json:"fin"`
	Status string    `json:"estado"`

	ClientID   uint   `json:"cliente_id"`
	ClientName string `json:"cliente"`

	EmployeeID   uint   `json:"empleado_id"`
	EmployeeName string `json:"empleado"`

	ServiceID   uint            `json:"servicio_id"`
	ServiceName string          `json:"servicio"`
	Price       decimal.Decimal `json:"precio"`
	DurationMin int             `json:"duracion"`
}

// AppointmentFromModel flattens a preloaded appointment. The end comes from
// the booked duration, or from the loaded service for rows without one.
func AppointmentFromModel(ap models.Appointment, loc *time.Location) AppointmentDTO {
	start := ap.StartTime
	if loc != nil {
		start = start.In(loc)
	}

	out := AppointmentDTO{
		ID:     ap.ID,
		Start:  start,
		Status: ap.Status,

		ClientID:   ap.ClientID,
		ClientName: fullName(ap.Client.FirstName, ap.Client.LastName),

		EmployeeID:   ap.EmployeeID,
		EmployeeName: fullName(ap.Employee.FirstName, ap.Employee.LastName),

		ServiceID:   ap.ServiceID,
		ServiceName: ap.Service.Name,
		Price:       ap.Service.Price,
		DurationMin: ap.BookedMinutes(),
	}

	if out.DurationMin > 0 {
		out.End = start.Add(time.Duration(out.DurationMin) * time.Minute)
	}

	return out
}

func AppointmentsFromModels(apps []models.Appointment, loc *time.Location) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentFromModel(ap, loc))
	}
	return out
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
