package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cliente"`

	EmployeeID uint     `gorm:"column:empleado_id;not null;index:idx_turnos_empleado_inicio,priority:1" json:"empleado_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"empleado"`

	ServiceID uint    `gorm:"column:servicio_id;not null" json:"servicio_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"servicio"`

	StartTime time.Time `gorm:"column:fecha_hora;not null;index:idx_turnos_empleado_inicio,priority:2" json:"fecha_hora"`
	// DurationMin is the service length at booking time. Zero on rows written
	// before the column existed; readers fall back to the service.
	DurationMin int    `gorm:"column:duracion;not null;default:0" json:"duracion"`
	Status      string `gorm:"column:estado;size:20;not null;default:'pendiente'" json:"estado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "turnos"
}

// BookedMinutes is the length the booking occupies.
func (a Appointment) BookedMinutes() int {
	if a.DurationMin > 0 {
		return a.DurationMin
	}
	return a.Service.DurationMin
}
