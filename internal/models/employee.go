package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	LastName  string `gorm:"column:apellido;size:100;not null" json:"apellido"`
	Position  string `gorm:"column:puesto;size:100" json:"puesto"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "empleados"
}
