package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable salon service. DurationMin drives the length of
// every appointment that references it.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Description string          `gorm:"column:descripcion;size:255" json:"descripcion"`
	Price       decimal.Decimal `gorm:"column:precio;type:numeric(10,2);not null" json:"precio"`
	DurationMin int             `gorm:"column:duracion;not null" json:"duracion"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string {
	return "servicios"
}
