package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	LastName  string `gorm:"column:apellido;size:100;not null" json:"apellido"`
	Phone     string `gorm:"column:telefono;size:30" json:"telefono"`
	Email     string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clientes"
}
