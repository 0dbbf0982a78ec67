package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	LastName  string `gorm:"column:apellido;size:100;not null" json:"apellido"`
	DNI       string `gorm:"column:dni;size:20" json:"dni"`

	Username     string `gorm:"column:user;size:100;uniqueIndex;not null" json:"user"`
	PasswordHash string `gorm:"column:pass;size:255;not null" json:"-"`
	Email        string `gorm:"column:correo;size:100" json:"correo"`

	RoleID uint `gorm:"column:rol_id;not null" json:"rol_id"`
	Role   Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"rol"`

	// A = active, I = inactive
	Status string `gorm:"column:estado;size:1;default:'A'" json:"estado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "usuarios"
}

const (
	UserActive   = "A"
	UserInactive = "I"
)
