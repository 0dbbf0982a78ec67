package models

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nombre;size:50;uniqueIndex;not null" json:"nombre"`
}

func (Role) TableName() string {
	return "roles"
}

const (
	RoleAdmin    = "admin"
	RoleUser     = "usuario"
	RoleEmployee = "empleado"
)

// SeedRoles lists the roles created on start-up, in id order.
var SeedRoles = []string{RoleAdmin, RoleUser, RoleEmployee}
