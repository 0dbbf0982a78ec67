package models

import "time"

// AuditLog records a write made through the API. Entity is the singular
// record kind, e.g. "turno" or "cliente".
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint  `gorm:"index" json:"user_id"`
	Action string `gorm:"size:50;not null;index" json:"action"`

	Entity   string `gorm:"size:50;index:idx_auditoria_entidad" json:"entity"`
	EntityID *uint  `gorm:"index:idx_auditoria_entidad" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "auditoria"
}
