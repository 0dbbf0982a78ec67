package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

type RoleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewRoleHandler(db *gorm.DB, audit *audit.Dispatcher) *RoleHandler {
	return &RoleHandler{db: db, audit: audit}
}

type RoleRequest struct {
	Name string `json:"nombre" binding:"required"`
}

func (h *RoleHandler) List(c *gin.Context) {
	var roles []models.Role
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&roles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_roles", "Error al listar roles.")
		return
	}
	httpresp.List(c, roles)
}

func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_role_id")
	if !ok {
		return
	}

	var role models.Role
	if err := h.db.WithContext(c.Request.Context()).First(&role, id).Error; err != nil {
		catalogError(c, err, "role_not_found")
		return
	}
	httpresp.OK(c, role)
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "El nombre del rol es obligatorio.")
		return
	}

	role := models.Role{Name: strings.ToLower(strings.TrimSpace(req.Name))}
	if err := h.db.WithContext(c.Request.Context()).Create(&role).Error; err != nil {
		if repository.IsUniqueViolation(err) {
			httperr.BadRequest(c, "role_exists", "El rol ya existe.")
			return
		}
		httperr.Internal(c, "failed_to_create_role", "Error al crear el rol.")
		return
	}

	writeAudit(h.audit, c, "role_created", "rol", role.ID, gin.H{"nombre": role.Name})
	httpresp.Created(c, role)
}

func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_role_id")
	if !ok {
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "El nombre del rol es obligatorio.")
		return
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Role{}).
		Where("id = ?", id).
		Update("nombre", name)
	if res.Error != nil {
		if repository.IsUniqueViolation(res.Error) {
			httperr.BadRequest(c, "role_exists", "El rol ya existe.")
			return
		}
		httperr.Internal(c, "failed_to_update_role", "Error al actualizar el rol.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "role_not_found", "El rol no existe.")
		return
	}

	writeAudit(h.audit, c, "role_updated", "rol", id, gin.H{"nombre": name})
	httpresp.OK(c, models.Role{ID: id, Name: name})
}

func (h *RoleHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_role_id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Role{}, id)
	if res.Error != nil {
		if repository.IsForeignKeyViolation(res.Error) {
			httperr.Conflict(c, "role_in_use", "El rol está asignado a usuarios.", nil)
			return
		}
		httperr.Internal(c, "failed_to_delete_role", "Error al eliminar el rol.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "role_not_found", "El rol no existe.")
		return
	}

	writeAudit(h.audit, c, "role_deleted", "rol", id, nil)
	httpresp.NoContent(c)
}
