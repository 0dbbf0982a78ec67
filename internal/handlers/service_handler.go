package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

type ServiceRequest struct {
	Name        *string          `json:"nombre"`
	Description *string          `json:"descripcion"`
	Price       *decimal.Decimal `json:"precio"`
	DurationMin *int             `json:"duracion"`
}

// validate checks the fields present in req; create additionally requires
// all of them.
func (req ServiceRequest) validate(create bool) error {
	if create && (req.Name == nil || req.Price == nil || req.DurationMin == nil) {
		return httperr.ErrBusiness("invalid_request")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return httperr.ErrBusiness("invalid_service_name")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return httperr.ErrBusiness("invalid_price")
	}
	if req.DurationMin != nil && *req.DurationMin <= 0 {
		return httperr.ErrBusiness("invalid_duration")
	}
	return nil
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("nombre ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_service_id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&service, id).Error; err != nil {
		catalogError(c, err, "service_not_found")
		return
	}
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if err := req.validate(true); err != nil {
		httperr.FromError(c, err)
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(*req.Name),
		Price:       req.Price.Round(2),
		DurationMin: *req.DurationMin,
	}
	if req.Description != nil {
		service.Description = strings.TrimSpace(*req.Description)
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error al crear el servicio.")
		return
	}

	writeAudit(h.audit, c, "service_created", "servicio", service.ID, gin.H{
		"precio":   service.Price,
		"duracion": service.DurationMin,
	})
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_service_id")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if err := req.validate(false); err != nil {
		httperr.FromError(c, err)
		return
	}

	updates := map[string]any{}
	setTrimmed(updates, "nombre", req.Name)
	setTrimmed(updates, "descripcion", req.Description)
	if req.Price != nil {
		updates["precio"] = req.Price.Round(2)
	}
	if req.DurationMin != nil {
		updates["duracion"] = *req.DurationMin
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No hay campos para actualizar.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Service{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_service", "Error al actualizar el servicio.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "El servicio no existe.")
		return
	}

	writeAudit(h.audit, c, "service_updated", "servicio", id, nil)

	var service models.Service
	h.db.WithContext(c.Request.Context()).First(&service, id)
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_service_id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Service{}, id)
	if res.Error != nil {
		if repository.IsForeignKeyViolation(res.Error) {
			httperr.Conflict(c, "service_has_appointments", "El servicio tiene turnos asociados.", nil)
			return
		}
		httperr.Internal(c, "failed_to_delete_service", "Error al eliminar el servicio.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "El servicio no existe.")
		return
	}

	writeAudit(h.audit, c, "service_deleted", "servicio", id, nil)
	httpresp.NoContent(c)
}
