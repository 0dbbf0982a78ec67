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

type EmployeeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEmployeeHandler(db *gorm.DB, audit *audit.Dispatcher) *EmployeeHandler {
	return &EmployeeHandler{db: db, audit: audit}
}

type EmployeeRequest struct {
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellido"`
	Position  *string `json:"puesto"`
}

func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.db.WithContext(c.Request.Context()).
		Order("apellido ASC, nombre ASC").
		Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Error al listar empleados.")
		return
	}
	httpresp.List(c, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_employee_id")
	if !ok {
		return
	}

	var employee models.Employee
	if err := h.db.WithContext(c.Request.Context()).First(&employee, id).Error; err != nil {
		catalogError(c, err, "employee_not_found")
		return
	}
	httpresp.OK(c, employee)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.FirstName == nil || strings.TrimSpace(*req.FirstName) == "" ||
		req.LastName == nil || strings.TrimSpace(*req.LastName) == "" {
		httperr.BadRequest(c, "invalid_request", "Nombre y apellido son obligatorios.")
		return
	}

	employee := models.Employee{
		FirstName: strings.TrimSpace(*req.FirstName),
		LastName:  strings.TrimSpace(*req.LastName),
	}
	if req.Position != nil {
		employee.Position = strings.TrimSpace(*req.Position)
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&employee).Error; err != nil {
		httperr.Internal(c, "failed_to_create_employee", "Error al crear el empleado.")
		return
	}

	writeAudit(h.audit, c, "employee_created", "empleado", employee.ID, nil)
	httpresp.Created(c, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_employee_id")
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updates := map[string]any{}
	setTrimmed(updates, "nombre", req.FirstName)
	setTrimmed(updates, "apellido", req.LastName)
	setTrimmed(updates, "puesto", req.Position)

	if updates["nombre"] == "" || updates["apellido"] == "" {
		httperr.BadRequest(c, "invalid_request", "Nombre y apellido no pueden quedar vacíos.")
		return
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No hay campos para actualizar.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_employee", "Error al actualizar el empleado.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "employee_not_found", "El empleado no existe.")
		return
	}

	writeAudit(h.audit, c, "employee_updated", "empleado", id, nil)

	var employee models.Employee
	h.db.WithContext(c.Request.Context()).First(&employee, id)
	httpresp.OK(c, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_employee_id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Employee{}, id)
	if res.Error != nil {
		if repository.IsForeignKeyViolation(res.Error) {
			httperr.Conflict(c, "employee_has_appointments", "El empleado tiene turnos asociados.", nil)
			return
		}
		httperr.Internal(c, "failed_to_delete_employee", "Error al eliminar el empleado.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "employee_not_found", "El empleado no existe.")
		return
	}

	writeAudit(h.audit, c, "employee_deleted", "empleado", id, nil)
	httpresp.NoContent(c)
}
