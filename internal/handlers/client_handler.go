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
	"github.com/BruksfildServices01/flowmint-scheduler/internal/validators"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher

	// optional DNS check of the email domain
	domainCheck func(email string) bool
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher, checkDomain bool) *ClientHandler {
	h := &ClientHandler{db: db, audit: audit}
	if checkDomain {
		h.domainCheck = validators.IsEmailDomainValid
	}
	return h
}

type ClientRequest struct {
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellido"`
	Phone     *string `json:"telefono"`
	Email     *string `json:"email"`
}

// ======================================================
// LIST CLIENTS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(nombre) LIKE ? OR LOWER(apellido) LIKE ? OR telefono LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("apellido ASC, nombre ASC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Error al listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).First(&client, id).Error; err != nil {
		catalogError(c, err, "client_not_found")
		return
	}
	httpresp.OK(c, client)
}

// ======================================================
// WRITE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.FirstName == nil || strings.TrimSpace(*req.FirstName) == "" ||
		req.LastName == nil || strings.TrimSpace(*req.LastName) == "" {
		httperr.BadRequest(c, "invalid_request", "Nombre y apellido son obligatorios.")
		return
	}

	client := models.Client{
		FirstName: strings.TrimSpace(*req.FirstName),
		LastName:  strings.TrimSpace(*req.LastName),
	}
	if req.Phone != nil {
		client.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		email, err := h.email(*req.Email)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		client.Email = email
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Error al crear el cliente.")
		return
	}

	writeAudit(h.audit, c, "client_created", "cliente", client.ID, nil)
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updates := map[string]any{}
	setTrimmed(updates, "nombre", req.FirstName)
	setTrimmed(updates, "apellido", req.LastName)
	setTrimmed(updates, "telefono", req.Phone)
	if req.Email != nil {
		email, err := h.email(*req.Email)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		updates["email"] = email
	}

	if updates["nombre"] == "" || updates["apellido"] == "" {
		httperr.BadRequest(c, "invalid_request", "Nombre y apellido no pueden quedar vacíos.")
		return
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No hay campos para actualizar.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_client", "Error al actualizar el cliente.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "El cliente no existe.")
		return
	}

	writeAudit(h.audit, c, "client_updated", "cliente", id, nil)

	var client models.Client
	h.db.WithContext(c.Request.Context()).First(&client, id)
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Client{}, id)
	if res.Error != nil {
		if repository.IsForeignKeyViolation(res.Error) {
			httperr.Conflict(c, "client_has_appointments", "El cliente tiene turnos asociados.", nil)
			return
		}
		httperr.Internal(c, "failed_to_delete_client", "Error al eliminar el cliente.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "El cliente no existe.")
		return
	}

	writeAudit(h.audit, c, "client_deleted", "cliente", id, nil)
	httpresp.NoContent(c)
}

// email validates an optional client address; empty clears it.
func (h *ClientHandler) email(raw string) (string, error) {
	email := validators.NormalizeEmail(raw)
	if email == "" {
		return "", nil
	}
	if !validators.IsEmailSyntaxValid(email) {
		return "", httperr.ErrBusiness("invalid_email")
	}
	if h.domainCheck != nil && !h.domainCheck(email) {
		return "", httperr.ErrBusiness("invalid_email_domain")
	}
	return email, nil
}
