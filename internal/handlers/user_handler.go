package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	FirstName string `json:"nombre" binding:"required"`
	LastName  string `json:"apellido" binding:"required"`
	DNI       string `json:"dni"`
	Username  string `json:"user" binding:"required"`
	Password  string `json:"pass" binding:"required,min=6"`
	Email     string `json:"correo"`
	RoleID    uint   `json:"rol_id" binding:"required"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellido"`
	DNI       *string `json:"dni"`
	Username  *string `json:"user"`
	Password  *string `json:"pass"`
	Email     *string `json:"correo"`
	RoleID    *uint   `json:"rol_id"`
	Status    *string `json:"estado"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Role").
		Order("id ASC").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Error al listar usuarios.")
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_user_id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Role").
		First(&user, id).Error; err != nil {
		catalogError(c, err, "user_not_found")
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if email != "" && !validators.IsEmailSyntaxValid(email) {
		httperr.BadRequest(c, "invalid_email", "El correo no es válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "No se pudo procesar la contraseña.")
		return
	}

	user := models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		DNI:          strings.TrimSpace(req.DNI),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hashed),
		Email:        email,
		RoleID:       req.RoleID,
		Status:       models.UserActive,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		userWriteError(c, err)
		return
	}

	writeAudit(h.audit, c, "user_created", "usuario", user.ID, gin.H{"user": user.Username})

	h.db.WithContext(c.Request.Context()).Preload("Role").First(&user, user.ID)
	httpresp.Created(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_user_id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updates := map[string]any{}
	setTrimmed(updates, "nombre", req.FirstName)
	setTrimmed(updates, "apellido", req.LastName)
	setTrimmed(updates, "dni", req.DNI)
	setTrimmed(updates, "user", req.Username)

	if req.Email != nil {
		email := validators.NormalizeEmail(*req.Email)
		if email != "" && !validators.IsEmailSyntaxValid(email) {
			httperr.BadRequest(c, "invalid_email", "El correo no es válido.")
			return
		}
		updates["correo"] = email
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			httperr.BadRequest(c, "invalid_password", "La contraseña debe tener al menos 6 caracteres.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "No se pudo procesar la contraseña.")
			return
		}
		updates["pass"] = string(hashed)
	}
	if req.RoleID != nil {
		updates["rol_id"] = *req.RoleID
	}
	if req.Status != nil {
		if *req.Status != models.UserActive && *req.Status != models.UserInactive {
			httperr.BadRequest(c, "invalid_user_status", "Estado inválido: A o I.")
			return
		}
		updates["estado"] = *req.Status
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No hay campos para actualizar.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		userWriteError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "El usuario no existe.")
		return
	}

	writeAudit(h.audit, c, "user_updated", "usuario", id, nil)

	var user models.User
	h.db.WithContext(c.Request.Context()).Preload("Role").First(&user, id)
	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_user_id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.User{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_user", "Error al eliminar el usuario.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "El usuario no existe.")
		return
	}

	writeAudit(h.audit, c, "user_deleted", "usuario", id, nil)
	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

func userWriteError(c *gin.Context, err error) {
	switch {
	case repository.IsUniqueViolation(err):
		httperr.BadRequest(c, "username_taken", "El nombre de usuario ya existe.")
	case repository.IsForeignKeyViolation(err):
		httperr.NotFound(c, "role_not_found", "El rol no existe.")
	default:
		httperr.Internal(c, "failed_to_save_user", "Error al guardar el usuario.")
	}
}

func setTrimmed(updates map[string]any, column string, v *string) {
	if v != nil {
		updates[column] = strings.TrimSpace(*v)
	}
}

// catalogError renders a lookup failure on a catalog entity.
func catalogError(c *gin.Context, err error, notFoundCode string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.FromError(c, httperr.ErrMissing(notFoundCode))
		return
	}
	httperr.Internal(c, "internal_error", "Error en la base de datos.")
}
