package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/config"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	users  *UserHandler
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, users *UserHandler) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, users: users}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"user" binding:"required"`
	Password string `json:"pass" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Usuario y contraseña son obligatorios.")
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Role").
		Where("\"user\" = ?", strings.TrimSpace(req.Username)).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Usuario o contraseña incorrectos.")
			return
		}
		httperr.Internal(c, "internal_error", "Error en la base de datos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Usuario o contraseña incorrectos.")
		return
	}

	if user.Status != models.UserActive {
		httperr.Forbidden(c, "user_inactive", "El usuario está inactivo.")
		return
	}

	token, err := generateToken(h.config, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	httpresp.OK(c, gin.H{
		"access_token": token,
		"user":         user,
	})
}

// Register creates a user. Only administrators reach it.
func (h *AuthHandler) Register(c *gin.Context) {
	h.users.Create(c)
}

// --------- JWT ---------

func generateToken(cfg *config.Config, user *models.User) (string, error) {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"role":     user.Role.Name,
		"username": user.Username,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
