package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/config"
	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextUsername = "username"
)

// UserFinder loads the current state of a token subject with its role
// preloaded. A missing user is reported as a NotFound error.
type UserFinder interface {
	FindUser(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware verifies the bearer token and then reloads its subject, so
// the role and status in effect are the stored ones, not the token's.
func AuthMiddleware(cfg *config.Config, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Falta el token de acceso.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Formato de token inválido.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token inválido o expirado.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token inválido.")
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub < 1 {
			httperr.Unauthorized(c, "invalid_token_payload", "Token inválido.")
			c.Abort()
			return
		}

		user, err := users.FindUser(c.Request.Context(), uint(sub))
		switch {
		case err != nil && domain.KindOf(err) == domain.KindNotFound:
			httperr.Unauthorized(c, "user_not_found", "El usuario no existe.")
			c.Abort()
			return
		case err != nil:
			httperr.Internal(c, "internal_error", "Error al verificar el usuario.")
			c.Abort()
			return
		case user.Status == models.UserInactive:
			httperr.Forbidden(c, "user_inactive", "El usuario está inactivo.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role.Name)
		c.Set(ContextUsername, user.Username)

		c.Next()
	}
}

// ActorID returns the authenticated user id, or nil outside AuthMiddleware.
func ActorID(c *gin.Context) *uint {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
