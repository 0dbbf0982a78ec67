package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
)

// RequireRoles lets the request through when the authenticated role is one
// of roles. It must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if _, ok := allowed[role]; !ok {
			httperr.Forbidden(c, "forbidden_role", "No tiene permisos para esta operación.")
			c.Abort()
			return
		}
		c.Next()
	}
}
