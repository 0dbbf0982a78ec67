package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/middleware"
)

// writeAudit records a catalog change made by the authenticated user.
func writeAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	action string,
	entity string,
	entityID uint,
	meta any,
) {
	if d == nil {
		return
	}

	d.Dispatch(audit.Event{
		UserID:   middleware.ActorID(c),
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
		Metadata: meta,
	})
}
