package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
)

var messages = map[string]string{
	"invalid_duration":       "La duración del servicio debe ser mayor a cero.",
	"invalid_client_id":      "Cliente inválido.",
	"invalid_employee_id":    "Empleado inválido.",
	"invalid_service_id":     "Servicio inválido.",
	"invalid_appointment_id": "Turno inválido.",
	"invalid_status":         "Estado inválido.",
	"invalid_start":          "Fecha y hora inválidas.",
	"invalid_business_hours": "Horario de atención mal configurado.",
	"invalid_date":           "Fecha inválida.",
	"invalid_range":          "El rango de fechas es inválido.",
	"invalid_period":         "Periodo inválido: diarias, semanales, mensuales o anuales.",
	"invalid_group":          "Agrupación inválida: servicio o empleado.",
	"client_not_found":       "El cliente no existe.",
	"employee_not_found":     "El empleado no existe.",
	"service_not_found":      "El servicio no existe.",
	"appointment_not_found":  "El turno no existe.",
	"time_conflict":          "El empleado ya tiene un turno en ese horario.",
	"lock_timeout":           "No se pudo reservar el horario, intente nuevamente.",
	"reference_not_found":    "Una referencia del turno no existe.",
}

func messageFor(code, fallback string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return fallback
}

// FromError writes the response for an error returned by the scheduling use
// cases: conflict -> 409, invalid input -> 400, not found -> 404, anything
// else -> 500.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		BadRequest(c, be.Code, messageFor(be.Code, "Datos inválidos."))
		return
	}

	var me MissingError
	if errors.As(err, &me) {
		NotFound(c, me.Code, messageFor(me.Code, "Recurso no encontrado."))
		return
	}

	code := domain.CodeOf(err)

	switch domain.KindOf(err) {
	case domain.KindConflict:
		id, _ := domain.ConflictingID(err)
		Conflict(c, code, messageFor(code, "Conflicto de horario."), &id)
	case domain.KindInvalidInput:
		BadRequest(c, code, messageFor(code, "Datos inválidos."))
	case domain.KindNotFound:
		NotFound(c, code, messageFor(code, "Recurso no encontrado."))
	default:
		Internal(c, code, messageFor(code, "Error en la base de datos."))
	}
}
