package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/dto"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/middleware"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/timezone"
	appointmentuc "github.com/BruksfildServices01/flowmint-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *appointmentuc.CreateAppointment
	update       *appointmentuc.UpdateAppointment
	delete       *appointmentuc.DeleteAppointment
	get          *appointmentuc.GetAppointment
	list         *appointmentuc.ListAppointments
	availability *appointmentuc.GetAvailability

	loc *time.Location
}

func NewAppointmentHandler(
	create *appointmentuc.CreateAppointment,
	update *appointmentuc.UpdateAppointment,
	del *appointmentuc.DeleteAppointment,
	get *appointmentuc.GetAppointment,
	list *appointmentuc.ListAppointments,
	availability *appointmentuc.GetAvailability,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		update:       update,
		delete:       del,
		get:          get,
		list:         list,
		availability: availability,
		loc:          timezone.Location(tz),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StartTime  string `json:"fecha_hora" binding:"required"`
	ClientID   uint   `json:"cliente_id"`
	EmployeeID uint   `json:"empleado_id"`
	ServiceID  uint   `json:"servicio_id"`
	Status     string `json:"estado"`
}

type UpdateAppointmentRequest struct {
	StartTime  *string `json:"fecha_hora"`
	ClientID   *uint   `json:"cliente_id"`
	EmployeeID *uint   `json:"empleado_id"`
	ServiceID  *uint   `json:"servicio_id"`
	Status     *string `json:"estado"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, err := parseInstant(req.StartTime, h.loc)
	if err != nil {
		httperr.FromError(c, domain.InvalidInput("invalid_start"))
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateInput{
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		Start:      start,
		Status:     req.Status,
		ActorID:    middleware.ActorID(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	// reload so the response carries client, employee and service
	full, err := h.get.Execute(c.Request.Context(), ap.ID)
	if err != nil {
		httpresp.Created(c, dto.AppointmentFromModel(*ap, h.loc))
		return
	}
	httpresp.Created(c, dto.AppointmentFromModel(*full, h.loc))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_appointment_id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	in := appointmentuc.UpdateInput{
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		Status:     req.Status,
		ActorID:    middleware.ActorID(c),
	}
	if req.StartTime != nil {
		start, err := parseInstant(*req.StartTime, h.loc)
		if err != nil {
			httperr.FromError(c, domain.InvalidInput("invalid_start"))
			return
		}
		in.Start = &start
	}

	if _, err := h.update.Execute(c.Request.Context(), id, in); err != nil {
		httperr.FromError(c, err)
		return
	}

	full, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.AppointmentFromModel(*full, h.loc))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_appointment_id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, middleware.ActorID(c)); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_appointment_id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.AppointmentFromModel(*ap, h.loc))
}

// List supports ?empleado_id=&cliente_id=&estado=&desde=YYYY-MM-DD&hasta=YYYY-MM-DD.
// hasta is inclusive of the whole day.
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter domain.ListFilter
	var err error

	if filter.EmployeeID, err = queryID(c, "empleado_id"); err != nil {
		httperr.FromError(c, domain.InvalidInput("invalid_employee_id"))
		return
	}
	if filter.ClientID, err = queryID(c, "cliente_id"); err != nil {
		httperr.FromError(c, domain.InvalidInput("invalid_client_id"))
		return
	}
	filter.Status = domain.Status(c.Query("estado"))

	if raw := c.Query("desde"); raw != "" {
		from, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			httperr.FromError(c, domain.InvalidInput("invalid_date"))
			return
		}
		filter.From = &from
	}
	if raw := c.Query("hasta"); raw != "" {
		to, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			httperr.FromError(c, domain.InvalidInput("invalid_date"))
			return
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	apps, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.AppointmentsFromModels(apps, h.loc))
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID, ok := paramID(c, "cliente_id", "invalid_client_id")
	if !ok {
		return
	}

	apps, err := h.list.ExecuteForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.AppointmentsFromModels(apps, h.loc))
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability answers ?empleado_id=&servicio_id=&fecha=YYYY-MM-DD.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	employeeID, err := queryID(c, "empleado_id")
	if err != nil {
		httperr.FromError(c, domain.InvalidInput("invalid_employee_id"))
		return
	}
	serviceID, err := queryID(c, "servicio_id")
	if err != nil {
		httperr.FromError(c, domain.InvalidInput("invalid_service_id"))
		return
	}
	date, err := timezone.ParseDate(c.Query("fecha"), h.loc)
	if err != nil {
		httperr.FromError(c, domain.InvalidInput("invalid_date"))
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), appointmentuc.AvailabilityInput{
		EmployeeID: employeeID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"fecha":    date.Format("2006-01-02"),
		"horarios": slots,
	})
}
