package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/usecase/report"
)

func TestParseInstant(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)

	got, err := parseInstant("2026-03-10T10:00:00-03:00", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)))

	got, err = parseInstant("2026-03-10T10:00", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)))

	got, err = parseInstant(" 2026-03-10 10:00 ", loc)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseInstant("10/03/2026", loc)
	assert.Error(t, err)
}

func TestServiceRequestValidate(t *testing.T) {
	name := "Corte"
	price := decimal.RequireFromString("15.50")
	negative := decimal.RequireFromString("-1")
	duration := 30
	zero := 0

	assert.NoError(t, ServiceRequest{Name: &name, Price: &price, DurationMin: &duration}.validate(true))
	assert.True(t, httperr.IsBusiness(ServiceRequest{Name: &name}.validate(true), "invalid_request"))
	assert.True(t, httperr.IsBusiness(ServiceRequest{Price: &negative}.validate(false), "invalid_price"))
	assert.True(t, httperr.IsBusiness(ServiceRequest{DurationMin: &zero}.validate(false), "invalid_duration"))
	assert.NoError(t, ServiceRequest{}.validate(false))
}

func TestClientEmail(t *testing.T) {
	h := &ClientHandler{}

	email, err := h.email("  Ana@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)

	email, err = h.email("")
	require.NoError(t, err)
	assert.Empty(t, email)

	_, err = h.email("ana@")
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))

	h.domainCheck = func(string) bool { return false }
	_, err = h.email("ana@example.com")
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
}

func TestCatalogHandlers_RejectBadIDsBeforeTouchingDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/clientes/:id", NewClientHandler(nil, nil, false).Get)
	r.DELETE("/empleados/:id", NewEmployeeHandler(nil, nil).Delete)
	r.PATCH("/servicios/:id", NewServiceHandler(nil, nil).Update)
	r.GET("/usuarios/:id", NewUserHandler(nil, nil).Get)
	r.POST("/servicios", NewServiceHandler(nil, nil).Create)
	r.POST("/clientes", NewClientHandler(nil, nil, false).Create)

	assert.Equal(t, http.StatusBadRequest, send(r, http.MethodGet, "/clientes/0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, send(r, http.MethodDelete, "/empleados/x", nil).Code)
	assert.Equal(t, http.StatusBadRequest, send(r, http.MethodPatch, "/servicios/-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, send(r, http.MethodGet, "/usuarios/1.5", nil).Code)

	w := send(r, http.MethodPost, "/servicios", gin.H{"nombre": "Corte", "precio": 10, "duracion": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_duration", decode(t, w)["error_code"])

	w = send(r, http.MethodPost, "/clientes", gin.H{"nombre": "Ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(r, http.MethodPost, "/clientes", gin.H{"nombre": "Ana", "apellido": "Paz", "email": "nope"})
	assert.Equal(t, "invalid_email", decode(t, w)["error_code"])
}

type stubEarnings struct {
	rows []report.Row
}

func (s stubEarnings) Earnings(context.Context, report.Query) ([]report.Row, error) {
	return s.rows, nil
}

func TestReportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := report.NewGetEarnings(stubEarnings{rows: []report.Row{
		{GroupName: "Corte", Total: decimal.RequireFromString("30"), Appointments: 2},
	}}, "UTC")

	r := gin.New()
	r.GET("/turnos/ganancias/:periodo", NewReportHandler(uc).Earnings)

	w := send(r, http.MethodGet, "/turnos/ganancias/mensuales?agrupar=servicio", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "30", body["total"])
	assert.Equal(t, "servicio", body["agrupar"])

	w = send(r, http.MethodGet, "/turnos/ganancias/horarias", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_period", decode(t, w)["error_code"])
}
