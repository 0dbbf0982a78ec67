package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFromError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"conflict", domain.Conflict(9), http.StatusConflict, "time_conflict"},
		{"invalid duration", domain.ErrInvalidDuration, http.StatusBadRequest, "invalid_duration"},
		{"not found", domain.NotFound("service_not_found"), http.StatusNotFound, "service_not_found"},
		{"persistence", domain.Persistence("insert_appointment_failed", errors.New("db down")), http.StatusInternalServerError, "insert_appointment_failed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
		{"business", ErrBusiness("invalid_request"), http.StatusBadRequest, "invalid_request"},
		{"missing", ErrMissing("client_not_found"), http.StatusNotFound, "client_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := render(t, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestFromError_ConflictCarriesAppointmentID(t *testing.T) {
	_, body := render(t, domain.Conflict(42))

	require.NotNil(t, body.ConflictingID)
	assert.Equal(t, uint(42), *body.ConflictingID)
}

func TestFromError_NonConflictOmitsConflictingID(t *testing.T) {
	w, body := render(t, domain.NotFound("client_not_found"))

	assert.Nil(t, body.ConflictingID)
	assert.NotContains(t, w.Body.String(), "conflicting_id")
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(ErrBusiness("too_soon"), "too_soon"))
	assert.False(t, IsBusiness(ErrBusiness("too_soon"), "other"))
	assert.False(t, IsBusiness(errors.New("too_soon"), "too_soon"))
}
