package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/config"
	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/locker"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

type nopSink struct{}

func (nopSink) Log(context.Context, audit.Event) error { return nil }

// accounts maps user ids to the roles stored for them.
var accounts = map[uint]models.User{
	1: {ID: 1, Username: "root", Role: models.Role{Name: "admin"}, Status: models.UserActive},
	2: {ID: 2, Username: "ana", Role: models.Role{Name: "usuario"}, Status: models.UserActive},
	3: {ID: 3, Username: "marta", Role: models.Role{Name: "empleado"}, Status: models.UserActive},
	4: {ID: 4, Username: "guest", Role: models.Role{Name: "invitado"}, Status: models.UserActive},
	5: {ID: 5, Username: "old", Role: models.Role{Name: "admin"}, Status: models.UserInactive},
}

type accountStore struct{}

func (accountStore) FindUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := accounts[id]
	if !ok {
		return nil, domain.NotFound("user_not_found")
	}
	return &u, nil
}

// newRouter mounts every route without a database; only requests rejected
// before reaching storage are exercised.
func newRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:       "routes-secret",
		Timezone:        "UTC",
		BusinessOpen:    "09:00",
		BusinessClose:   "20:00",
		SlotStepMinutes: 15,
		TokenTTL:        time.Hour,
	}

	d := audit.NewDispatcher(nopSink{}, nil)
	t.Cleanup(d.Close)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config: cfg,
		Locker: locker.NewMemory(time.Second),
		Audit:  d,
		Log:    zap.NewNop(),
		Users:  accountStore{},
	})
	return r, cfg
}

func tokenFor(t *testing.T, cfg *config.Config, role string) string {
	t.Helper()
	for id, u := range accounts {
		if u.Role.Name == role && u.Status == models.UserActive {
			return tokenAs(t, cfg, id, role)
		}
	}
	t.Fatalf("no active account with role %q", role)
	return ""
}

func tokenAs(t *testing.T, cfg *config.Config, id uint, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return s
}

func call(r http.Handler, method, path, token, body string) int {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/health", "", ""))
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	r, _ := newRouter(t)

	for _, path := range []string{"/api/turnos", "/api/clientes", "/api/me", "/api/usuarios"} {
		assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, path, "", ""), path)
	}
}

func TestRolePolicy(t *testing.T) {
	r, cfg := newRouter(t)
	usuario := tokenFor(t, cfg, "usuario")
	empleado := tokenFor(t, cfg, "empleado")
	admin := tokenFor(t, cfg, "admin")
	stranger := tokenFor(t, cfg, "invitado")

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"unknown role", http.MethodGet, "/api/turnos/0", stranger, http.StatusForbidden},
		{"inactive admin", http.MethodGet, "/api/usuarios", tokenAs(t, cfg, 5, "admin"), http.StatusForbidden},
		{"demoted admin token", http.MethodGet, "/api/usuarios", tokenAs(t, cfg, 2, "admin"), http.StatusForbidden},
		{"deleted user", http.MethodGet, "/api/turnos/0", tokenAs(t, cfg, 99, "admin"), http.StatusUnauthorized},
		{"usuario cannot update turnos", http.MethodPatch, "/api/turnos/1", usuario, http.StatusForbidden},
		{"empleado cannot delete turnos", http.MethodDelete, "/api/turnos/1", empleado, http.StatusForbidden},
		{"usuario cannot write clientes", http.MethodPost, "/api/clientes", usuario, http.StatusForbidden},
		{"empleado cannot write servicios", http.MethodPost, "/api/servicios", empleado, http.StatusForbidden},
		{"empleado cannot write empleados", http.MethodDelete, "/api/empleados/1", empleado, http.StatusForbidden},
		{"empleado cannot list usuarios", http.MethodGet, "/api/usuarios", empleado, http.StatusForbidden},
		{"usuario cannot list roles", http.MethodGet, "/api/roles", usuario, http.StatusForbidden},
		{"usuario cannot register", http.MethodPost, "/api/auth/register", usuario, http.StatusForbidden},
		{"usuario cannot read audit", http.MethodGet, "/api/audit-logs", usuario, http.StatusForbidden},

		// allowed, rejected later by validation
		{"usuario can book", http.MethodPost, "/api/turnos", usuario, http.StatusBadRequest},
		{"usuario can read turnos", http.MethodGet, "/api/turnos/0", usuario, http.StatusBadRequest},
		{"empleado can write clientes", http.MethodPost, "/api/clientes", empleado, http.StatusBadRequest},
		{"admin can update turnos", http.MethodPatch, "/api/turnos/0", admin, http.StatusBadRequest},
		{"admin can write servicios", http.MethodPatch, "/api/servicios/0", admin, http.StatusBadRequest},
		{"report period validated", http.MethodGet, "/api/turnos/ganancias/horarias", usuario, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, call(r, tc.method, tc.path, tc.token, "{}"))
		})
	}
}

func TestLoginValidatesBody(t *testing.T) {
	r, _ := newRouter(t)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPost, "/api/auth/login", "", `{"user":"admin"}`))
}
