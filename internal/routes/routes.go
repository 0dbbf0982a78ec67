package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/config"
	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/flowmint-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/locker"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/middleware"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/flowmint-scheduler/internal/usecase/appointment"
	ucReport "github.com/BruksfildServices01/flowmint-scheduler/internal/usecase/report"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Locker locker.Locker
	Audit  *audit.Dispatcher
	Log    *zap.Logger

	// Users defaults to the gorm user repository over DB.
	Users middleware.UserFinder
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	db := deps.DB

	users := deps.Users
	if users == nil {
		users = infraRepo.NewUserGormRepository(db)
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		deps.Locker,
		deps.Audit,
		deps.Log,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		deps.Locker,
		deps.Audit,
		deps.Log,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		deps.Audit,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		domain.BusinessHours{Open: cfg.BusinessOpen, Close: cfg.BusinessClose},
		time.Duration(cfg.SlotStepMinutes)*time.Minute,
		cfg.Timezone,
	)

	earningsUC := ucReport.NewGetEarnings(reportRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(db, deps.Audit)
	authHandler := handlers.NewAuthHandler(db, cfg, userHandler)
	meHandler := handlers.NewMeHandler(db)
	roleHandler := handlers.NewRoleHandler(db, deps.Audit)

	clientHandler := handlers.NewClientHandler(db, deps.Audit, cfg.CheckEmailDomain)
	employeeHandler := handlers.NewEmployeeHandler(db, deps.Audit)
	serviceHandler := handlers.NewServiceHandler(db, deps.Audit)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		ucAppointment.NewGetAppointment(appointmentRepo),
		ucAppointment.NewListAppointments(appointmentRepo),
		availabilityUC,
		cfg.Timezone,
	)
	reportHandler := handlers.NewReportHandler(earningsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.Timezone)

	// ======================================================
	// ROLE POLICY
	// ======================================================
	anyRole := middleware.RequireRoles(models.RoleAdmin, models.RoleUser, models.RoleEmployee)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleEmployee)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, users), anyRole)
		{
			secured.POST("/auth/register", adminOnly, authHandler.Register)
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// TURNOS
			// ------------------------------
			turnos := secured.Group("/turnos")
			{
				turnos.GET("", appointmentHandler.List)
				turnos.POST("", appointmentHandler.Create)
				turnos.GET("/disponibilidad", appointmentHandler.Availability)
				turnos.GET("/cliente/:cliente_id", appointmentHandler.ListByClient)
				turnos.GET("/ganancias/:periodo", reportHandler.Earnings)
				turnos.GET("/:id", appointmentHandler.Get)
				turnos.PATCH("/:id", adminOnly, appointmentHandler.Update)
				turnos.DELETE("/:id", adminOnly, appointmentHandler.Delete)
			}

			// ------------------------------
			// CATALOG
			// ------------------------------
			clientes := secured.Group("/clientes")
			{
				clientes.GET("", clientHandler.List)
				clientes.GET("/:id", clientHandler.Get)
				clientes.POST("", staff, clientHandler.Create)
				clientes.PATCH("/:id", staff, clientHandler.Update)
				clientes.DELETE("/:id", staff, clientHandler.Delete)
			}

			empleados := secured.Group("/empleados")
			{
				empleados.GET("", employeeHandler.List)
				empleados.GET("/:id", employeeHandler.Get)
				empleados.POST("", adminOnly, employeeHandler.Create)
				empleados.PATCH("/:id", adminOnly, employeeHandler.Update)
				empleados.DELETE("/:id", adminOnly, employeeHandler.Delete)
			}

			servicios := secured.Group("/servicios")
			{
				servicios.GET("", serviceHandler.List)
				servicios.GET("/:id", serviceHandler.Get)
				servicios.POST("", adminOnly, serviceHandler.Create)
				servicios.PATCH("/:id", adminOnly, serviceHandler.Update)
				servicios.DELETE("/:id", adminOnly, serviceHandler.Delete)
			}

			// ------------------------------
			// ADMINISTRATION
			// ------------------------------
			usuarios := secured.Group("/usuarios", adminOnly)
			{
				usuarios.GET("", userHandler.List)
				usuarios.GET("/:id", userHandler.Get)
				usuarios.POST("", userHandler.Create)
				usuarios.PATCH("/:id", userHandler.Update)
				usuarios.DELETE("/:id", userHandler.Delete)
			}

			roles := secured.Group("/roles", adminOnly)
			{
				roles.GET("", roleHandler.List)
				roles.GET("/:id", roleHandler.Get)
				roles.POST("", roleHandler.Create)
				roles.PATCH("/:id", roleHandler.Update)
				roles.DELETE("/:id", roleHandler.Delete)
			}

			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
