package db

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/config"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

// DefaultServices is the starting catalog of an empty salon.
var DefaultServices = []models.Service{
	{Name: "Corte", Description: "Corte de cabello", Price: decimal.RequireFromString("15.00"), DurationMin: 30},
	{Name: "Coloración", Description: "Coloración completa", Price: decimal.RequireFromString("45.00"), DurationMin: 90},
	{Name: "Barba", Description: "Arreglo de barba", Price: decimal.RequireFromString("10.00"), DurationMin: 20},
	{Name: "Masaje", Description: "Masaje capilar", Price: decimal.RequireFromString("20.00"), DurationMin: 45},
}

const adminUsername = "admin"

// Seed creates the roles, the initial administrator and, on an empty
// catalog, the default services. It is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// --------------------------------------------------
		// Roles
		// --------------------------------------------------
		var adminRole models.Role
		for _, name := range models.SeedRoles {
			role := models.Role{Name: name}
			if err := tx.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
				return fmt.Errorf("seed role %s: %w", name, err)
			}
			if name == models.RoleAdmin {
				adminRole = role
			}
		}

		// --------------------------------------------------
		// Administrator
		// --------------------------------------------------
		var admins int64
		if err := tx.Model(&models.User{}).
			Where("\"user\" = ?", adminUsername).
			Count(&admins).Error; err != nil {
			return fmt.Errorf("count admin: %w", err)
		}
		if admins == 0 {
			hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash admin password: %w", err)
			}
			admin := models.User{
				FirstName:    "Admin",
				LastName:     "FlowMint",
				Username:     adminUsername,
				PasswordHash: string(hashed),
				RoleID:       adminRole.ID,
				Status:       models.UserActive,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			log.Info("seeded administrator", zap.String("user", adminUsername))
		}

		// --------------------------------------------------
		// Services
		// --------------------------------------------------
		var services int64
		if err := tx.Model(&models.Service{}).Count(&services).Error; err != nil {
			return fmt.Errorf("count services: %w", err)
		}
		if services == 0 {
			catalog := append([]models.Service(nil), DefaultServices...)
			if err := tx.Create(&catalog).Error; err != nil {
				return fmt.Errorf("seed services: %w", err)
			}
			log.Info("seeded services", zap.Int("count", len(catalog)))
		}

		return nil
	})
}
