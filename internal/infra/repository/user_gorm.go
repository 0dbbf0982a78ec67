package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// FindUser loads a user with its role. Used on every authenticated request.
func (r *UserGormRepository) FindUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		First(&user, id).Error; err != nil {
		return nil, translate(err, "user_not_found", "get_user_failed")
	}
	return &user, nil
}
