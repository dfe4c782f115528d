package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mpetrov/portfolio-site-backend/models"
)

type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db}
}

// FindByUsername returns the admin with the exact username, or nil when no
// such row exists.
func (r *AdminRepo) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Add inserts a new admin credential into the database
func (r *AdminRepo) Add(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}
