package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mpetrov/portfolio-site-backend/auth"
	"github.com/mpetrov/portfolio-site-backend/models"
)

// Default administrator credential seeded at startup when absent. There is
// no API to change it afterwards; override by editing the row directly.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type Database struct {
	db          *gorm.DB
	adminRepo   *AdminRepo
	projectRepo *ProjectRepo
	messageRepo *MessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		adminRepo:   NewAdminRepo(db),
		projectRepo: NewProjectRepo(db),
		messageRepo: NewMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

// Migrate creates or updates the schema for every model. Run once at
// startup, before the server accepts requests, so no request path ever
// creates tables lazily.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.Admin{},
		&models.Project{},
		&models.ContactMessage{},
	)
}

// SeedDefaultAdmin inserts the default credential if no row with the default
// username exists. The unique index on username makes a concurrent duplicate
// seed fail at the store rather than produce a second row; that failure is
// treated as "already seeded".
func (d Database) SeedDefaultAdmin(ctx context.Context) error {
	existing, err := d.adminRepo.FindByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return fmt.Errorf("look up default admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := models.Admin{
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
	}
	if err := d.adminRepo.Add(ctx, &admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("seed default admin: %w", err)
	}
	return nil
}
