package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/mpetrov/portfolio-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, newest first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update overwrites a project's fields in a single UPDATE statement and
// returns the number of rows matched. Zero means no project with that id
// exists; existence is never pre-checked, so concurrent writers simply apply
// last-write-wins.
func (r *ProjectRepo) Update(ctx context.Context, id uint, project *models.Project) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       project.Title,
		"description": project.Description,
		"image_url":   project.ImageURL,
		"project_url": project.ProjectURL,
	})
	return result.RowsAffected, result.Error
}

// Delete removes a project by id and returns the number of rows deleted.
func (r *ProjectRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	return result.RowsAffected, result.Error
}
