package store

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// ProjectStore persists portfolio projects.
type ProjectStore struct {
	db *gorm.DB
}

// NewProjectStore constructs a ProjectStore.
func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// ListActive returns active projects in public listing order.
func (s *ProjectStore) ListActive(ctx context.Context) ([]models.Project, error) {
	var rows []models.Project
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&rows).Error
	return rows, err
}

// Get returns a project by ID regardless of its active flag.
func (s *ProjectStore) Get(ctx context.Context, id uint64) (models.Project, error) {
	var row models.Project
	err := s.db.WithContext(ctx).First(&row, id).Error
	return row, err
}

// Create inserts a project.
func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	return s.db.WithContext(ctx).Create(project).Error
}

// Update applies the supplied columns to an existing project and returns
// the updated row. Returns gorm.ErrRecordNotFound when the ID is absent.
func (s *ProjectStore) Update(ctx context.Context, id uint64, changes map[string]any) (models.Project, error) {
	var row models.Project
	if errFind := s.db.WithContext(ctx).First(&row, id).Error; errFind != nil {
		return models.Project{}, errFind
	}
	if len(changes) > 0 {
		if errUpdate := s.db.WithContext(ctx).Model(&row).Updates(changes).Error; errUpdate != nil {
			return models.Project{}, errUpdate
		}
		if errReload := s.db.WithContext(ctx).First(&row, id).Error; errReload != nil {
			return models.Project{}, errReload
		}
	}
	return row, nil
}

// Delete removes a project; deleting a missing ID is not an error.
func (s *ProjectStore) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&models.Project{}, id).Error
}

// Count returns the number of project rows.
func (s *ProjectStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Project{}).Count(&n).Error
	return n, err
}
