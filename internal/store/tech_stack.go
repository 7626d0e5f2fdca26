package store

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// TechStackStore persists tech-stack entries.
type TechStackStore struct {
	db *gorm.DB
}

// NewTechStackStore constructs a TechStackStore.
func NewTechStackStore(db *gorm.DB) *TechStackStore {
	return &TechStackStore{db: db}
}

// ListActive returns active entries in public listing order.
func (s *TechStackStore) ListActive(ctx context.Context) ([]models.TechStack, error) {
	var rows []models.TechStack
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&rows).Error
	return rows, err
}

// Get returns an entry by ID regardless of its active flag.
func (s *TechStackStore) Get(ctx context.Context, id uint64) (models.TechStack, error) {
	var row models.TechStack
	err := s.db.WithContext(ctx).First(&row, id).Error
	return row, err
}

// Create inserts an entry.
func (s *TechStackStore) Create(ctx context.Context, tech *models.TechStack) error {
	return s.db.WithContext(ctx).Create(tech).Error
}

// Update applies the supplied columns to an existing entry and returns the
// updated row. Returns gorm.ErrRecordNotFound when the ID is absent.
func (s *TechStackStore) Update(ctx context.Context, id uint64, changes map[string]any) (models.TechStack, error) {
	var row models.TechStack
	if errFind := s.db.WithContext(ctx).First(&row, id).Error; errFind != nil {
		return models.TechStack{}, errFind
	}
	if len(changes) > 0 {
		if errUpdate := s.db.WithContext(ctx).Model(&row).Updates(changes).Error; errUpdate != nil {
			return models.TechStack{}, errUpdate
		}
		if errReload := s.db.WithContext(ctx).First(&row, id).Error; errReload != nil {
			return models.TechStack{}, errReload
		}
	}
	return row, nil
}

// Delete removes an entry; deleting a missing ID is not an error.
func (s *TechStackStore) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&models.TechStack{}, id).Error
}

// Count returns the number of tech-stack rows.
func (s *TechStackStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.TechStack{}).Count(&n).Error
	return n, err
}
