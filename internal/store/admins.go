package store

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// AdminStore persists administrator accounts. Password hashing stays with
// the callers; this layer only moves rows.
type AdminStore struct {
	db *gorm.DB
}

// NewAdminStore constructs an AdminStore.
func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

// GetByUsername returns an admin by unique username.
func (s *AdminStore) GetByUsername(ctx context.Context, username string) (models.Admin, error) {
	var row models.Admin
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	return row, err
}

// Create inserts an admin account.
func (s *AdminStore) Create(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Create(admin).Error
}
