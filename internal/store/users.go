package store

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// UserStore persists legacy user rows. Kept for schema compatibility with
// earlier deployments; no endpoint authenticates against it.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore constructs a UserStore.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Get returns a user by ID.
func (s *UserStore) Get(ctx context.Context, id uint64) (models.User, error) {
	var row models.User
	err := s.db.WithContext(ctx).First(&row, id).Error
	return row, err
}

// GetByUsername returns a user by unique username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var row models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	return row, err
}

// Create inserts a user row.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}
