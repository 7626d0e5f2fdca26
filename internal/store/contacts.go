package store

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// ContactStore persists contact-form submissions.
type ContactStore struct {
	db *gorm.DB
}

// NewContactStore constructs a ContactStore.
func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create inserts a submission and fills its ID and CreatedAt.
func (s *ContactStore) Create(ctx context.Context, contact *models.Contact) error {
	return s.db.WithContext(ctx).Create(contact).Error
}

// List returns all submissions, oldest first.
func (s *ContactStore) List(ctx context.Context) ([]models.Contact, error) {
	var rows []models.Contact
	err := s.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	return rows, err
}
