package store

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/security"
	"gorm.io/gorm"
)

// SessionStore persists admin bearer sessions. A session is nothing but a
// database row; validity is derived fresh on every lookup, so there is no
// cache to invalidate.
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore constructs a SessionStore.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create mints a session for an admin with the given lifetime.
func (s *SessionStore) Create(ctx context.Context, adminID uint64, ttl time.Duration) (models.AdminSession, error) {
	session := models.AdminSession{
		ID:        security.NewSessionToken(),
		AdminID:   adminID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if errCreate := s.db.WithContext(ctx).Create(&session).Error; errCreate != nil {
		return models.AdminSession{}, errCreate
	}
	return session, nil
}

// Get returns an unexpired session with its admin loaded. Expired or
// unknown tokens come back as gorm.ErrRecordNotFound.
func (s *SessionStore) Get(ctx context.Context, token string) (models.AdminSession, error) {
	var session models.AdminSession
	errFind := s.db.WithContext(ctx).
		Joins("Admin").
		Where("admin_sessions.id = ? AND admin_sessions.expires_at > ?", token, time.Now().UTC()).
		First(&session).Error
	if errFind != nil {
		return models.AdminSession{}, errFind
	}
	if session.Admin.ID == 0 {
		return models.AdminSession{}, gorm.ErrRecordNotFound
	}
	return session, nil
}

// Delete removes a session row; deleting a missing token is not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Delete(&models.AdminSession{}, "id = ?", token).Error
}

// PurgeExpired deletes all sessions past their expiry and reports how many
// rows were removed.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now().UTC()).
		Delete(&models.AdminSession{})
	return res.RowsAffected, res.Error
}
