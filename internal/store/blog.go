package store

import (
	"context"
	"strings"
	"time"

	dbutil "github.com/devfolio/portfolio-api/internal/db"
	"github.com/devfolio/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// BlogStore persists blog posts.
type BlogStore struct {
	db *gorm.DB
}

// NewBlogStore constructs a BlogStore.
func NewBlogStore(db *gorm.DB) *BlogStore {
	return &BlogStore{db: db}
}

// BlogFilter narrows the public listing. Zero values mean no filtering.
type BlogFilter struct {
	Category string // Exact category match.
	Search   string // Case-insensitive substring over title and excerpt.
}

// ListPublished returns published posts, newest first by publication time.
func (s *BlogStore) ListPublished(ctx context.Context, filter BlogFilter) ([]models.BlogPost, error) {
	q := s.db.WithContext(ctx).Where("is_published = ?", true)

	if category := strings.TrimSpace(filter.Category); category != "" {
		q = q.Where("category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := dbutil.NormalizeLikePattern(s.db, "%"+search+"%")
		q = q.Where(
			s.db.Where(dbutil.CaseInsensitiveLikeExpr(s.db, "title"), pattern).
				Or(dbutil.CaseInsensitiveLikeExpr(s.db, "excerpt"), pattern),
		)
	}

	var rows []models.BlogPost
	err := q.Order("published_at DESC").Find(&rows).Error
	return rows, err
}

// Get returns a post by ID regardless of its published flag.
func (s *BlogStore) Get(ctx context.Context, id uint64) (models.BlogPost, error) {
	var row models.BlogPost
	err := s.db.WithContext(ctx).First(&row, id).Error
	return row, err
}

// GetBySlug returns a post by its unique slug.
func (s *BlogStore) GetBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	var row models.BlogPost
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
	return row, err
}

// Create inserts a post, defaulting PublishedAt to now when unset.
func (s *BlogStore) Create(ctx context.Context, post *models.BlogPost) error {
	if post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	return s.db.WithContext(ctx).Create(post).Error
}

// Update applies the supplied columns to an existing post and returns the
// updated row. Returns gorm.ErrRecordNotFound when the ID is absent.
func (s *BlogStore) Update(ctx context.Context, id uint64, changes map[string]any) (models.BlogPost, error) {
	var row models.BlogPost
	if errFind := s.db.WithContext(ctx).First(&row, id).Error; errFind != nil {
		return models.BlogPost{}, errFind
	}
	if len(changes) > 0 {
		if errUpdate := s.db.WithContext(ctx).Model(&row).Updates(changes).Error; errUpdate != nil {
			return models.BlogPost{}, errUpdate
		}
		if errReload := s.db.WithContext(ctx).First(&row, id).Error; errReload != nil {
			return models.BlogPost{}, errReload
		}
	}
	return row, nil
}

// Delete removes a post; deleting a missing ID is not an error.
func (s *BlogStore) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&models.BlogPost{}, id).Error
}
