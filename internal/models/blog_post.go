package models

import (
	"time"

	"gorm.io/datatypes"
)

// BlogPost represents a blog article. Public listings include only
// published posts, newest first by PublishedAt.
type BlogPost struct {
	ID uint64 `json:"id" gorm:"primaryKey;autoIncrement"` // Primary key.

	Title   string `json:"title" gorm:"type:text;not null"`                // Post title.
	Slug    string `json:"slug" gorm:"type:text;not null;uniqueIndex"`     // Unique URL slug.
	Content string `json:"content" gorm:"type:text;not null"`              // Full body.
	Excerpt string `json:"excerpt" gorm:"type:text;not null"`              // Listing teaser.

	FeaturedImage *string `json:"featuredImage" gorm:"type:text"` // Optional header image URL.

	Tags     datatypes.JSONSlice[string] `json:"tags" gorm:"not null"`     // Post tags.
	Category string                      `json:"category" gorm:"type:text;not null"` // Post category.

	IsPublished bool       `json:"isPublished" gorm:"not null"` // Included in public listing when true.
	PublishedAt *time.Time `json:"publishedAt"`                 // Publication time; set on create when absent.

	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
