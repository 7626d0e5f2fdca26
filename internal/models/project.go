package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a portfolio project card.
type Project struct {
	ID uint64 `json:"id" gorm:"primaryKey;autoIncrement"` // Primary key.

	Title       string `json:"title" gorm:"type:text;not null"`       // Project title.
	Description string `json:"description" gorm:"type:text;not null"` // Short description.
	Image       string `json:"image" gorm:"type:text;not null"`       // Cover image URL.
	Category    string `json:"category" gorm:"type:text;not null"`    // web-app, api, tools.

	Tags        datatypes.JSONSlice[string] `json:"tags" gorm:"not null"`        // All tags.
	PrimaryTags datatypes.JSONSlice[string] `json:"primaryTags" gorm:"not null"` // Tags highlighted on the card.

	DemoURL   string `json:"demoUrl" gorm:"type:text;not null"`   // Live demo link.
	GithubURL string `json:"githubUrl" gorm:"type:text;not null"` // Repository link.

	IsActive  bool `json:"isActive" gorm:"not null"`            // Included in public listing when true.
	SortOrder int  `json:"sortOrder" gorm:"not null;default:0"` // Public listing order, ascending.

	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"` // Creation timestamp.
}
