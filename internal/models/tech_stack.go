package models

import "time"

// TechStack represents one technology tile on the tech-stack section.
type TechStack struct {
	ID uint64 `json:"id" gorm:"primaryKey;autoIncrement"` // Primary key.

	Name        string `json:"name" gorm:"type:text;not null"`        // Technology name.
	Icon        string `json:"icon" gorm:"type:text;not null"`        // Icon class or short label.
	Bg          string `json:"bg" gorm:"type:text;not null"`          // Tile background class.
	Description string `json:"description" gorm:"type:text;not null"` // One-line description.
	Category    string `json:"category" gorm:"type:text;not null"`    // frontend, backend, database, tools.

	IsActive  bool `json:"isActive" gorm:"not null"`            // Included in public listing when true.
	SortOrder int  `json:"sortOrder" gorm:"not null;default:0"` // Public listing order, ascending.

	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"` // Creation timestamp.
}
