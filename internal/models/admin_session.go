package models

import "time"

// AdminSession maps an opaque bearer token to an admin with an expiry.
// The token itself is the primary key; a session is valid only while
// ExpiresAt is in the future. Logout deletes the row.
type AdminSession struct {
	ID string `gorm:"type:text;primaryKey"` // Opaque session token.

	AdminID uint64 `gorm:"not null;index"`        // Owning admin ID.
	Admin   Admin  `gorm:"foreignKey:AdminID"`    // Owning admin.

	ExpiresAt time.Time `gorm:"not null"`                // Validity deadline.
	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}
