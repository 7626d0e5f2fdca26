package models

import "time"

// Admin represents an administrator account stored in the database.
// Passwords are bcrypt hashes; handlers expose only id/username/email.
type Admin struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Username string `gorm:"type:text;not null;uniqueIndex"` // Unique login name.
	Password string `gorm:"type:text;not null"`             // Hashed password.
	Email    string `gorm:"type:text;not null;uniqueIndex"` // Unique contact email.

	IsActive bool `gorm:"not null"` // Whether the admin can sign in.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
