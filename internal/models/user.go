package models

// User is the legacy auth entity kept for schema compatibility. Admin
// accounts live in Admin; no route authenticates against this table.
type User struct {
	ID uint64 `json:"id" gorm:"primaryKey;autoIncrement"` // Primary key.

	Username string `json:"username" gorm:"type:text;not null;uniqueIndex"` // Unique login name.
	Password string `json:"-" gorm:"type:text;not null"`                    // Password (never serialized).
}
