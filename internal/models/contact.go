package models

import "time"

// Contact stores a single contact-form submission. Rows are write-once:
// the public form inserts them and nothing updates them afterwards.
type Contact struct {
	ID uint64 `json:"id" gorm:"primaryKey;autoIncrement"` // Primary key.

	Name    string `json:"name" gorm:"type:text;not null"`    // Sender name.
	Email   string `json:"email" gorm:"type:text;not null"`   // Sender email.
	Subject string `json:"subject" gorm:"type:text"`          // Optional subject line.
	Message string `json:"message" gorm:"type:text;not null"` // Message body.

	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"` // Submission timestamp.
}
