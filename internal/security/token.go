package security

import "github.com/google/uuid"

// NewSessionToken mints an opaque session identifier. The token carries no
// claims; it is only meaningful as a key into the admin_sessions table.
func NewSessionToken() string {
	return uuid.NewString()
}
