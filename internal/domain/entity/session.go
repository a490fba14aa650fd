// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a server-side login session. Logout deletes the record,
// which invalidates the token even before it expires.
type Session struct {
	ID        uuid.UUID // The unique identifier of the session record.
	UserID    uuid.UUID // The account this session belongs to.
	TokenHash string    // SHA-256 hash of the raw session token.
	ExpiresAt time.Time // The time when this session becomes invalid.
	CreatedAt time.Time // Timestamp of when the user signed in.
}
