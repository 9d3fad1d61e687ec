package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account allowed to sign in to the timeline.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// AuthCode is a one-time authorization code bound to a PKCE challenge.
type AuthCode struct {
	Code          string
	UserID        uuid.UUID
	ClientID      string
	RedirectURI   string
	CodeChallenge string
	ExpiresAt     time.Time
}

// IsExpired returns true if the code has expired relative to now.
func (c *AuthCode) IsExpired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
