package session

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Data is the stored representation of one browser session. The token is
// the only thing the client holds; everything else lives server-side.
type Data struct {
	Token          string    `json:"token"`
	UserID         int64     `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (d *Data) Expired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}

// NewToken returns a fresh opaque session token.
func NewToken() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
