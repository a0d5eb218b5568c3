package entities

import "time"

// Session is a bearer credential binding an opaque token to a wallet
// address until it expires.
type Session struct {
	Token     string
	Address   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
