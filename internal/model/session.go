package model

import "time"

// Session is the server-side half of a login. The cookie only names it.
type Session struct {
	ID        string
	UserID    int64
	Remember  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionToken is what the web layer writes into the session cookie.
// Persistent tokens get an explicit cookie expiry; others live for the
// browser session.
type SessionToken struct {
	Value      string
	ExpiresAt  time.Time
	Persistent bool
}
