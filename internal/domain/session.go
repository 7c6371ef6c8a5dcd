package domain

import "time"

// Session is the authenticated operator context. It is carried as an explicit
// value (through JWT claims and gin context) instead of ambient globals, and
// expires a fixed window after login regardless of activity.
type Session struct {
	OwnerID     int64     `json:"owner_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	LoginAt     time.Time `json:"login_at"`
}

// StartSession opens a session for the given account at the given moment.
func StartSession(u *User, now time.Time) Session {
	return Session{
		OwnerID:     u.ID,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		LoginAt:     now,
	}
}

// IsExpired reports whether the fixed login window has elapsed.
func (s Session) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LoginAt) > ttl
}

// End clears the session value.
func (s *Session) End() {
	*s = Session{}
}
