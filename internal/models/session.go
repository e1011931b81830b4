package models

import "time"

// Session is a durable server-side login session. The primary key is
// the opaque token carried by the session cookie; nothing about the
// user is derivable from it.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
}

func (session Session) Expired(now time.Time) bool {
	return !session.ExpiresAt.After(now)
}
