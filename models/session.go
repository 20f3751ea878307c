package models

import "time"

// Session maps an issued bearer token to the account it authenticates.
// Sessions are created at login time and resolved on every authenticated
// request; the token string itself is a signed JWT, but authentication is
// performed purely by looking the presented string up in the session store.
type Session struct {
	// Token is the compact signed JWT issued at login.
	Token string `json:"-"`

	// UserID is the account the session belongs to.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment after which the session is no longer accepted.
	ExpiresAt time.Time `json:"-"`

	// CreatedAt is the session issue timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
