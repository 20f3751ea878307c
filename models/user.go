package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user. It doubles as
	// the owner id scoping the user's vaulted cards.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is hashed before it ever reaches the store and is
	// never serialized back to callers.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id digest persisted for the account.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
