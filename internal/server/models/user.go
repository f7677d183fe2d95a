// Package models declares the persistent entities shared by repositories and
// services.
package models

import (
	"slices"
	"time"
)

// User is an account record. PasswordHash holds the bcrypt hash of the
// password; the plaintext is never stored. RefreshTokens is the set of
// currently-valid refresh tokens for the account (the server-side session
// state).
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	UserName      string
	PasswordHash  string
	RefreshTokens []string
	CreatedAt     time.Time
}

// HasRefreshToken reports whether token is currently part of the session state.
func (u *User) HasRefreshToken(token string) bool {
	return slices.Contains(u.RefreshTokens, token)
}

// AddRefreshToken appends token to the session state.
func (u *User) AddRefreshToken(token string) {
	u.RefreshTokens = append(u.RefreshTokens, token)
}

// RemoveRefreshToken removes token from the session state. Removing a token
// that is not present is a no-op.
func (u *User) RemoveRefreshToken(token string) {
	u.RefreshTokens = slices.DeleteFunc(u.RefreshTokens, func(t string) bool {
		return t == token
	})
}

// ClearRefreshTokens revokes every outstanding refresh token. Used as the
// breach response when an unknown or already-consumed token is presented.
func (u *User) ClearRefreshTokens() {
	u.RefreshTokens = nil
}

// UserUpdate is an explicit whitelist of updatable account fields. Nil
// pointers leave the corresponding field untouched. Password, when set, is
// the new plaintext and must be re-hashed by the service before persisting.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Password  *string
}

// IsEmpty reports whether the update changes nothing.
func (u *UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Password == nil
}
