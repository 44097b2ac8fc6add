// Package models contains the server-side domain records. Every record apart
// from User is owned by exactly one user and is only ever read or written
// through queries filtered on that owner.
package models

import "time"

// User is an identity record. PasswordHash is nil for accounts created
// through the OAuth flow; such accounts cannot log in with a password.
// The hash itself never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     *string   `json:"username"`
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the public view of a User returned by the /me endpoint.
type Profile struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Username    *string `json:"username"`
	HasPassword bool    `json:"hasPassword"`
}

// Profile derives the client-safe view of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		HasPassword: u.PasswordHash != nil,
	}
}
