// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. Besides the unique
// username/email pair it carries the bearer-token columns: a user holds at
// most one active token at a time, and a new login supersedes the old one.
type User struct {
	ID           int64     // Auto-incremented primary key.
	Username     string    // Unique login name, letters/digits/underscores.
	Email        string    // Unique contact email, also usable as a login identifier.
	PasswordHash string    // bcrypt digest of the user's password, never the plaintext.
	Token        string    // Current opaque bearer token; empty when logged out.
	TokenValid   bool      // False once the token has been revoked.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last mutation (login/logout included).
}

// Summary is the public projection of a User, safe to return to clients.
type Summary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Summary strips credential material from the user.
func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username, Email: u.Email}
}
