package common

import "time"

// UserResult is the safe view of a user record; the password hash never
// leaves the repository layer through it.
type UserResult struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	IsAdmin   bool      `json:"is_admin"`
}

// SessionView mirrors the identity carried by a session token.
type SessionView struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
