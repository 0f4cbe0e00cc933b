// Package models defines the persistent domain records shared by
// repositories, services, and the HTTP layer.
package models

import "time"

// User is an account record. PasswordHash is a bcrypt hash and is never
// serialized to clients.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
