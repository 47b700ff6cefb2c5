// Package models defines server-side data models persisted in PostgreSQL.
package models

import "time"

// User is an account record. Email is unique; PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
