// Package models defines client-side data models used by the QRKeeper CLI.
package models

import "time"

// Record is a QR record as the client sees it, both in the remote account
// store and in the local anonymous slot.
type Record struct {
	// ID is server-assigned for remote records and client-generated
	// (epoch milliseconds) for local ones.
	ID string `json:"id"`

	// Content is the encoded text or URL.
	Content string `json:"content"`

	// Image is the rendered code as a PNG data URL.
	Image string `json:"image"`

	// Logo is the raw logo data URL, kept for future regeneration.
	Logo string `json:"logo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is the account summary returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
