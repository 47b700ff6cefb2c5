package models

import "time"

// QRCode is a stored QR record owned by exactly one user. Image and Logo
// are data-URL-encoded raster images; Logo may be empty.
type QRCode struct {
	ID        string
	UserID    string
	Content   string
	Image     string
	Logo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
