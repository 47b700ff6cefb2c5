// Package records defines the record store used by the CLI and its two
// variants: the remote account-scoped store and the local anonymous one.
// The variant is selected once per session (on login/logout), not per call.
package records

import (
	"context"

	"github.com/qrkeeper/qrkeeper/internal/client/models"
)

// Store is the persistence surface the CLI works against.
type Store interface {
	// List returns all records, newest first.
	List(ctx context.Context) ([]models.Record, error)

	// Create persists a new record and returns it with its assigned id.
	Create(ctx context.Context, content, image, logo string) (*models.Record, error)

	// Delete removes a record by id.
	Delete(ctx context.Context, id string) error
}
