package records

import (
	"context"

	"github.com/qrkeeper/qrkeeper/internal/client/api"
	"github.com/qrkeeper/qrkeeper/internal/client/models"
)

// RemoteStore keeps records in the authenticated account on the server.
type RemoteStore struct {
	api   *api.Client
	token string
}

// NewRemoteStore constructs a RemoteStore bound to a session token.
func NewRemoteStore(c *api.Client, token string) *RemoteStore {
	return &RemoteStore{api: c, token: token}
}

func (s *RemoteStore) List(ctx context.Context) ([]models.Record, error) {
	return s.api.ListQRs(ctx, s.token)
}

func (s *RemoteStore) Create(ctx context.Context, content, image, logo string) (*models.Record, error) {
	return s.api.CreateQR(ctx, s.token, content, image, logo)
}

func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	return s.api.DeleteQR(ctx, s.token, id)
}
