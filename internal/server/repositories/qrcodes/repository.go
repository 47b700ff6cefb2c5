package qrcodes

import (
	"context"

	"github.com/qrkeeper/qrkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, qr *models.QRCode) (*models.QRCode, error)
	ListByUser(ctx context.Context, userID string) ([]*models.QRCode, error)
	GetByID(ctx context.Context, id string) (*models.QRCode, error)
	Delete(ctx context.Context, id string) error
}
