package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/qrkeeper/qrkeeper/internal/common"
	"github.com/qrkeeper/qrkeeper/internal/server/models"
	"github.com/qrkeeper/qrkeeper/internal/server/repositories/repomanager"
)

// QRService implements the account-scoped QR record operations. Every
// record has exactly one owner; only that owner may list or delete it.
type QRService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewQRService constructs a QRService.
func NewQRService(db *sql.DB, m repomanager.RepositoryManager) *QRService {
	return &QRService{db: db, repomanager: m}
}

// List returns all records owned by userID, newest-created first.
func (s *QRService) List(ctx context.Context, userID string) ([]*models.QRCode, error) {
	repo := s.repomanager.QRCodes(s.db)
	list, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing qr codes: %w", err)
	}
	return list, nil
}

// Create validates and persists a new record for userID. The identifier and
// timestamps are server-assigned.
func (s *QRService) Create(ctx context.Context, userID, content, image, logo string) (*models.QRCode, error) {
	if content == "" || image == "" {
		return nil, fmt.Errorf("%w: content and image are required", common.ErrorValidation)
	}

	repo := s.repomanager.QRCodes(s.db)
	qr, err := repo.Create(ctx, &models.QRCode{
		UserID:  userID,
		Content: content,
		Image:   image,
		Logo:    logo,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating qr code: %w", err)
	}
	return qr, nil
}

// Delete removes the record with the given id, provided userID owns it.
// Unknown ids yield common.ErrorNotFound; foreign records yield
// common.ErrorForbidden and stay intact.
func (s *QRService) Delete(ctx context.Context, userID, id string) error {
	// The column is a UUID; a malformed id can never match a record.
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}

	repo := s.repomanager.QRCodes(s.db)
	qr, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error loading qr code: %w", err)
	}

	if qr.UserID != userID {
		return common.ErrorForbidden
	}

	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting qr code: %w", err)
	}
	return nil
}
