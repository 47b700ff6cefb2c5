// Package qrcodes provides the PostgreSQL-backed repository for QR records.
package qrcodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/qrkeeper/qrkeeper/internal/common"
	"github.com/qrkeeper/qrkeeper/internal/dbx"
	"github.com/qrkeeper/qrkeeper/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new record; id and timestamps are assigned by the database.
func (r *PostgresRepository) Create(ctx context.Context, qr *models.QRCode) (*models.QRCode, error) {
	query :=
		`INSERT INTO qr_codes (user_id, content, image, logo)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		qr.UserID, qr.Content, qr.Image, qr.Logo).Scan(&qr.ID, &qr.CreatedAt, &qr.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return qr, nil
}

// ListByUser returns all records owned by userID, newest-created first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.QRCode, error) {
	query :=
		`SELECT id, user_id, content, image, COALESCE(logo, ''), created_at, updated_at FROM qr_codes
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select qr codes: %w", err)
	}
	defer rows.Close()

	var result []*models.QRCode
	for rows.Next() {
		var item models.QRCode
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Content, &item.Image, &item.Logo,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single record. Missing rows yield common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.QRCode, error) {
	query :=
		`SELECT id, user_id, content, image, COALESCE(logo, ''), created_at, updated_at FROM qr_codes
		 WHERE id = $1
		 `

	qr := &models.QRCode{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&qr.ID, &qr.UserID, &qr.Content, &qr.Image, &qr.Logo, &qr.CreatedAt, &qr.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return qr, nil
}

// Delete removes a record by id. Missing rows yield common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM qr_codes WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
