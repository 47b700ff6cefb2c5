package qrcodes

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrkeeper/qrkeeper/internal/common"
	"github.com/qrkeeper/qrkeeper/internal/server/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO qr_codes`).
		WithArgs("u-1", "https://example.com", "data:image/png;base64,AAA=", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("qr-1", now, now))

	qr, err := repo.Create(context.Background(), &models.QRCode{
		UserID:  "u-1",
		Content: "https://example.com",
		Image:   "data:image/png;base64,AAA=",
	})
	require.NoError(t, err)
	assert.Equal(t, "qr-1", qr.ID)
	assert.Equal(t, now, qr.CreatedAt)
	assert.Equal(t, now, qr.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "image", "logo", "created_at", "updated_at"}).
		AddRow("qr-2", "u-1", "second", "img2", "", newer, newer).
		AddRow("qr-1", "u-1", "first", "img1", "logo1", older, older)

	mock.ExpectQuery(`SELECT .+ FROM qr_codes\s+WHERE user_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs("u-1").
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "qr-2", list[0].ID)
	assert.Equal(t, "qr-1", list[1].ID)
	assert.Equal(t, "logo1", list[1].Logo)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM qr_codes`).
		WithArgs("qr-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "qr-404")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_OK(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`DELETE FROM qr_codes WHERE id = \$1`).
		WithArgs("qr-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "qr-1"))
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`DELETE FROM qr_codes WHERE id = \$1`).
		WithArgs("qr-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "qr-404"), common.ErrorNotFound)
}
