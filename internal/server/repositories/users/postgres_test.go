package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
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

func TestCreate_OK(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	created := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "alice@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", created))

	u, err := repo.Create(context.Background(), &models.User{
		Name: "Alice", Email: "alice@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, created, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{
		Name: "Alice", Email: "alice@example.com", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, common.ErrorEmailAlreadyExists)
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at FROM users`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByEmail_OK(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	created := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow("u-1", "Alice", "alice@example.com", "hash", created)
	mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at FROM users`).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "hash", u.PasswordHash)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at FROM users`).
		WithArgs("u-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "u-404")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
