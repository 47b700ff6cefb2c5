// Package repomanager vends repository implementations bound to a DBTX and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/qrkeeper/qrkeeper/internal/dbx"
	"github.com/qrkeeper/qrkeeper/internal/server/repositories/qrcodes"
	"github.com/qrkeeper/qrkeeper/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a *sql.DB or *sql.Tx,
// so services can run the same code inside and outside transactions.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	QRCodes(db dbx.DBTX) qrcodes.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
