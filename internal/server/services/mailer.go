package services

import (
	"context"

	"github.com/qrkeeper/qrkeeper/internal/logging"
)

// Mailer delivers password-reset links. Delivery itself is an external
// collaborator; the service only asks for a send.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email string) error
}

// LogMailer is a stand-in Mailer that records the request instead of
// sending anything.
type LogMailer struct {
	logger logging.Logger
}

// NewLogMailer constructs a LogMailer.
func NewLogMailer(l logging.Logger) *LogMailer {
	return &LogMailer{logger: l.With("module", "mailer")}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email string) error {
	m.logger.Info(ctx, "password reset requested", "email", email)
	return nil
}
