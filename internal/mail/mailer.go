// Package mail abstracts verification code delivery. Actual delivery is
// an external collaborator; the default implementation only logs, which
// is enough for local development together with cmd/seed.
package mail

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// Mailer delivers verification codes to an email address.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}

// LogMailer writes would-be deliveries to the structured log instead of
// sending them.
type LogMailer struct {
	logger zerolog.Logger
}

// NewLogMailer creates a mailer that logs deliveries.
func NewLogMailer() *LogMailer {
	return &LogMailer{
		logger: zerolog.New(os.Stdout).With().Timestamp().Str("component", "mailer").Logger(),
	}
}

// SendVerificationCode logs the code instead of delivering it.
func (m *LogMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	m.logger.Info().Str("email", email).Str("code", code).Msg("verification code issued")
	return nil
}
