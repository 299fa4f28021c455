package service

import (
	"context"

	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/models"
)

// logNotifier records that a reset token was issued. It is the only
// TokenNotifier shipped: e-mail delivery is out of scope, so delivery ends at
// the log and the token itself is never logged. Unless APP_EXPOSE_RESET_TOKEN
// echoes the token to the caller, nobody can redeem it; NewPasswordResetService
// warns about that at startup.
type logNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) TokenNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) NotifyResetToken(ctx context.Context, token models.ResetToken) error {
	logger.FromContext(ctx).Info().
		Str("func", "*logNotifier.NotifyResetToken").
		Str("email", token.Email).
		Time("expires_at", token.ExpiresAt).
		Msg("password reset token issued")
	return nil
}
