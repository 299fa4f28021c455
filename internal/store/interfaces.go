package store

import (
	"context"
	"time"

	"github.com/solarpanel/tracker-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CanFrameRepository persists telemetry records of the can_frames table.
type CanFrameRepository interface {
	Get(ctx context.Context, id int64) (models.CanFrame, error)
	List(ctx context.Context, filter models.CanFrameFilter) ([]models.CanFrame, error)
	Create(ctx context.Context, frame models.CanFrame) (int64, error)
	Update(ctx context.Context, frame models.CanFrame) error
	Delete(ctx context.Context, id int64) error
}

// AccountRepository persists rows of the login table. Only FindByEmail reads
// the password hash; every other read projects id and email.
type AccountRepository interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	FindByID(ctx context.Context, id int64) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, id int64, email string, passwordHash *string) error
	Delete(ctx context.Context, id int64) error
}

// ResetTokenRepository persists rows of the reset_password table.
type ResetTokenRepository interface {
	Create(ctx context.Context, token models.ResetToken) (int64, error)
	FindValid(ctx context.Context, token string, now time.Time) (models.ResetToken, error)
	// Redeem marks the token used and stores newHash as the password of the
	// token's account in a single transaction. It returns the account email.
	Redeem(ctx context.Context, token, newHash string, now time.Time) (string, error)
}

// ErrorClassificator interprets driver errors of one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
