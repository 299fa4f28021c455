package service

import (
	"context"
	"net/url"

	"github.com/solarpanel/tracker-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CanFrameService holds the telemetry rules: required fields, server-side
// timestamps and list filtering.
type CanFrameService interface {
	Get(ctx context.Context, id int64) (models.CanFrame, error)
	List(ctx context.Context, filter models.CanFrameFilter) ([]models.CanFrame, error)
	Create(ctx context.Context, input models.CanFrameInput) (int64, error)
	Update(ctx context.Context, id int64, input models.CanFrameInput) error
	Delete(ctx context.Context, id int64) error
	// ParseFilter turns query parameters into a filter. Keys that are not
	// telemetry fields or date bounds are ignored.
	ParseFilter(ctx context.Context, query url.Values) (models.CanFrameFilter, error)
}

// CanFrameServiceWrapper defines middleware composition for CanFrameService.
// Implementations wrap an existing CanFrameService to add behavior such as
// validation.
type CanFrameServiceWrapper interface {
	Wrap(CanFrameService) CanFrameService
}

// AccountService manages dashboard accounts. No read method ever exposes a
// password hash.
type AccountService interface {
	Register(ctx context.Context, req models.LoginRequest) (models.Account, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (models.Account, error)
	Get(ctx context.Context, id int64) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, id int64, update models.AccountUpdate) error
	Delete(ctx context.Context, id int64) error
}

// PasswordResetService runs the two-phase reset flow: issue a token, then
// redeem it once for a new password.
type PasswordResetService interface {
	Request(ctx context.Context, req models.PasswordResetRequest) (models.ResetTokenResponse, error)
	Consume(ctx context.Context, req models.PasswordResetConsume) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfoResponse
}

// TokenNotifier delivers a freshly issued reset token to its owner out of
// band.
type TokenNotifier interface {
	NotifyResetToken(ctx context.Context, token models.ResetToken) error
}

// PasswordHasher produces and verifies salted one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenGenerator issues opaque random tokens.
type TokenGenerator interface {
	Generate() (string, error)
}
