package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/solarpanel/tracker-api/models"
)

// Field names accepted by [RequestValidator.Validate] for scoping.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAction      = "action"
	FieldToken       = "token"
	FieldNewPassword = "new_password"
)

var allowedActions = []string{
	models.ActionRegister,
	models.ActionLogin,
}

// RequestValidator checks the request payloads of the tracker API.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CanFrameInput:
		return v.validateCanFrameInput(value)
	case *models.CanFrameInput:
		return v.validateCanFrameInput(*value)

	case models.CanFrameFilter:
		return v.validateCanFrameFilter(value)
	case *models.CanFrameFilter:
		return v.validateCanFrameFilter(*value)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.AccountUpdate:
		return v.validateAccountUpdate(value)
	case *models.AccountUpdate:
		return v.validateAccountUpdate(*value)

	case models.PasswordResetRequest:
		return v.validatePasswordResetRequest(value)
	case *models.PasswordResetRequest:
		return v.validatePasswordResetRequest(*value)

	case models.PasswordResetConsume:
		return v.validatePasswordResetConsume(value)
	case *models.PasswordResetConsume:
		return v.validatePasswordResetConsume(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateCanFrameInput requires every telemetry field; nothing is defaulted.
func (v *RequestValidator) validateCanFrameInput(in models.CanFrameInput) error {
	if missing := in.Missing(); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	if strings.TrimSpace(*in.ChargeState) == "" {
		return ErrEmptyChargeState
	}
	return nil
}

func (v *RequestValidator) validateCanFrameFilter(f models.CanFrameFilter) error {
	for field := range f.Equals {
		if !slices.Contains(models.CanFrameFields, field) {
			return fmt.Errorf("%w: %s", ErrUnknownTelemetryName, field)
		}
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return ErrInvalidDateRange
	}
	return nil
}

// validateLoginRequest checks email, password and action, or only the named
// fields when scoped.
func (v *RequestValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldAction}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldAction:
			if !slices.Contains(allowedActions, req.Action) {
				return fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateAccountUpdate(u models.AccountUpdate) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if u.Email != nil && strings.TrimSpace(*u.Email) == "" {
		return ErrEmptyEmail
	}
	if u.Password != nil && *u.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *RequestValidator) validatePasswordResetRequest(req models.PasswordResetRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmptyEmail
	}
	return nil
}

func (v *RequestValidator) validatePasswordResetConsume(req models.PasswordResetConsume) error {
	if req.Token == "" {
		return ErrEmptyToken
	}
	if req.NewPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}
