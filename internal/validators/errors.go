package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingFields        = errors.New("required fields are missing")
	ErrEmptyEmail           = errors.New("email is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrUnknownAction        = errors.New("unknown login action")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrEmptyToken           = errors.New("token is required")
	ErrEmptyChargeState     = errors.New("charge_state must not be blank")
	ErrInvalidDateRange     = errors.New("date_from is after date_to")
	ErrUnknownTelemetryName = errors.New("unknown telemetry field")
)

// MissingFieldsError lists the required telemetry fields absent from a
// payload. It matches [ErrMissingFields] under errors.Is.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}
