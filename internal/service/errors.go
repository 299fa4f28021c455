package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrPasswordUpdateFailed = errors.New("password update failed")
	ErrTokenCreationFailed  = errors.New("reset token creation failed")

	ErrInvalidFilterValue = errors.New("invalid filter value")
)

// InvalidFilterError names the query parameter whose value could not be
// used as a filter. It matches [ErrInvalidFilterValue] under errors.Is.
type InvalidFilterError struct {
	Field string
	Err   error
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("%s for %s: %v", ErrInvalidFilterValue, e.Field, e.Err)
}

func (e *InvalidFilterError) Is(target error) bool {
	return target == ErrInvalidFilterValue
}

func (e *InvalidFilterError) Unwrap() error {
	return e.Err
}
