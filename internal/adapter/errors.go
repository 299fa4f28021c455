package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("request rejected by the tracker API")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrRequestTooLarge     = errors.New("request body too large")
	ErrInternalServerError = errors.New("tracker API internal error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrInvalidAddress      = errors.New("invalid tracker API address")
)
