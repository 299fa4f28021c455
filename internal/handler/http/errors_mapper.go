package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/solarpanel/tracker-api/internal/app"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/service"
	"github.com/solarpanel/tracker-api/internal/store"
	"github.com/solarpanel/tracker-api/internal/validators"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order: service errors wrap store errors, so the
// service outcome has to win.
var errorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidFilterValue, http.StatusBadRequest},
	{service.ErrInvalidResetToken, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrPasswordUpdateFailed, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrCanFrameNotFound, http.StatusNotFound},
	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrResetTokenNotFound, http.StatusBadRequest},

	{store.ErrUnsupportedDriver, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, target := range errorStatuses {
		if errors.Is(err, target.err) {
			return target.status
		}
	}
	return http.StatusInternalServerError
}

// statusMessages holds the response message of one operation per status.
type statusMessages map[int]string

// writeError answers with the status mapped from err and the message the
// operation defines for it. Missing telemetry fields and invalid filters are
// named in the message; internal failures are logged and never described.
func writeError(w http.ResponseWriter, r *http.Request, err error, messages statusMessages) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message, ok := messages[status]
	if !ok {
		message = http.StatusText(status)
		if status == http.StatusInternalServerError {
			message = app.MsgInternalServerError
		}
	}

	var missingErr *validators.MissingFieldsError
	var filterErr *service.InvalidFilterError
	switch {
	case errors.As(err, &missingErr):
		message = "Missing required fields: " + strings.Join(missingErr.Fields, ", ")
	case errors.As(err, &filterErr):
		message = fmt.Sprintf("Invalid filter value for %s", filterErr.Field)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, message, status)
}
