package http

import (
	"errors"
	"net/http"

	"github.com/solarpanel/tracker-api/internal/service"
	"github.com/solarpanel/tracker-api/internal/utils"
	"github.com/solarpanel/tracker-api/models"
)

const (
	msgEmailRequired         = "Email required"
	msgTokenCreateError      = "Error creating token"
	msgTokenAndPassword      = "Token and new password required"
	msgInvalidToken          = "Invalid or expired token"
	msgPasswordUpdated       = "Password updated correctly"
	msgPasswordUpdateFailure = "Error updating password"
)

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	switch r.Method {
	case http.MethodPost:
		h.requestResetToken(w, r, req)
	case http.MethodPut:
		h.consumeResetToken(w, r, req)
	default:
		h.methodNotAllowed(w, r)
	}
}

func (h *Handler) requestResetToken(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	var body models.PasswordResetRequest
	if !req.hasBody() || req.decode(&body) != nil {
		writeMessage(w, msgEmailRequired, http.StatusBadRequest)
		return
	}

	resp, err := h.services.PasswordResetService.Request(r.Context(), body)
	if err != nil {
		writeError(w, r, err, statusMessages{
			http.StatusBadRequest:          msgEmailRequired,
			http.StatusNotFound:            msgUserNotFound,
			http.StatusInternalServerError: msgTokenCreateError,
		})
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) consumeResetToken(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	var body models.PasswordResetConsume
	if !req.hasBody() || req.decode(&body) != nil {
		writeMessage(w, msgTokenAndPassword, http.StatusBadRequest)
		return
	}

	if err := h.services.PasswordResetService.Consume(r.Context(), body); err != nil {
		messages := statusMessages{
			http.StatusBadRequest:          msgTokenAndPassword,
			http.StatusInternalServerError: msgPasswordUpdateFailure,
		}
		if errors.Is(err, service.ErrInvalidResetToken) {
			messages[http.StatusBadRequest] = msgInvalidToken
		}
		writeError(w, r, err, messages)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgPasswordUpdated}, http.StatusOK)
}
