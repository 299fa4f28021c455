package http

import (
	"net/http"
	"strings"

	"github.com/solarpanel/tracker-api/internal/app"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/utils"
	"github.com/solarpanel/tracker-api/models"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgEmailExists         = "Email already exists"
	msgUserCreated         = "User created"
	msgUserCreateError     = "Failed to create user"
	msgLoginSuccessful     = "Login successful"
	msgInvalidCredentials  = "Invalid credentials"
	msgUserNotFound        = "User not found"
	msgInvalidAction       = "Invalid action"
	msgUserIDRequired      = "ID required"
	msgNothingToUpdate     = "Nothing to update"
	msgUserUpdated         = "User updated"
	msgUserUpdateError     = "Error updating user"
	msgUserDeleted         = "User deleted"
	msgUserDeleteError     = "Error deleting user"
)

// emailParam looks an account up by email on GET login.
const emailParam = "email"

func (h *Handler) login(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	switch r.Method {
	case http.MethodPost:
		h.postLogin(w, r, req)
	case http.MethodGet:
		h.getAccounts(w, r, req)
	case http.MethodPut:
		h.updateAccount(w, r, req)
	case http.MethodDelete:
		h.deleteAccount(w, r, req)
	default:
		h.methodNotAllowed(w, r)
	}
}

// postLogin registers an account or verifies credentials, depending on the
// action field of the body.
func (h *Handler) postLogin(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	var body models.LoginRequest
	if req.hasBody() {
		if err := req.decode(&body); err != nil {
			logDecodeError(r, err)
			writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
	}

	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		writeMessage(w, msgCredentialsRequired, http.StatusBadRequest)
		return
	}

	switch body.Action {
	case models.ActionRegister:
		h.register(w, r, body)
	case models.ActionLogin:
		h.authenticate(w, r, body)
	default:
		writeMessage(w, msgInvalidAction, http.StatusBadRequest)
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request, body models.LoginRequest) {
	account, err := h.services.AccountService.Register(r.Context(), body)
	if err != nil {
		writeError(w, r, err, statusMessages{
			http.StatusBadRequest:          msgCredentialsRequired,
			http.StatusConflict:            msgEmailExists,
			http.StatusInternalServerError: msgUserCreateError,
		})
		return
	}

	utils.WriteJSON(w, models.AccountCreatedResponse{
		Message: msgUserCreated,
		ID:      account.ID,
		Email:   account.Email,
	}, http.StatusCreated)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, body models.LoginRequest) {
	log := logger.FromRequest(r)

	_, err := h.services.AccountService.Authenticate(r.Context(), body)
	if err != nil {
		status := statusFromError(err)
		switch status {
		case http.StatusNotFound:
			utils.WriteJSON(w, models.LoginResponse{Success: false, Message: msgUserNotFound}, status)
		case http.StatusUnauthorized:
			utils.WriteJSON(w, models.LoginResponse{Success: false, Message: msgInvalidCredentials}, status)
		default:
			writeError(w, r, err, statusMessages{http.StatusBadRequest: msgCredentialsRequired})
		}
		return
	}

	log.Debug().Msg("login successful")
	utils.WriteJSON(w, models.LoginResponse{Success: true, Message: msgLoginSuccessful}, http.StatusOK)
}

// getAccounts returns one account by id or by email, or every account.
// The email is taken from the query string or, for the legacy client, from
// the body.
func (h *Handler) getAccounts(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	ctx := r.Context()
	notFound := statusMessages{http.StatusNotFound: msgUserNotFound}

	if req.hasID() {
		account, err := h.services.AccountService.Get(ctx, req.id)
		if err != nil {
			writeError(w, r, err, notFound)
			return
		}
		utils.WriteJSON(w, account, http.StatusOK)
		return
	}

	if email := requestedEmail(req); email != "" {
		account, err := h.services.AccountService.FindByEmail(ctx, email)
		if err != nil {
			writeError(w, r, err, notFound)
			return
		}
		utils.WriteJSON(w, account, http.StatusOK)
		return
	}

	accounts, err := h.services.AccountService.List(ctx)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func requestedEmail(req resourceRequest) string {
	if email := strings.TrimSpace(req.query.Get(emailParam)); email != "" {
		return email
	}

	if req.hasBody() {
		var body models.LoginRequest
		if err := req.decode(&body); err == nil {
			return strings.TrimSpace(body.Email)
		}
	}
	return ""
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	if !req.hasID() {
		writeMessage(w, msgUserIDRequired, http.StatusBadRequest)
		return
	}
	if !req.hasBody() {
		writeMessage(w, msgNothingToUpdate, http.StatusBadRequest)
		return
	}

	var update models.AccountUpdate
	if err := req.decode(&update); err != nil {
		logDecodeError(r, err)
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if update.IsEmpty() {
		writeMessage(w, msgNothingToUpdate, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.Update(r.Context(), req.id, update); err != nil {
		writeError(w, r, err, statusMessages{
			http.StatusBadRequest:          app.MsgInvalidDataProvided,
			http.StatusNotFound:            msgUserNotFound,
			http.StatusConflict:            msgEmailExists,
			http.StatusInternalServerError: msgUserUpdateError,
		})
		return
	}

	utils.WriteJSON(w, models.IDResponse{Message: msgUserUpdated, ID: req.id}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	if !req.hasID() {
		writeMessage(w, msgUserIDRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.Delete(r.Context(), req.id); err != nil {
		writeError(w, r, err, statusMessages{
			http.StatusNotFound:            msgUserNotFound,
			http.StatusInternalServerError: msgUserDeleteError,
		})
		return
	}

	utils.WriteJSON(w, models.IDResponse{Message: msgUserDeleted, ID: req.id}, http.StatusOK)
}

func logDecodeError(r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg("request body does not match the resource")
}
