package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/solarpanel/tracker-api/internal/service"
	"github.com/solarpanel/tracker-api/internal/store"
	"github.com/solarpanel/tracker-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── POST register ────────────────────────────────────────────────────────────

func TestLogin_Register(t *testing.T) {
	router, m := newMockedRouter(t)
	m.accounts.EXPECT().Register(gomock.Any(), models.LoginRequest{
		Email: "ana@example.com", Password: "s3cret", Action: models.ActionRegister,
	}).Return(models.Account{ID: 3, Email: "ana@example.com", PasswordHash: "$2a$hash"}, nil)

	rr := serve(router, http.MethodPost, "/?path=login",
		`{"email":"ana@example.com","password":"s3cret","action":"register"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"User created","id":3,"email":"ana@example.com"}`, rr.Body.String())
}

func TestLogin_Register_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
		{"invalid email", fmt.Errorf("%w: bad email", service.ErrInvalidDataProvided), http.StatusBadRequest, "Email and password are required"},
		{"store failure", store.ErrExecutingStatement, http.StatusInternalServerError, "Failed to create user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t)
			m.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Account{}, tt.err)

			rr := serve(router, http.MethodPost, "/index.php?path=login",
				`{"email":"ana@example.com","password":"s3cret","action":"register"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, messageOf(t, rr))
		})
	}
}

// ── POST login ───────────────────────────────────────────────────────────────

func TestLogin_Authenticate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		success bool
		message string
	}{
		{"success", nil, http.StatusOK, true, "Login successful"},
		{"unknown email", store.ErrAccountNotFound, http.StatusNotFound, false, "User not found"},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, false, "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t)
			m.accounts.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Account{ID: 1, Email: "ana@example.com"}, tt.err)

			rr := serve(router, http.MethodPost, "/?path=login",
				`{"email":"ana@example.com","password":"s3cret","action":"login"}`)

			require.Equal(t, tt.status, rr.Code)
			resp := decodeResponse[models.LoginResponse](t, rr)
			assert.Equal(t, tt.success, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestLogin_Post_MissingCredentials(t *testing.T) {
	router, _ := newMockedRouter(t)

	for _, body := range []string{
		"",
		`{"action":"login"}`,
		`{"email":"  ","password":"x","action":"login"}`,
		`{"email":"ana@example.com","action":"register"}`,
	} {
		rr := serve(router, http.MethodPost, "/?path=login", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "Email and password are required", messageOf(t, rr))
	}
}

func TestLogin_Post_InvalidAction(t *testing.T) {
	router, _ := newMockedRouter(t)

	rr := serve(router, http.MethodPost, "/?path=login", `{"email":"a@b.c","password":"x","action":"logout"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid action"}`, rr.Body.String())
}

// ── GET ──────────────────────────────────────────────────────────────────────

func TestLogin_GetAll_NeverExposesPasswords(t *testing.T) {
	router, m := newMockedRouter(t)
	m.accounts.EXPECT().List(gomock.Any()).Return([]models.Account{
		{ID: 1, Email: "a@example.com", PasswordHash: "$2a$10$aaa"},
		{ID: 2, Email: "b@example.com", PasswordHash: "$2a$10$bbb"},
	}, nil)

	rr := serve(router, http.MethodGet, "/?path=login", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
	assert.NotContains(t, rr.Body.String(), "$2a$")

	rows := decodeResponse[[]map[string]any](t, rr)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.ElementsMatch(t, []string{"id", "email"}, keysOf(row))
	}
}

func TestLogin_GetAll_Empty(t *testing.T) {
	router, m := newMockedRouter(t)
	m.accounts.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := serve(router, http.MethodGet, "/?path=login", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestLogin_GetByID(t *testing.T) {
	router, m := newMockedRouter(t)
	gomock.InOrder(
		m.accounts.EXPECT().Get(gomock.Any(), int64(4)).Return(models.Account{ID: 4, Email: "d@example.com"}, nil),
		m.accounts.EXPECT().Get(gomock.Any(), int64(5)).Return(models.Account{}, store.ErrAccountNotFound),
	)

	rr := serve(router, http.MethodGet, "/?path=login/4", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":4,"email":"d@example.com"}`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/?path=login/5", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rr.Body.String())
}

func TestLogin_GetByEmail(t *testing.T) {
	router, m := newMockedRouter(t)
	m.accounts.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").
		Return(models.Account{ID: 1, Email: "ana@example.com"}, nil).Times(2)

	rr := serve(router, http.MethodGet, "/?path=login&email=ana@example.com", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"email":"ana@example.com"}`, rr.Body.String())

	// legacy clients send the email in a GET body
	rr = serve(router, http.MethodGet, "/?path=login", `{"email":" ana@example.com "}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ── PUT ──────────────────────────────────────────────────────────────────────

func TestLogin_Update(t *testing.T) {
	router, m := newMockedRouter(t)
	m.accounts.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
		func(_ any, _ int64, update models.AccountUpdate) error {
			require.NotNil(t, update.Password)
			assert.Equal(t, "n3w", *update.Password)
			assert.Nil(t, update.Email)
			return nil
		},
	)

	rr := serve(router, http.MethodPut, "/?path=login/2", `{"password":"n3w"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User updated","id":2}`, rr.Body.String())
}

func TestLogin_Update_Rejected(t *testing.T) {
	router, _ := newMockedRouter(t)

	tests := []struct {
		target, body, msg string
	}{
		{"/?path=login", `{"password":"x"}`, "ID required"},
		{"/?path=login/2", "", "Nothing to update"},
		{"/?path=login/2", `{"action":"noop"}`, "Nothing to update"},
		{"/?path=login/2", `{"email":42}`, "Invalid data provided"},
	}

	for _, tt := range tests {
		rr := serve(router, http.MethodPut, tt.target, tt.body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, tt.body)
		assert.Equal(t, tt.msg, messageOf(t, rr))
	}
}

func TestLogin_Update_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"unknown id", store.ErrAccountNotFound, http.StatusNotFound, "User not found"},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
		{"store failure", store.ErrExecutingStatement, http.StatusInternalServerError, "Error updating user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t)
			m.accounts.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).Return(tt.err)

			rr := serve(router, http.MethodPut, "/?path=login/2", `{"email":"new@example.com"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, messageOf(t, rr))
		})
	}
}

// ── DELETE ───────────────────────────────────────────────────────────────────

func TestLogin_Delete(t *testing.T) {
	router, m := newMockedRouter(t)
	gomock.InOrder(
		m.accounts.EXPECT().Delete(gomock.Any(), int64(8)).Return(nil),
		m.accounts.EXPECT().Delete(gomock.Any(), int64(8)).Return(store.ErrAccountNotFound),
		m.accounts.EXPECT().Delete(gomock.Any(), int64(8)).Return(store.ErrExecutingStatement),
	)

	rr := serve(router, http.MethodDelete, "/?path=login/8", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User deleted","id":8}`, rr.Body.String())

	rr = serve(router, http.MethodDelete, "/?path=login/8", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, http.MethodDelete, "/?path=login/8", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Error deleting user", messageOf(t, rr))
}

func TestLogin_Delete_MissingID(t *testing.T) {
	router, _ := newMockedRouter(t)

	rr := serve(router, http.MethodDelete, "/?path=login", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "ID required", messageOf(t, rr))
}

func TestLogin_MethodNotAllowed(t *testing.T) {
	router, _ := newMockedRouter(t)

	rr := serve(router, http.MethodPatch, "/?path=login", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
