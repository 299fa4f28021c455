package http

import (
	"net/http"
	"testing"

	"github.com/solarpanel/tracker-api/internal/utils"
	"github.com/solarpanel/tracker-api/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ---- Entry points ----

func TestInit_LegacyEntryPoints(t *testing.T) {
	router, m := newMockedRouter(t)
	m.accounts.EXPECT().List(gomock.Any()).Return([]models.Account{}, nil).Times(2)

	for _, target := range []string{"/?path=login", "/index.php?path=login"} {
		t.Run(target, func(t *testing.T) {
			rr := serve(router, http.MethodGet, target, "")
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `[]`, rr.Body.String())
		})
	}
}

func TestInit_UnknownRouteIsResourceNotFound(t *testing.T) {
	router, _ := newMockedRouter(t)

	for _, target := range []string{"/api/can_frames", "/index.html"} {
		t.Run(target, func(t *testing.T) {
			rr := serve(router, http.MethodGet, target, "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"message":"Resource not found"}`, rr.Body.String())
		})
	}
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	router, _ := newMockedRouter(t)

	rr := serve(router, http.MethodGet, "/nowhere", "")

	assert.NotEmpty(t, rr.Header().Get(utils.TraceIDHeader))
}

// ---- Version ----

func TestGetServerVersion(t *testing.T) {
	router, m := newMockedRouter(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.BuildInfoResponse{Version: "1.4.0", Date: "2026-10-01", Commit: "abc123"})

	rr := serve(router, http.MethodGet, "/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, utils.ContentTypeJSON, rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.4.0","date":"2026-10-01","commit":"abc123"}`, rr.Body.String())
}

func TestGetServerVersion_WrongMethod(t *testing.T) {
	router, _ := newMockedRouter(t)

	rr := serve(router, http.MethodPost, "/version", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"message":"Method not allowed"}`, rr.Body.String())
}
