// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/solarpanel/tracker-api/internal/service"
	"github.com/solarpanel/tracker-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", fmt.Errorf("%w: email is required", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"invalid filter", &service.InvalidFilterError{Field: "east", Err: errors.New("nan")}, http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"frame not found", fmt.Errorf("wrapped: %w", store.ErrCanFrameNotFound), http.StatusNotFound},
		{"account not found", store.ErrAccountNotFound, http.StatusNotFound},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"query failed", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		// service outcome wins over the wrapped store error
		{"invalid token wraps not found", fmt.Errorf("%w: %w", service.ErrInvalidResetToken, store.ErrResetTokenNotFound), http.StatusBadRequest},
		{"password update wraps account not found", fmt.Errorf("%w: %w", service.ErrPasswordUpdateFailed, store.ErrAccountNotFound), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
