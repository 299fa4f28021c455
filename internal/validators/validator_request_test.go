// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarpanel/tracker-api/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrInt(v int64) *models.FlexInt { f := models.FlexInt(v); return &f }
func ptrStr(s string) *string        { return &s }

func completeInput() models.CanFrameInput {
	return models.CanFrameInput{
		East: ptrInt(1), West: ptrInt(2), North: ptrInt(3), Average: ptrInt(2),
		VPanel: ptrInt(18), VBattery: ptrInt(12), CPanel: ptrInt(3), CBattery: ptrInt(1),
		ChargeState: ptrStr(models.ChargeStateCharging),
		LightOn:     ptrInt(0), LightLvl: ptrInt(40),
		CurrElev: ptrInt(30), CurrAzim: ptrInt(180), AngleAzim: ptrInt(182), AngleElev: ptrInt(31),
		CorrMode: ptrInt(1), CorrInterval: ptrInt(60), CorrThreshold: ptrInt(5),
	}
}

// ---------------------------------------------------------------------------
// CanFrameInput
// ---------------------------------------------------------------------------

func TestValidate_CanFrameInput(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("complete payload", func(t *testing.T) {
		in := completeInput()
		assert.NoError(t, v.Validate(ctx, in))
		assert.NoError(t, v.Validate(ctx, &in))
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		in := completeInput()
		in.West = nil
		in.ChargeState = nil

		err := v.Validate(ctx, in)
		require.ErrorIs(t, err, ErrMissingFields)

		var missing *MissingFieldsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{models.FieldWest, models.FieldChargeState}, missing.Fields)
		assert.Contains(t, err.Error(), "west, charge_state")
	})

	t.Run("empty payload misses everything", func(t *testing.T) {
		var missing *MissingFieldsError
		require.ErrorAs(t, v.Validate(ctx, models.CanFrameInput{}), &missing)
		assert.Equal(t, models.CanFrameFields, missing.Fields)
	})

	t.Run("blank charge state", func(t *testing.T) {
		in := completeInput()
		in.ChargeState = ptrStr("  ")
		assert.ErrorIs(t, v.Validate(ctx, in), ErrEmptyChargeState)
	})
}

// ---------------------------------------------------------------------------
// CanFrameFilter
// ---------------------------------------------------------------------------

func TestValidate_CanFrameFilter(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(24 * time.Hour)

	tests := []struct {
		name    string
		filter  models.CanFrameFilter
		wantErr error
	}{
		{name: "empty", filter: models.CanFrameFilter{}},
		{name: "known field", filter: models.CanFrameFilter{Equals: map[string]any{models.FieldEast: int64(1)}}},
		{name: "unknown field", filter: models.CanFrameFilter{Equals: map[string]any{"south": int64(1)}}, wantErr: ErrUnknownTelemetryName},
		{name: "ordered range", filter: models.CanFrameFilter{DateFrom: &early, DateTo: &late}},
		{name: "inverted range", filter: models.CanFrameFilter{DateFrom: &late, DateTo: &early}, wantErr: ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.filter)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.LoginRequest
		fields  []string
		wantErr error
	}{
		{name: "register", req: models.LoginRequest{Email: "a@b.com", Password: "x", Action: models.ActionRegister}},
		{name: "login", req: models.LoginRequest{Email: "a@b.com", Password: "x", Action: models.ActionLogin}},
		{name: "no email", req: models.LoginRequest{Password: "x", Action: models.ActionLogin}, wantErr: ErrEmptyEmail},
		{name: "no password", req: models.LoginRequest{Email: "a@b.com", Action: models.ActionLogin}, wantErr: ErrEmptyPassword},
		{name: "bad action", req: models.LoginRequest{Email: "a@b.com", Password: "x", Action: "logout"}, wantErr: ErrUnknownAction},
		{
			name:   "scoped to credentials ignores action",
			req:    models.LoginRequest{Email: "a@b.com", Password: "x"},
			fields: []string{FieldEmail, FieldPassword},
		},
		{name: "scoped to unknown field", req: models.LoginRequest{}, fields: []string{"name"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_AccountUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.AccountUpdate{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.AccountUpdate{Email: ptrStr("")}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.AccountUpdate{Password: ptrStr("")}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.AccountUpdate{Password: ptrStr("secret")}))
	assert.NoError(t, v.Validate(ctx, &models.AccountUpdate{Email: ptrStr("new@b.com")}))
}

// ---------------------------------------------------------------------------
// Password reset
// ---------------------------------------------------------------------------

func TestValidate_PasswordReset(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.PasswordResetRequest{}), ErrEmptyEmail)
	assert.NoError(t, v.Validate(ctx, models.PasswordResetRequest{Email: "a@b.com"}))

	assert.ErrorIs(t, v.Validate(ctx, models.PasswordResetConsume{NewPassword: "x"}), ErrEmptyToken)
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordResetConsume{Token: "t"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, &models.PasswordResetConsume{Token: "t", NewPassword: "x"}))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
