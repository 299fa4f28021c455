// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexInt
		wantErr bool
	}{
		{name: "json number", input: `42`, want: 42},
		{name: "negative number", input: `-7`, want: -7},
		{name: "numeric string", input: `"123"`, want: 123},
		{name: "padded numeric string", input: `" 015 "`, want: 15},
		{name: "integral decimal", input: `12.0`, want: 12},
		{name: "fractional decimal", input: `12.5`, wantErr: true},
		{name: "letters", input: `"abc"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "huge exponent", input: `1e300`, wantErr: true},
		{name: "beyond int64", input: `9223372036854775808`, wantErr: true},
		{name: "beyond int32", input: `"3000000000"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexInt
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "plain", input: "42", want: 42},
		{name: "exponent", input: "1e1", want: 10},
		{name: "int32 max", input: "2147483647", want: math.MaxInt32},
		{name: "int32 min", input: "-2147483648", want: math.MinInt32},
		{name: "above int32", input: "2147483648", wantErr: ErrIntegerOutOfRange},
		{name: "below int32", input: "-2147483649", wantErr: ErrIntegerOutOfRange},
		{name: "beyond int64", input: "9223372036854775808", wantErr: ErrIntegerOutOfRange},
		{name: "huge float", input: "1e300", wantErr: ErrIntegerOutOfRange},
		{name: "huge negative float", input: "-1e300", wantErr: ErrIntegerOutOfRange},
		{name: "overflowing float", input: "1e400", wantErr: ErrIntegerOutOfRange},
		{name: "nan", input: "NaN", wantErr: ErrNotAnInteger},
		{name: "fraction", input: "0.5", wantErr: ErrNotAnInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInteger(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrNotAnInteger)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func fullInputJSON() string {
	return `{
		"east": 1, "west": "2", "north": 3, "average": 4,
		"v_panel": 120, "v_battery": 125, "c_panel": 30, "c_battery": 31,
		"charge_state": "bulk",
		"light_on": 1, "light_lvl": 800,
		"curr_elev": 45, "curr_azim": 180, "angle_azim": 181, "angle_elev": 46,
		"corr_mode": 2, "corr_interval": 60, "corr_threshold": 5
	}`
}

func TestCanFrameInput_Complete(t *testing.T) {
	var in CanFrameInput
	require.NoError(t, json.Unmarshal([]byte(fullInputJSON()), &in))

	assert.Empty(t, in.Missing())

	frame := in.ToCanFrame()
	assert.Equal(t, int64(1), frame.East)
	assert.Equal(t, int64(2), frame.West)
	assert.Equal(t, "bulk", frame.ChargeState)
	assert.Equal(t, int64(5), frame.CorrThreshold)
	assert.Len(t, frame.Values(), len(CanFrameFields))
}

func TestCanFrameInput_Missing(t *testing.T) {
	var in CanFrameInput
	require.NoError(t, json.Unmarshal([]byte(`{"east": 1, "charge_state": "full"}`), &in))

	missing := in.Missing()
	assert.NotContains(t, missing, FieldEast)
	assert.NotContains(t, missing, FieldChargeState)
	assert.Contains(t, missing, FieldWest)
	assert.Contains(t, missing, FieldCorrThreshold)
	assert.Len(t, missing, len(CanFrameFields)-2)
	assert.Equal(t, FieldWest, missing[0])
}

func TestCanFrameInput_EmptyBody(t *testing.T) {
	var in CanFrameInput
	assert.Equal(t, CanFrameFields, in.Missing())
}

func TestCanFrame_ScanTargetsMatchValues(t *testing.T) {
	var frame CanFrame
	// id and date precede the telemetry columns.
	assert.Len(t, frame.ScanTargets(), len(CanFrameFields)+2)
}

func TestCanFrameFilter_IsEmpty(t *testing.T) {
	assert.True(t, CanFrameFilter{}.IsEmpty())
	assert.False(t, CanFrameFilter{Equals: map[string]any{FieldEast: int64(1)}}.IsEmpty())
}

func TestAccount_PasswordNeverSerialized(t *testing.T) {
	b, err := json.Marshal(Account{ID: 1, Email: "a@b.com", PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)

	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "secret")
	assert.JSONEq(t, `{"id":1,"email":"a@b.com"}`, string(b))
}
