// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Telemetry column names of the can_frames table, in storage order.
const (
	FieldEast          = "east"
	FieldWest          = "west"
	FieldNorth         = "north"
	FieldAverage       = "average"
	FieldVPanel        = "v_panel"
	FieldVBattery      = "v_battery"
	FieldCPanel        = "c_panel"
	FieldCBattery      = "c_battery"
	FieldChargeState   = "charge_state"
	FieldLightOn       = "light_on"
	FieldLightLvl      = "light_lvl"
	FieldCurrElev      = "curr_elev"
	FieldCurrAzim      = "curr_azim"
	FieldAngleAzim     = "angle_azim"
	FieldAngleElev     = "angle_elev"
	FieldCorrMode      = "corr_mode"
	FieldCorrInterval  = "corr_interval"
	FieldCorrThreshold = "corr_threshold"
)

// CanFrameFields lists every client-supplied telemetry column.
// id and date are server-assigned and therefore not part of it.
var CanFrameFields = []string{
	FieldEast, FieldWest, FieldNorth, FieldAverage,
	FieldVPanel, FieldVBattery, FieldCPanel, FieldCBattery,
	FieldChargeState,
	FieldLightOn, FieldLightLvl,
	FieldCurrElev, FieldCurrAzim, FieldAngleAzim, FieldAngleElev,
	FieldCorrMode, FieldCorrInterval, FieldCorrThreshold,
}

// ChargeState values produced by the tracker firmware.
const (
	ChargeStateCharging = "charging"
	ChargeStateFull     = "full"
	ChargeStateEmpty    = "empty"
	ChargeStateUnknown  = "unknown"
)

// CanFrame is one persisted telemetry sample of the solar tracker.
//
// Date is always assigned by the server on create and on update; a value
// supplied by a client is never stored.
type CanFrame struct {
	ID   int64     `json:"id"`
	Date time.Time `json:"date"`

	// Light sensor readings of the four quadrants and their average.
	East    int64 `json:"east"`
	West    int64 `json:"west"`
	North   int64 `json:"north"`
	Average int64 `json:"average"`

	// Panel and battery voltage/current.
	VPanel   int64 `json:"v_panel"`
	VBattery int64 `json:"v_battery"`
	CPanel   int64 `json:"c_panel"`
	CBattery int64 `json:"c_battery"`

	ChargeState string `json:"charge_state"`

	LightOn  int64 `json:"light_on"`
	LightLvl int64 `json:"light_lvl"`

	// Current tracker position and the target angles.
	CurrElev  int64 `json:"curr_elev"`
	CurrAzim  int64 `json:"curr_azim"`
	AngleAzim int64 `json:"angle_azim"`
	AngleElev int64 `json:"angle_elev"`

	// Position correction settings.
	CorrMode      int64 `json:"corr_mode"`
	CorrInterval  int64 `json:"corr_interval"`
	CorrThreshold int64 `json:"corr_threshold"`
}

// Values returns the telemetry values in the order of [CanFrameFields].
func (c CanFrame) Values() []any {
	return []any{
		c.East, c.West, c.North, c.Average,
		c.VPanel, c.VBattery, c.CPanel, c.CBattery,
		c.ChargeState,
		c.LightOn, c.LightLvl,
		c.CurrElev, c.CurrAzim, c.AngleAzim, c.AngleElev,
		c.CorrMode, c.CorrInterval, c.CorrThreshold,
	}
}

// ScanTargets returns pointers to id, date and every telemetry field, in the
// column order used by the store when selecting can_frames rows.
func (c *CanFrame) ScanTargets() []any {
	return []any{
		&c.ID, &c.Date,
		&c.East, &c.West, &c.North, &c.Average,
		&c.VPanel, &c.VBattery, &c.CPanel, &c.CBattery,
		&c.ChargeState,
		&c.LightOn, &c.LightLvl,
		&c.CurrElev, &c.CurrAzim, &c.AngleAzim, &c.AngleElev,
		&c.CorrMode, &c.CorrInterval, &c.CorrThreshold,
	}
}

// ErrNotAnInteger is returned by [FlexInt.UnmarshalJSON] for values that are
// neither an integral JSON number nor a string holding one.
var ErrNotAnInteger = errors.New("value is not an integer")

// ErrIntegerOutOfRange is returned by [ParseInteger] for integers that do not
// fit the 32-bit telemetry columns. It matches [ErrNotAnInteger].
var ErrIntegerOutOfRange = fmt.Errorf("%w: out of 32-bit range", ErrNotAnInteger)

// FlexInt is an integer that accepts both JSON numbers and numeric strings.
// The serial collector posts every telemetry value as a string.
type FlexInt int64

// UnmarshalJSON implements [json.Unmarshaler].
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(strings.TrimSpace(s))
	}

	v, err := ParseInteger(string(raw))
	if err != nil {
		return err
	}

	*f = FlexInt(v)
	return nil
}

// ParseInteger parses s as a base-10 integer that fits an INTEGER column.
// Integral decimals such as "12.0" or "1e1" are accepted; values outside the
// int32 range yield [ErrIntegerOutOfRange], anything else [ErrNotAnInteger].
func ParseInteger(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return checkIntegerRange(v)
	}

	fv, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrNotAnInteger
	}
	if math.IsNaN(fv) || fv != math.Trunc(fv) {
		return 0, ErrNotAnInteger
	}
	if fv < math.MinInt32 || fv > math.MaxInt32 {
		return 0, ErrIntegerOutOfRange
	}

	return int64(fv), nil
}

func checkIntegerRange(v int64) (int64, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrIntegerOutOfRange
	}
	return v, nil
}

// CanFrameInput is the client payload of POST and PUT can_frames requests.
// A nil field means the key was absent from the body.
type CanFrameInput struct {
	East          *FlexInt `json:"east"`
	West          *FlexInt `json:"west"`
	North         *FlexInt `json:"north"`
	Average       *FlexInt `json:"average"`
	VPanel        *FlexInt `json:"v_panel"`
	VBattery      *FlexInt `json:"v_battery"`
	CPanel        *FlexInt `json:"c_panel"`
	CBattery      *FlexInt `json:"c_battery"`
	ChargeState   *string  `json:"charge_state"`
	LightOn       *FlexInt `json:"light_on"`
	LightLvl      *FlexInt `json:"light_lvl"`
	CurrElev      *FlexInt `json:"curr_elev"`
	CurrAzim      *FlexInt `json:"curr_azim"`
	AngleAzim     *FlexInt `json:"angle_azim"`
	AngleElev     *FlexInt `json:"angle_elev"`
	CorrMode      *FlexInt `json:"corr_mode"`
	CorrInterval  *FlexInt `json:"corr_interval"`
	CorrThreshold *FlexInt `json:"corr_threshold"`
}

func (in CanFrameInput) ints() map[string]*FlexInt {
	return map[string]*FlexInt{
		FieldEast: in.East, FieldWest: in.West, FieldNorth: in.North, FieldAverage: in.Average,
		FieldVPanel: in.VPanel, FieldVBattery: in.VBattery, FieldCPanel: in.CPanel, FieldCBattery: in.CBattery,
		FieldLightOn: in.LightOn, FieldLightLvl: in.LightLvl,
		FieldCurrElev: in.CurrElev, FieldCurrAzim: in.CurrAzim, FieldAngleAzim: in.AngleAzim, FieldAngleElev: in.AngleElev,
		FieldCorrMode: in.CorrMode, FieldCorrInterval: in.CorrInterval, FieldCorrThreshold: in.CorrThreshold,
	}
}

// Missing returns the names of absent fields in [CanFrameFields] order.
func (in CanFrameInput) Missing() []string {
	ints := in.ints()

	missing := make([]string, 0)
	for _, field := range CanFrameFields {
		if field == FieldChargeState {
			if in.ChargeState == nil {
				missing = append(missing, field)
			}
			continue
		}
		if ints[field] == nil {
			missing = append(missing, field)
		}
	}

	return missing
}

// ToCanFrame converts a complete input into a [CanFrame].
// Absent fields are left zero, so callers check [CanFrameInput.Missing] first.
func (in CanFrameInput) ToCanFrame() CanFrame {
	v := func(f *FlexInt) int64 {
		if f == nil {
			return 0
		}
		return int64(*f)
	}

	frame := CanFrame{
		East: v(in.East), West: v(in.West), North: v(in.North), Average: v(in.Average),
		VPanel: v(in.VPanel), VBattery: v(in.VBattery), CPanel: v(in.CPanel), CBattery: v(in.CBattery),
		LightOn: v(in.LightOn), LightLvl: v(in.LightLvl),
		CurrElev: v(in.CurrElev), CurrAzim: v(in.CurrAzim), AngleAzim: v(in.AngleAzim), AngleElev: v(in.AngleElev),
		CorrMode: v(in.CorrMode), CorrInterval: v(in.CorrInterval), CorrThreshold: v(in.CorrThreshold),
	}
	if in.ChargeState != nil {
		frame.ChargeState = *in.ChargeState
	}

	return frame
}

// CanFrameFilter narrows a can_frames listing.
// Equals maps a telemetry column to the value it must equal; all entries
// are AND-combined. DateFrom and DateTo bound the date column inclusively.
type CanFrameFilter struct {
	Equals   map[string]any
	DateFrom *time.Time
	DateTo   *time.Time
}

// IsEmpty reports whether the filter has no predicate at all.
func (f CanFrameFilter) IsEmpty() bool {
	return len(f.Equals) == 0 && f.DateFrom == nil && f.DateTo == nil
}
