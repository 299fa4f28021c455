// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solarpanel/tracker-api/models"
)

const (
	StartMarker = "FA"
	EndMarker   = "0D"
)

// Indicator fields that have no column of their own. They are folded into
// charge_state, and south is read but not stored.
const (
	fieldSouth    = "south"
	fieldCharging = "charging"
	fieldFull     = "full"
	fieldEmpty    = "empty"
)

var (
	ErrMalformedFrame = errors.New("malformed telemetry frame")
	ErrShortFrame     = errors.New("telemetry frame is too short")
)

// FieldError reports a payload field that is not a decimal integer.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrMalformedFrame
}

// Field is one fixed-width slot of the payload, followed by Skip padding
// characters.
type Field struct {
	Name   string
	Length int
	Skip   int
}

// Layout is the payload layout of the firmware, in transmission order.
var Layout = []Field{
	{Name: models.FieldEast, Length: 3},
	{Name: models.FieldWest, Length: 3},
	{Name: models.FieldNorth, Length: 3},
	{Name: fieldSouth, Length: 3},
	{Name: models.FieldAverage, Length: 3, Skip: 8},
	{Name: models.FieldVPanel, Length: 3},
	{Name: models.FieldVBattery, Length: 3},
	{Name: models.FieldCPanel, Length: 3},
	{Name: models.FieldCBattery, Length: 3},
	{Name: fieldCharging, Length: 2},
	{Name: fieldFull, Length: 2},
	{Name: fieldEmpty, Length: 2},
	{Name: models.FieldLightOn, Length: 3},
	{Name: models.FieldLightLvl, Length: 3},
	{Name: models.FieldCurrElev, Length: 3},
	{Name: models.FieldCurrAzim, Length: 3, Skip: 6},
	{Name: models.FieldAngleAzim, Length: 3},
	{Name: models.FieldAngleElev, Length: 3, Skip: 2},
	{Name: models.FieldCorrMode, Length: 2},
	{Name: models.FieldCorrInterval, Length: 3},
	{Name: models.FieldCorrThreshold, Length: 3},
}

// PayloadLength is the number of characters between the two markers.
var PayloadLength = payloadLength(Layout)

func payloadLength(layout []Field) int {
	n := 0
	for _, f := range layout {
		n += f.Length + f.Skip
	}
	return n
}

// Decode parses one line into the payload of a can_frames create request.
// Surrounding whitespace is ignored; characters after the fixed-width payload
// and before the end marker are ignored too.
func Decode(line string) (models.CanFrameInput, error) {
	values, err := decodeValues(line)
	if err != nil {
		return models.CanFrameInput{}, err
	}

	ptr := func(name string) *models.FlexInt {
		v := models.FlexInt(values[name])
		return &v
	}
	chargeState := ChargeState(values[fieldCharging], values[fieldFull], values[fieldEmpty])

	return models.CanFrameInput{
		East:          ptr(models.FieldEast),
		West:          ptr(models.FieldWest),
		North:         ptr(models.FieldNorth),
		Average:       ptr(models.FieldAverage),
		VPanel:        ptr(models.FieldVPanel),
		VBattery:      ptr(models.FieldVBattery),
		CPanel:        ptr(models.FieldCPanel),
		CBattery:      ptr(models.FieldCBattery),
		ChargeState:   &chargeState,
		LightOn:       ptr(models.FieldLightOn),
		LightLvl:      ptr(models.FieldLightLvl),
		CurrElev:      ptr(models.FieldCurrElev),
		CurrAzim:      ptr(models.FieldCurrAzim),
		AngleAzim:     ptr(models.FieldAngleAzim),
		AngleElev:     ptr(models.FieldAngleElev),
		CorrMode:      ptr(models.FieldCorrMode),
		CorrInterval:  ptr(models.FieldCorrInterval),
		CorrThreshold: ptr(models.FieldCorrThreshold),
	}, nil
}

func decodeValues(line string) (map[string]int64, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, StartMarker) || !strings.HasSuffix(line, EndMarker) ||
		len(line) < len(StartMarker)+len(EndMarker) {
		return nil, fmt.Errorf("%w: missing %s/%s markers", ErrMalformedFrame, StartMarker, EndMarker)
	}

	payload := line[len(StartMarker) : len(line)-len(EndMarker)]
	if len(payload) < PayloadLength {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrShortFrame, len(payload), PayloadLength)
	}

	values := make(map[string]int64, len(Layout))
	offset := 0
	for _, f := range Layout {
		raw := strings.TrimSpace(payload[offset : offset+f.Length])
		v, err := models.ParseInteger(raw)
		if err != nil {
			return nil, &FieldError{Field: f.Name, Value: raw}
		}
		values[f.Name] = v
		offset += f.Length + f.Skip
	}

	return values, nil
}

// ChargeState folds the three battery indicators into a charge_state value.
// Charging wins over full, full over empty.
func ChargeState(charging, full, empty int64) string {
	switch {
	case charging == 1:
		return models.ChargeStateCharging
	case full == 1:
		return models.ChargeStateFull
	case empty == 1:
		return models.ChargeStateEmpty
	default:
		return models.ChargeStateUnknown
	}
}

// Split extracts every complete FA...0D line from a chunk of serial data and
// returns them together with the unconsumed tail, which may hold the start of
// a line whose end has not arrived yet.
func Split(chunk string) (lines []string, rest string) {
	for {
		start := strings.Index(chunk, StartMarker)
		if start == -1 {
			return lines, ""
		}

		end := strings.Index(chunk[start+len(StartMarker):], EndMarker)
		if end == -1 {
			return lines, chunk[start:]
		}

		stop := start + len(StartMarker) + end + len(EndMarker)
		lines = append(lines, chunk[start:stop])
		chunk = chunk[stop:]
	}
}
