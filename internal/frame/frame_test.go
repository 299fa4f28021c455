package frame

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarpanel/tracker-api/models"
)

// buildLine renders values into a firmware line; absent fields are zero and
// padding is filled with '0'.
func buildLine(values map[string]int64) string {
	var b strings.Builder
	b.WriteString(StartMarker)
	for _, f := range Layout {
		fmt.Fprintf(&b, "%*d", f.Length, values[f.Name])
		b.WriteString(strings.Repeat("0", f.Skip))
	}
	b.WriteString(EndMarker)
	return b.String()
}

func sampleValues() map[string]int64 {
	return map[string]int64{
		models.FieldEast: 512, models.FieldWest: 498, models.FieldNorth: 505, fieldSouth: 470, models.FieldAverage: 496,
		models.FieldVPanel: 184, models.FieldVBattery: 126, models.FieldCPanel: 32, models.FieldCBattery: 15,
		fieldCharging: 1,
		models.FieldLightOn: 3, models.FieldLightLvl: 80,
		models.FieldCurrElev: 12, models.FieldCurrAzim: 7,
		models.FieldAngleAzim: 182, models.FieldAngleElev: 45,
		models.FieldCorrMode: 1, models.FieldCorrInterval: 15, models.FieldCorrThreshold: 20,
	}
}

func TestPayloadLength(t *testing.T) {
	assert.Equal(t, 75, PayloadLength)
	assert.Len(t, buildLine(nil), 79)
}

func TestDecode(t *testing.T) {
	input, err := Decode(buildLine(sampleValues()) + "\r\n")
	require.NoError(t, err)

	assert.Empty(t, input.Missing())
	frame := input.ToCanFrame()
	assert.Equal(t, int64(512), frame.East)
	assert.Equal(t, int64(498), frame.West)
	assert.Equal(t, int64(496), frame.Average)
	assert.Equal(t, int64(184), frame.VPanel)
	assert.Equal(t, int64(15), frame.CBattery)
	assert.Equal(t, models.ChargeStateCharging, frame.ChargeState)
	assert.Equal(t, int64(80), frame.LightLvl)
	assert.Equal(t, int64(7), frame.CurrAzim)
	assert.Equal(t, int64(182), frame.AngleAzim)
	assert.Equal(t, int64(45), frame.AngleElev)
	assert.Equal(t, int64(1), frame.CorrMode)
	assert.Equal(t, int64(20), frame.CorrThreshold)
}

func TestDecode_ZeroPaddedFields(t *testing.T) {
	line := buildLine(nil)
	line = strings.Replace(line, "  0", "007", 1) // east = 007

	input, err := Decode(line)
	require.NoError(t, err)
	assert.Equal(t, models.FlexInt(7), *input.East)
	assert.Equal(t, models.ChargeStateUnknown, *input.ChargeState)
}

func TestDecode_Errors(t *testing.T) {
	valid := buildLine(sampleValues())

	tests := []struct {
		name string
		line string
		want error
	}{
		{name: "no start marker", line: valid[2:], want: ErrMalformedFrame},
		{name: "no end marker", line: valid[:len(valid)-2], want: ErrMalformedFrame},
		{name: "markers only", line: "FA0D", want: ErrShortFrame},
		{name: "truncated payload", line: valid[:40] + EndMarker, want: ErrShortFrame},
		{name: "non numeric field", line: "FA" + "abc" + valid[5:], want: ErrMalformedFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_FieldErrorNamesField(t *testing.T) {
	_, err := Decode("FA" + " x " + buildLine(nil)[5:])

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.FieldEast, fieldErr.Field)
	assert.Equal(t, "x", fieldErr.Value)
}

func TestChargeState(t *testing.T) {
	tests := []struct {
		charging, full, empty int64
		want                  string
	}{
		{1, 0, 0, models.ChargeStateCharging},
		{1, 1, 1, models.ChargeStateCharging},
		{0, 1, 0, models.ChargeStateFull},
		{0, 1, 1, models.ChargeStateFull},
		{0, 0, 1, models.ChargeStateEmpty},
		{0, 0, 0, models.ChargeStateUnknown},
		{2, 0, 0, models.ChargeStateUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ChargeState(tt.charging, tt.full, tt.empty))
	}
}

func TestSplit(t *testing.T) {
	a := buildLine(nil)
	b := buildLine(sampleValues())

	lines, rest := Split("noise" + a + "\r\n" + b + "FA 12")
	assert.Equal(t, []string{a, b}, lines)
	assert.Equal(t, "FA 12", rest)

	lines, rest = Split("no frame here")
	assert.Empty(t, lines)
	assert.Empty(t, rest)
}
