package huelib_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssoudan/huelib"
)

func ptr[T any](v T) *T { return &v }

func Test_LightStateModifier_Serialize(t *testing.T) {

	tests := []struct {
		name     string
		modifier huelib.LightStateModifier
		expected string
	}{
		{
			name:     "all fields unset produces an empty object",
			modifier: huelib.LightStateModifier{},
			expected: `{}`,
		},
		{
			name:     "override emits the base key with the literal value",
			modifier: huelib.LightStateModifier{Brightness: huelib.Set[uint8](200)},
			expected: `{"bri":200}`,
		},
		{
			name:     "increment emits the _inc key with the signed delta",
			modifier: huelib.LightStateModifier{Brightness: huelib.Inc[uint8](-10)},
			expected: `{"bri_inc":-10}`,
		},
		{
			name:     "oversized 8-bit delta clamps instead of wrapping",
			modifier: huelib.LightStateModifier{Brightness: huelib.Inc[uint8](40000)},
			expected: `{"bri_inc":32767}`,
		},
		{
			name:     "oversized negative 8-bit delta clamps",
			modifier: huelib.LightStateModifier{Brightness: huelib.Inc[uint8](-40000)},
			expected: `{"bri_inc":-32768}`,
		},
		{
			name:     "hue increment",
			modifier: huelib.LightStateModifier{Hue: huelib.Inc[uint16](-40000)},
			expected: `{"hue_inc":-40000}`,
		},
		{
			name:     "coordinate override serializes as a 2-element array",
			modifier: huelib.LightStateModifier{ColorSpaceCoordinates: huelib.SetXY(0.25, 0.5)},
			expected: `{"xy":[0.25,0.5]}`,
		},
		{
			name:     "coordinate increment",
			modifier: huelib.LightStateModifier{ColorSpaceCoordinates: huelib.IncXY(-0.25, 0.5)},
			expected: `{"xy_inc":[-0.25,0.5]}`,
		},
		{
			name: "plain optional fields",
			modifier: huelib.LightStateModifier{
				On:             ptr(true),
				Alert:          ptr(huelib.AlertSelect),
				TransitionTime: ptr(uint16(4)),
			},
			expected: `{"on":true,"alert":"select","transitiontime":4}`,
		},
		{
			name: "set fields keep declaration order",
			modifier: huelib.LightStateModifier{
				On:               ptr(true),
				Brightness:       huelib.Set[uint8](254),
				Saturation:       huelib.Inc[uint8](20),
				ColorTemperature: huelib.Set[uint16](366),
				Effect:           ptr(huelib.EffectColorLoop),
			},
			expected: `{"on":true,"bri":254,"sat_inc":20,"ct":366,"effect":"colorloop"}`,
		},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			data, err := json.Marshal(c.modifier)
			require.NoError(t, err)
			// compare raw strings, the wire format fixes the field order
			assert.Equal(t, c.expected, string(data))
		})
	}
}

func Test_GroupStateModifier_Serialize(t *testing.T) {

	tests := []struct {
		name     string
		modifier huelib.GroupStateModifier
		expected string
	}{
		{
			name:     "empty",
			modifier: huelib.GroupStateModifier{},
			expected: `{}`,
		},
		{
			name: "scene recall is emitted last",
			modifier: huelib.GroupStateModifier{
				On:    ptr(true),
				Scene: ptr("AB34EF5"),
			},
			expected: `{"on":true,"scene":"AB34EF5"}`,
		},
		{
			name:     "brightness increment on a group",
			modifier: huelib.GroupStateModifier{Brightness: huelib.Inc[uint8](30)},
			expected: `{"bri_inc":30}`,
		},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			data, err := json.Marshal(c.modifier)
			require.NoError(t, err)
			assert.Equal(t, c.expected, string(data))
		})
	}
}

func Test_AttributeModifiers_OmitUnsetFields(t *testing.T) {

	data, err := json.Marshal(huelib.LightAttributeModifier{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	data, err = json.Marshal(huelib.ScheduleModifier{Name: ptr("wake up")})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"wake up"}`, string(data))

	data, err = json.Marshal(huelib.ConfigModifier{LinkButton: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, `{"linkbutton":true}`, string(data))
}

func Test_StaticLightState_Serialize(t *testing.T) {

	state := huelib.StaticLightState{
		On:         ptr(true),
		Brightness: ptr(uint8(120)),
		ColorSpaceCoordinates: &huelib.XY{
			X: 0.3,
			Y: 0.4,
		},
	}
	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":true,"bri":120,"xy":[0.3,0.4]}`, string(data))
}
