package huelib_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssoudan/huelib"
)

func Test_Time_Decode(t *testing.T) {

	tests := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{
			name:     "bridge timestamp",
			raw:      `"2023-06-01T08:30:05"`,
			expected: time.Date(2023, 6, 1, 8, 30, 5, 0, time.UTC),
		},
		{
			name:     "none decodes to the zero time",
			raw:      `"none"`,
			expected: time.Time{},
		},
		{
			name:     "null decodes to the zero time",
			raw:      `null`,
			expected: time.Time{},
		},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			var ts huelib.Time
			require.NoError(t, json.Unmarshal([]byte(c.raw), &ts))
			assert.True(t, c.expected.Equal(ts.Time), "expected %v, got %v", c.expected, ts.Time)
		})
	}

	t.Run("garbage fails", func(t *testing.T) {
		var ts huelib.Time
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	})
}

func Test_Scan_Decode(t *testing.T) {

	tests := []struct {
		name     string
		raw      string
		expected huelib.Scan
	}{
		{
			name: "active scan with discovered devices",
			raw:  `{"lastscan":"active","7":{"name":"Hue Lamp 7"}}`,
			expected: huelib.Scan{
				LastScan:  huelib.LastScan{Active: true},
				Resources: []huelib.ScanResource{{ID: "7", Name: "Hue Lamp 7"}},
			},
		},
		{
			name:     "no scan ever ran",
			raw:      `{"lastscan":"none"}`,
			expected: huelib.Scan{},
		},
		{
			name: "finished scan reports its completion time",
			raw:  `{"lastscan":"2023-06-01T12:00:00"}`,
			expected: huelib.Scan{
				LastScan: huelib.LastScan{Time: huelib.Time{Time: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}},
			},
		},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			var scan huelib.Scan
			require.NoError(t, json.Unmarshal([]byte(c.raw), &scan))
			assert.Equal(t, c.expected, scan)
		})
	}
}

func Test_Schedule_Decode(t *testing.T) {

	raw := `{
		"name": "Wake up",
		"description": "My wake up alarm",
		"command": {
			"address": "/api/testuser/groups/1/action",
			"method": "PUT",
			"body": {"on": true}
		},
		"localtime": "W124/T06:00:00",
		"status": "enabled",
		"autodelete": false
	}`

	var schedule huelib.Schedule
	require.NoError(t, json.Unmarshal([]byte(raw), &schedule))
	assert.Equal(t, "Wake up", schedule.Name)
	assert.Equal(t, huelib.ScheduleEnabled, schedule.Status)
	assert.Equal(t, "PUT", schedule.Action.Method)
	assert.Equal(t, map[string]any{"on": true}, schedule.Action.Body)
}

func Test_Rule_Decode(t *testing.T) {

	raw := `{
		"name": "Wall Switch Rule",
		"lasttriggered": "none",
		"timestriggered": 5,
		"status": "enabled",
		"conditions": [
			{"address": "/sensors/2/state/buttonevent", "operator": "eq", "value": "16"},
			{"address": "/sensors/2/state/lastupdated", "operator": "dx"}
		],
		"actions": [
			{"address": "/groups/0/action", "method": "PUT", "body": {"scene": "S3"}}
		]
	}`

	var rule huelib.Rule
	require.NoError(t, json.Unmarshal([]byte(raw), &rule))
	assert.Equal(t, 5, rule.TimesTriggered)
	require.NotNil(t, rule.LastTriggered)
	assert.True(t, rule.LastTriggered.IsZero())
	require.Len(t, rule.Conditions, 2)
	assert.Equal(t, huelib.OperatorEqual, rule.Conditions[0].Operator)
	require.NotNil(t, rule.Conditions[0].Value)
	assert.Equal(t, "16", *rule.Conditions[0].Value)
	assert.Nil(t, rule.Conditions[1].Value)
	assert.Equal(t, huelib.OperatorChanged, rule.Conditions[1].Operator)
}

func Test_Scene_Decode(t *testing.T) {

	raw := `{
		"name": "Cozy dinner",
		"type": "GroupScene",
		"group": "1",
		"lights": ["1", "2"],
		"owner": "78H56B12BA",
		"recycle": false,
		"locked": false,
		"appdata": {"version": 1, "data": "myAppData"},
		"lastupdated": "2023-05-30T19:46:13",
		"version": 2,
		"lightstates": {
			"1": {"on": true, "bri": 120, "xy": [0.45, 0.41]}
		}
	}`

	var scene huelib.Scene
	require.NoError(t, json.Unmarshal([]byte(raw), &scene))
	assert.Equal(t, "Cozy dinner", scene.Name)
	require.NotNil(t, scene.AppData)
	require.NotNil(t, scene.AppData.Data)
	assert.Equal(t, "myAppData", *scene.AppData.Data)
	require.Contains(t, scene.LightStates, "1")
	state := scene.LightStates["1"]
	require.NotNil(t, state.Brightness)
	assert.Equal(t, uint8(120), *state.Brightness)
	require.NotNil(t, state.ColorSpaceCoordinates)
	assert.InDelta(t, 0.45, float64(state.ColorSpaceCoordinates.X), 1e-6)
}
