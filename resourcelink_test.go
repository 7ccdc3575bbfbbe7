package huelib_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssoudan/huelib"
)

func Test_Link_Decode(t *testing.T) {

	tests := []struct {
		name      string
		raw       string
		expected  huelib.Link
		expectErr string
	}{
		{
			name:     "light reference",
			raw:      `"/lights/3"`,
			expected: huelib.Link{Kind: huelib.LinkLight, ID: "3"},
		},
		{
			name:     "schedule reference",
			raw:      `"/schedules/abc"`,
			expected: huelib.Link{Kind: huelib.LinkSchedule, ID: "abc"},
		},
		{
			name:      "unknown kind prefix fails to decode",
			raw:       `"/unknowns/3"`,
			expectErr: "invalid link kind",
		},
		{
			name:      "missing id",
			raw:       `"lights"`,
			expectErr: "expected link in the format",
		},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			var link huelib.Link
			err := json.Unmarshal([]byte(c.raw), &link)
			if c.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), c.expectErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, c.expected, link)
			}
		})
	}
}

func Test_Link_RoundTrip(t *testing.T) {

	link := huelib.Link{Kind: huelib.LinkSensor, ID: "12"}

	data, err := json.Marshal(link)
	require.NoError(t, err)
	assert.Equal(t, `"/sensors/12"`, string(data))

	var decoded huelib.Link
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, link, decoded)
}

func Test_Resourcelink_Decode(t *testing.T) {

	raw := `{
		"name": "Sunrise",
		"description": "Carla's wake up routine",
		"owner": "78H56B12BA",
		"type": "Link",
		"classid": 1,
		"recycle": false,
		"links": ["/schedules/2", "/schedules/3", "/scenes/ABCD"]
	}`

	var link huelib.Resourcelink
	require.NoError(t, json.Unmarshal([]byte(raw), &link))
	assert.Equal(t, "Sunrise", link.Name)
	assert.Equal(t, uint16(1), link.ClassID)
	require.Len(t, link.Links, 3)
	assert.Equal(t, huelib.Link{Kind: huelib.LinkSchedule, ID: "2"}, link.Links[0])
	assert.Equal(t, huelib.Link{Kind: huelib.LinkScene, ID: "ABCD"}, link.Links[2])
}

func Test_ResourcelinkCreator_Serialize(t *testing.T) {

	creator := huelib.ResourcelinkCreator{
		Name:    "Sunrise",
		ClassID: 1,
		Links:   []huelib.Link{{Kind: huelib.LinkSchedule, ID: "2"}},
	}

	data, err := json.Marshal(creator)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Sunrise","classid":1,"links":["/schedules/2"]}`, string(data))
}
