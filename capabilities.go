package huelib

import "net/http"

// Capabilities reports how many resources of each kind the bridge can
// still hold, plus streaming and timezone support.
type Capabilities struct {
	Lights        CapabilityInfo      `json:"lights"`
	Groups        CapabilityInfo      `json:"groups"`
	Scenes        CapabilityInfo      `json:"scenes"`
	Schedules     CapabilityInfo      `json:"schedules"`
	Rules         CapabilityInfo      `json:"rules"`
	Sensors       CapabilityInfo      `json:"sensors"`
	Resourcelinks CapabilityInfo      `json:"resourcelinks"`
	Streaming     StreamingCapability `json:"streaming"`
	Timezones     TimezonesCapability `json:"timezones"`
}

// CapabilityInfo is the remaining capacity of one resource collection.
type CapabilityInfo struct {
	Available int  `json:"available"`
	Total     *int `json:"total,omitempty"`
}

// StreamingCapability is the remaining entertainment streaming capacity.
type StreamingCapability struct {
	Available int `json:"available"`
	Total     int `json:"total"`
	Channels  int `json:"channels"`
}

// TimezonesCapability lists the timezones the bridge supports.
type TimezonesCapability struct {
	Values []string `json:"values"`
}

// GetCapabilities returns the capabilities of the bridge.
func (b *Bridge) GetCapabilities() (Capabilities, error) {
	raw, err := b.request(http.MethodGet, "capabilities", nil)
	if err != nil {
		return Capabilities{}, err
	}
	var caps Capabilities
	if err := parseResponse(raw, &caps); err != nil {
		return Capabilities{}, err
	}
	return caps, nil
}
