package huelib

import "net/http"

// Config is the configuration of the bridge itself.
type Config struct {
	Name             string                    `json:"name"`
	SoftwareVersion  string                    `json:"swversion"`
	APIVersion       string                    `json:"apiversion"`
	LinkButton       bool                      `json:"linkbutton"`
	IPAddress        string                    `json:"ipaddress"`
	MACAddress       string                    `json:"mac"`
	Netmask          string                    `json:"netmask"`
	Gateway          string                    `json:"gateway"`
	DHCP             bool                      `json:"dhcp"`
	PortalServices   bool                      `json:"portalservices"`
	UTC              *Time                     `json:"UTC,omitempty"`
	LocalTime        *Time                     `json:"localtime,omitempty"`
	Timezone         string                    `json:"timezone"`
	ZigbeeChannel    uint8                     `json:"zigbeechannel"`
	ModelID          string                    `json:"modelid"`
	BridgeID         string                    `json:"bridgeid"`
	FactoryNew       bool                      `json:"factorynew"`
	ReplacesBridgeID *string                   `json:"replacesbridgeid,omitempty"`
	DatastoreVersion string                    `json:"datastoreversion"`
	Whitelist        map[string]WhitelistEntry `json:"whitelist"`
}

// WhitelistEntry is a user that is registered on the bridge.
type WhitelistEntry struct {
	Name        string `json:"name"`
	CreateDate  Time   `json:"create date"`
	LastUseDate Time   `json:"last use date"`
}

// ConfigModifier changes the configuration of the bridge.
type ConfigModifier struct {
	Name      *string `json:"name,omitempty"`
	IPAddress *string `json:"ipaddress,omitempty"`
	Netmask   *string `json:"netmask,omitempty"`
	Gateway   *string `json:"gateway,omitempty"`
	DHCP      *bool   `json:"dhcp,omitempty"`
	ProxyPort *uint16 `json:"proxyport,omitempty"`
	ProxyAddr *string `json:"proxyaddress,omitempty"`
	// The bridge resets the link button after 30 seconds on its own.
	LinkButton    *bool  `json:"linkbutton,omitempty"`
	Touchlink     *bool  `json:"touchlink,omitempty"`
	ZigbeeChannel *uint8 `json:"zigbeechannel,omitempty"`
	CurrentTime   *Time  `json:"UTC,omitempty"`
	Timezone      *string `json:"timezone,omitempty"`
}

// GetConfig returns the configuration of the bridge. Unlike other
// resources the configuration has no identifier.
func (b *Bridge) GetConfig() (Config, error) {
	raw, err := b.request(http.MethodGet, "config", nil)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := parseResponse(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetConfig modifies the configuration of the bridge and returns the
// per-field outcomes.
func (b *Bridge) SetConfig(modifier ConfigModifier) ([]Outcome, error) {
	return setResource(b, "config", modifier)
}
