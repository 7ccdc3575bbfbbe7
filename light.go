package huelib

// Light is a light that is connected to the bridge.
type Light struct {
	// Identifier of the light; not part of the JSON body, injected from
	// the collection key or the request path.
	ID               string              `json:"-"`
	Name             string              `json:"name"`
	Kind             string              `json:"type"`
	State            LightState          `json:"state"`
	ModelID          string              `json:"modelid"`
	UniqueID         string              `json:"uniqueid"`
	ProductID        *string             `json:"productid,omitempty"`
	ProductName      *string             `json:"productname,omitempty"`
	ManufacturerName *string             `json:"manufacturername,omitempty"`
	SoftwareVersion  string              `json:"swversion"`
	SoftwareUpdate   LightSoftwareUpdate `json:"swupdate"`
	Config           LightConfig         `json:"config"`
	Capabilities     LightCapabilities   `json:"capabilities"`
}

func (l Light) withID(id string) Light {
	l.ID = id
	return l
}

// LightState is the current state of a light. Attributes the hardware does
// not support are absent.
type LightState struct {
	On *bool `json:"on,omitempty"`
	// Brightness between 1 (minimum) and 254 (maximum).
	Brightness *uint8 `json:"bri,omitempty"`
	// Hue of the color; 0 and 65535 are red, 25500 is green, 46920 is
	// blue.
	Hue *uint16 `json:"hue,omitempty"`
	// Saturation between 0 (white) and 254 (most saturated).
	Saturation *uint8 `json:"sat,omitempty"`
	// Coordinates of the color in CIE color space.
	ColorSpaceCoordinates *XY `json:"xy,omitempty"`
	// Mired color temperature.
	ColorTemperature *uint16    `json:"ct,omitempty"`
	Alert            *Alert     `json:"alert,omitempty"`
	Effect           *Effect    `json:"effect,omitempty"`
	ColorMode        *ColorMode `json:"colormode,omitempty"`
	Reachable        bool       `json:"reachable"`
}

// LightSoftwareUpdate describes firmware update state of a light.
type LightSoftwareUpdate struct {
	// One of "noupdates", "notupdatable", "transferring" or
	// "readytoinstall".
	State       string `json:"state"`
	LastInstall *Time  `json:"lastinstall,omitempty"`
}

// LightConfig is the hardware configuration of a light.
type LightConfig struct {
	ArcheType string        `json:"archetype"`
	Function  string        `json:"function"`
	Direction string        `json:"direction"`
	Startup   *LightStartup `json:"startup,omitempty"`
}

// LightStartup is the power-on behavior of a light.
type LightStartup struct {
	Mode       string `json:"mode"`
	Configured bool   `json:"configured"`
}

// LightCapabilities describes what a light supports.
type LightCapabilities struct {
	Certified bool                     `json:"certified"`
	Control   LightControlCapabilities `json:"control"`
	Streaming StreamingCapabilities    `json:"streaming"`
}

// LightControlCapabilities describes the controllable range of a light.
type LightControlCapabilities struct {
	MinDimLevel      *int                   `json:"mindimlevel,omitempty"`
	MaxLumen         *int                   `json:"maxlumen,omitempty"`
	ColorGamut       []XY                   `json:"colorgamut,omitempty"`
	ColorGamutType   *string                `json:"colorgamuttype,omitempty"`
	ColorTemperature *ColorTemperatureRange `json:"ct,omitempty"`
}

// ColorTemperatureRange is the mired color temperature range of a light.
type ColorTemperatureRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// StreamingCapabilities describes entertainment streaming support.
type StreamingCapabilities struct {
	Renderer bool `json:"renderer"`
	Proxy    bool `json:"proxy"`
}

// LightAttributeModifier changes attributes of a light. Only set fields
// are sent to the bridge.
type LightAttributeModifier struct {
	Name *string `json:"name,omitempty"`
}

// LightStateModifier changes the state of a light. Only set fields are
// sent; numeric fields either override the attribute or adjust it
// relative to its current value.
type LightStateModifier struct {
	On                    *bool
	Brightness            *Adjust[uint8]
	Hue                   *Adjust[uint16]
	Saturation            *Adjust[uint8]
	ColorSpaceCoordinates *AdjustXY
	ColorTemperature      *Adjust[uint16]
	Alert                 *Alert
	Effect                *Effect
	// Transition duration of the state change as a multiple of 100ms.
	TransitionTime *uint16
}

func (m LightStateModifier) MarshalJSON() ([]byte, error) {
	var o wireObject
	putOpt(&o, "on", m.On)
	putAdjust(&o, "bri", m.Brightness)
	putAdjust(&o, "hue", m.Hue)
	putAdjust(&o, "sat", m.Saturation)
	putAdjustXY(&o, "xy", m.ColorSpaceCoordinates)
	putAdjust(&o, "ct", m.ColorTemperature)
	putOpt(&o, "alert", m.Alert)
	putOpt(&o, "effect", m.Effect)
	putOpt(&o, "transitiontime", m.TransitionTime)
	return o.MarshalJSON()
}

// StaticLightState is a light state without increment or alert support,
// used for the per-light states of scenes.
type StaticLightState struct {
	On                    *bool   `json:"on,omitempty"`
	Brightness            *uint8  `json:"bri,omitempty"`
	Hue                   *uint16 `json:"hue,omitempty"`
	Saturation            *uint8  `json:"sat,omitempty"`
	ColorSpaceCoordinates *XY     `json:"xy,omitempty"`
	ColorTemperature      *uint16 `json:"ct,omitempty"`
	Effect                *Effect `json:"effect,omitempty"`
	TransitionTime        *uint16 `json:"transitiontime,omitempty"`
}

// GetLight returns the light with the given identifier.
func (b *Bridge) GetLight(id string) (Light, error) {
	return getResource[Light](b, "lights", id)
}

// GetAllLights returns all lights that are connected to the bridge, in
// unspecified order.
func (b *Bridge) GetAllLights() ([]Light, error) {
	return getAllResources[Light](b, "lights")
}

// SetLightAttributes modifies attributes of a light and returns the
// per-field outcomes.
func (b *Bridge) SetLightAttributes(id string, modifier LightAttributeModifier) ([]Outcome, error) {
	return setResource(b, "lights/"+id, modifier)
}

// SetLightState modifies the state of a light and returns the per-field
// outcomes.
func (b *Bridge) SetLightState(id string, modifier LightStateModifier) ([]Outcome, error) {
	return setResource(b, "lights/"+id+"/state", modifier)
}

// DeleteLight deletes a light from the bridge.
func (b *Bridge) DeleteLight(id string) error {
	return deleteResource(b, "lights/"+id)
}

// SearchNewLights starts a search for new lights. The bridge opens the
// network for about 40 seconds; results become available through
// GetNewLights once the search finished.
func (b *Bridge) SearchNewLights(scanner Scanner) error {
	return startScan(b, "lights", scanner)
}

// GetNewLights returns the lights discovered by the last search.
func (b *Bridge) GetNewLights() (Scan, error) {
	return getScan(b, "lights")
}
