package huelib

// Sensor is a sensor that is connected to the bridge, e.g. a motion sensor
// or a CLIP (software) sensor.
type Sensor struct {
	ID               string       `json:"-"`
	Name             string       `json:"name"`
	Kind             string       `json:"type"`
	ModelID          string       `json:"modelid"`
	UniqueID         *string      `json:"uniqueid,omitempty"`
	ManufacturerName *string      `json:"manufacturername,omitempty"`
	SoftwareVersion  *string      `json:"swversion,omitempty"`
	State            SensorState  `json:"state"`
	Config           SensorConfig `json:"config"`
	Recycle          *bool        `json:"recycle,omitempty"`
}

func (s Sensor) withID(id string) Sensor {
	s.ID = id
	return s
}

// SensorState is the current state of a sensor. Which attributes are
// present depends on the sensor type.
type SensorState struct {
	Presence    *bool `json:"presence,omitempty"`
	Open        *bool `json:"open,omitempty"`
	Flag        *bool `json:"flag,omitempty"`
	Status      *int  `json:"status,omitempty"`
	LastUpdated *Time `json:"lastupdated,omitempty"`
}

// SensorConfig is the configuration of a sensor.
type SensorConfig struct {
	On        *bool  `json:"on,omitempty"`
	Reachable *bool  `json:"reachable,omitempty"`
	Battery   *uint8 `json:"battery,omitempty"`
}

// SensorCreator creates a new CLIP sensor. The bridge assigns the
// identifier; hardware sensors are added through a search instead.
type SensorCreator struct {
	Name             string        `json:"name"`
	Kind             string        `json:"type"`
	ModelID          string        `json:"modelid"`
	SoftwareVersion  string        `json:"swversion"`
	UniqueID         string        `json:"uniqueid"`
	ManufacturerName string        `json:"manufacturername"`
	State            *SensorState  `json:"state,omitempty"`
	Config           *SensorConfig `json:"config,omitempty"`
	Recycle          *bool         `json:"recycle,omitempty"`
}

// SensorAttributeModifier changes attributes of a sensor.
type SensorAttributeModifier struct {
	Name *string `json:"name,omitempty"`
}

// SensorStateModifier changes the state of a CLIP sensor.
type SensorStateModifier struct {
	Presence *bool `json:"presence,omitempty"`
	Open     *bool `json:"open,omitempty"`
	Flag     *bool `json:"flag,omitempty"`
	Status   *int  `json:"status,omitempty"`
}

// SensorConfigModifier changes the configuration of a sensor.
type SensorConfigModifier struct {
	On *bool `json:"on,omitempty"`
}

// CreateSensor creates a new CLIP sensor and returns its identifier.
func (b *Bridge) CreateSensor(creator SensorCreator) (string, error) {
	return createResource(b, "sensors", creator)
}

// GetSensor returns the sensor with the given identifier.
func (b *Bridge) GetSensor(id string) (Sensor, error) {
	return getResource[Sensor](b, "sensors", id)
}

// GetAllSensors returns all sensors that are connected to the bridge, in
// unspecified order.
func (b *Bridge) GetAllSensors() ([]Sensor, error) {
	return getAllResources[Sensor](b, "sensors")
}

// SetSensorAttributes modifies attributes of a sensor and returns the
// per-field outcomes.
func (b *Bridge) SetSensorAttributes(id string, modifier SensorAttributeModifier) ([]Outcome, error) {
	return setResource(b, "sensors/"+id, modifier)
}

// SetSensorState modifies the state of a sensor and returns the per-field
// outcomes.
func (b *Bridge) SetSensorState(id string, modifier SensorStateModifier) ([]Outcome, error) {
	return setResource(b, "sensors/"+id+"/state", modifier)
}

// SetSensorConfig modifies the configuration of a sensor and returns the
// per-field outcomes.
func (b *Bridge) SetSensorConfig(id string, modifier SensorConfigModifier) ([]Outcome, error) {
	return setResource(b, "sensors/"+id+"/config", modifier)
}

// SearchNewSensors starts a search for new sensors. The bridge opens the
// network for about 40 seconds; results become available through
// GetNewSensors once the search finished.
func (b *Bridge) SearchNewSensors(scanner Scanner) error {
	return startScan(b, "sensors", scanner)
}

// GetNewSensors returns the sensors discovered by the last search.
func (b *Bridge) GetNewSensors() (Scan, error) {
	return getScan(b, "sensors")
}

// DeleteSensor deletes a sensor from the bridge.
func (b *Bridge) DeleteSensor(id string) error {
	return deleteResource(b, "sensors/"+id)
}
