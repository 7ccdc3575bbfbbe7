package huelib

// Group is a group of lights, e.g. a room or zone.
type Group struct {
	ID      string   `json:"-"`
	Name    string   `json:"name"`
	Lights  []string `json:"lights"`
	Sensors []string `json:"sensors"`
	// One of "LightGroup", "Room", "Luminaire", "LightSource", "Zone" or
	// "Entertainment".
	Kind     string      `json:"type"`
	Class    *string     `json:"class,omitempty"`
	State    *GroupState `json:"state,omitempty"`
	ModelID  *string     `json:"modelid,omitempty"`
	UniqueID *string     `json:"uniqueid,omitempty"`
	Recycle  *bool       `json:"recycle,omitempty"`
}

func (g Group) withID(id string) Group {
	g.ID = id
	return g
}

// GroupState is the aggregated on state of the lights in a group.
type GroupState struct {
	AllOn bool `json:"all_on"`
	AnyOn bool `json:"any_on"`
}

// GroupCreator creates a new group. The bridge assigns the identifier.
type GroupCreator struct {
	Name    string   `json:"name"`
	Lights  []string `json:"lights,omitempty"`
	Sensors []string `json:"sensors,omitempty"`
	Kind    *string  `json:"type,omitempty"`
	Class   *string  `json:"class,omitempty"`
	Recycle *bool    `json:"recycle,omitempty"`
}

// GroupAttributeModifier changes attributes of a group.
type GroupAttributeModifier struct {
	Name    *string  `json:"name,omitempty"`
	Lights  []string `json:"lights,omitempty"`
	Sensors []string `json:"sensors,omitempty"`
	Class   *string  `json:"class,omitempty"`
}

// GroupStateModifier changes the state of every light in a group at once.
type GroupStateModifier struct {
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
	// Scene to recall for the group.
	Scene *string
}

func (m GroupStateModifier) MarshalJSON() ([]byte, error) {
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
	putOpt(&o, "scene", m.Scene)
	return o.MarshalJSON()
}

// CreateGroup creates a new group and returns its identifier.
func (b *Bridge) CreateGroup(creator GroupCreator) (string, error) {
	return createResource(b, "groups", creator)
}

// GetGroup returns the group with the given identifier.
func (b *Bridge) GetGroup(id string) (Group, error) {
	return getResource[Group](b, "groups", id)
}

// GetAllGroups returns all groups, in unspecified order.
func (b *Bridge) GetAllGroups() ([]Group, error) {
	return getAllResources[Group](b, "groups")
}

// SetGroupAttributes modifies attributes of a group and returns the
// per-field outcomes.
func (b *Bridge) SetGroupAttributes(id string, modifier GroupAttributeModifier) ([]Outcome, error) {
	return setResource(b, "groups/"+id, modifier)
}

// SetGroupState modifies the state of all lights in a group and returns
// the per-field outcomes.
func (b *Bridge) SetGroupState(id string, modifier GroupStateModifier) ([]Outcome, error) {
	return setResource(b, "groups/"+id+"/action", modifier)
}

// DeleteGroup deletes a group from the bridge.
func (b *Bridge) DeleteGroup(id string) error {
	return deleteResource(b, "groups/"+id)
}
