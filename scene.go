package huelib

// Scene is a stored set of light states that can be recalled.
type Scene struct {
	ID   string `json:"-"`
	Name string `json:"name"`
	// "LightScene" or "GroupScene".
	Kind        *string                     `json:"type,omitempty"`
	Group       *string                     `json:"group,omitempty"`
	Lights      []string                    `json:"lights"`
	Owner       string                      `json:"owner"`
	Recycle     bool                        `json:"recycle"`
	Locked      bool                        `json:"locked"`
	AppData     *AppData                    `json:"appdata,omitempty"`
	Picture     *string                     `json:"picture,omitempty"`
	LastUpdate  *Time                       `json:"lastupdated,omitempty"`
	Version     int                         `json:"version"`
	LightStates map[string]StaticLightState `json:"lightstates,omitempty"`
}

func (s Scene) withID(id string) Scene {
	s.ID = id
	return s
}

// AppData is application-specific data attached to a scene.
type AppData struct {
	Version *int8   `json:"version,omitempty"`
	Data    *string `json:"data,omitempty"`
}

// SceneCreator creates a new scene. The bridge assigns the identifier.
type SceneCreator struct {
	Name        string                      `json:"name"`
	Lights      []string                    `json:"lights"`
	Kind        *string                     `json:"type,omitempty"`
	AppData     *AppData                    `json:"appdata,omitempty"`
	LightStates map[string]StaticLightState `json:"lightstates,omitempty"`
	Recycle     *bool                       `json:"recycle,omitempty"`
}

// SceneModifier changes the attributes and stored light states of a scene.
type SceneModifier struct {
	Name        *string                     `json:"name,omitempty"`
	Lights      []string                    `json:"lights,omitempty"`
	LightStates map[string]StaticLightState `json:"lightstates,omitempty"`
	// Overwrite the stored light states with the current ones.
	StoreLightState *bool `json:"storelightstate,omitempty"`
}

// CreateScene creates a new scene and returns its identifier.
func (b *Bridge) CreateScene(creator SceneCreator) (string, error) {
	return createResource(b, "scenes", creator)
}

// GetScene returns the scene with the given identifier.
func (b *Bridge) GetScene(id string) (Scene, error) {
	return getResource[Scene](b, "scenes", id)
}

// GetAllScenes returns all scenes, in unspecified order.
func (b *Bridge) GetAllScenes() ([]Scene, error) {
	return getAllResources[Scene](b, "scenes")
}

// SetScene modifies a scene and returns the per-field outcomes.
func (b *Bridge) SetScene(id string, modifier SceneModifier) ([]Outcome, error) {
	return setResource(b, "scenes/"+id, modifier)
}

// DeleteScene deletes a scene from the bridge.
func (b *Bridge) DeleteScene(id string) error {
	return deleteResource(b, "scenes/"+id)
}
