package huelib

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Resourcelink groups related resources, e.g. the rules and schedules
// backing one accessory.
type Resourcelink struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	// Always "Link".
	Kind    string `json:"type"`
	ClassID uint16 `json:"classid"`
	Recycle bool   `json:"recycle"`
	Links   []Link `json:"links"`
}

func (r Resourcelink) withID(id string) Resourcelink {
	r.ID = id
	return r
}

// LinkKind is the resource collection a link points into.
type LinkKind string

const (
	LinkGroup        LinkKind = "groups"
	LinkLight        LinkKind = "lights"
	LinkResourcelink LinkKind = "resourcelinks"
	LinkRule         LinkKind = "rules"
	LinkScene        LinkKind = "scenes"
	LinkSchedule     LinkKind = "schedules"
	LinkSensor       LinkKind = "sensors"
)

func (k LinkKind) valid() bool {
	switch k {
	case LinkGroup, LinkLight, LinkResourcelink, LinkRule, LinkScene, LinkSchedule, LinkSensor:
		return true
	}
	return false
}

// Link is a reference to a resource, encoded on the wire as
// "/<collection>/<id>".
type Link struct {
	Kind LinkKind
	ID   string
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("/%s/%s", l.Kind, l.ID))
}

func (l *Link) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return fmt.Errorf("expected link in the format /<kind>/<id>, got %q", s)
	}
	id := parts[len(parts)-1]
	kind := LinkKind(parts[len(parts)-2])
	if !kind.valid() {
		return fmt.Errorf("invalid link kind %q in %q", string(kind), s)
	}
	l.Kind = kind
	l.ID = id
	return nil
}

// ResourcelinkCreator creates a new resourcelink. The bridge assigns the
// identifier.
type ResourcelinkCreator struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Owner       *string `json:"owner,omitempty"`
	Kind        *string `json:"type,omitempty"`
	ClassID     uint16  `json:"classid"`
	Recycle     *bool   `json:"recycle,omitempty"`
	Links       []Link  `json:"links"`
}

// ResourcelinkModifier changes attributes of a resourcelink.
type ResourcelinkModifier struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Kind        *string `json:"type,omitempty"`
	ClassID     *uint16 `json:"classid,omitempty"`
	Links       []Link  `json:"links,omitempty"`
}

// CreateResourcelink creates a new resourcelink and returns its
// identifier.
func (b *Bridge) CreateResourcelink(creator ResourcelinkCreator) (string, error) {
	return createResource(b, "resourcelinks", creator)
}

// GetResourcelink returns the resourcelink with the given identifier.
func (b *Bridge) GetResourcelink(id string) (Resourcelink, error) {
	return getResource[Resourcelink](b, "resourcelinks", id)
}

// GetAllResourcelinks returns all resourcelinks, in unspecified order.
func (b *Bridge) GetAllResourcelinks() ([]Resourcelink, error) {
	return getAllResources[Resourcelink](b, "resourcelinks")
}

// SetResourcelink modifies a resourcelink and returns the per-field
// outcomes.
func (b *Bridge) SetResourcelink(id string, modifier ResourcelinkModifier) ([]Outcome, error) {
	return setResource(b, "resourcelinks/"+id, modifier)
}

// DeleteResourcelink deletes a resourcelink from the bridge.
func (b *Bridge) DeleteResourcelink(id string) error {
	return deleteResource(b, "resourcelinks/"+id)
}
