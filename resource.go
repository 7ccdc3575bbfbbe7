package huelib

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Alert is a temporary visual effect of a light.
type Alert string

const (
	// AlertSelect performs one breathe cycle.
	AlertSelect Alert = "select"
	// AlertLSelect performs breathe cycles for 15 seconds.
	AlertLSelect Alert = "lselect"
	// AlertNone disables any running alert.
	AlertNone Alert = "none"
)

// Effect is a dynamic effect of a light.
type Effect string

const (
	EffectColorLoop Effect = "colorloop"
	EffectNone      Effect = "none"
)

// ColorMode indicates which color attribute currently drives a light.
type ColorMode string

const (
	ColorModeHueSaturation    ColorMode = "hs"
	ColorModeColorTemperature ColorMode = "ct"
	ColorModeCoordinates      ColorMode = "xy"
)

// Action is a request the bridge executes on behalf of a schedule or rule.
type Action struct {
	Address string         `json:"address"`
	Method  string         `json:"method"`
	Body    map[string]any `json:"body"`
}

// bridgeTimeLayout is the zone-less timestamp format the bridge uses.
const bridgeTimeLayout = "2006-01-02T15:04:05"

// Time is a bridge timestamp. The bridge reports the string "none" for
// timestamps that were never set; these decode to the zero Time.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" || s == "none" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(bridgeTimeLayout, s)
	if err != nil {
		return fmt.Errorf("parsing bridge timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("none")
	}
	return json.Marshal(t.Format(bridgeTimeLayout))
}

// Scanner configures a device search. The zero value requests a general
// scan; DeviceIDs restricts the search to specific devices.
type Scanner struct {
	DeviceIDs []string `json:"deviceid,omitempty"`
}

// LastScan is the status of the most recent device search.
type LastScan struct {
	// Whether a search is currently running.
	Active bool
	// Completion time of the last finished search, zero if the bridge
	// never ran one.
	Time Time
}

// Scan holds the devices found by the last search together with its
// status.
type Scan struct {
	LastScan  LastScan
	Resources []ScanResource
}

// ScanResource is a device found by a scan.
type ScanResource struct {
	ID   string
	Name string
}

// The bridge mixes the "lastscan" status entry into the map of discovered
// devices, so Scan cannot be decoded with struct tags alone.
func (s *Scan) UnmarshalJSON(data []byte) error {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	s.Resources = s.Resources[:0]
	for id, raw := range entries {
		if id == "lastscan" {
			var status string
			if err := json.Unmarshal(raw, &status); err != nil {
				return err
			}
			switch status {
			case "active":
				s.LastScan = LastScan{Active: true}
			case "none":
				s.LastScan = LastScan{}
			default:
				parsed, err := time.Parse(bridgeTimeLayout, status)
				if err != nil {
					return fmt.Errorf("parsing lastscan %q: %w", status, err)
				}
				s.LastScan = LastScan{Time: Time{parsed}}
			}
			continue
		}
		var info struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &info); err != nil {
			return err
		}
		s.Resources = append(s.Resources, ScanResource{ID: id, Name: info.Name})
	}
	sort.Slice(s.Resources, func(i, j int) bool { return s.Resources[i].ID < s.Resources[j].ID })
	return nil
}
