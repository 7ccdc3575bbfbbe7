package huelib

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samber/lo"
)

// discoveryEndpoint is the public nupnp directory that bridges register
// themselves with.
var discoveryEndpoint = "https://discovery.meethue.com"

type discoveryEntry struct {
	ID                string `json:"id"`
	InternalIPAddress string `json:"internalipaddress"`
}

// DiscoverBridges queries the public discovery directory and returns the
// internal IP addresses of the bridges found in the local network. A nil
// client falls back to http.DefaultClient.
func DiscoverBridges(client *http.Client) ([]string, error) {
	return discoverBridges(client, discoveryEndpoint)
}

func discoverBridges(client *http.Client, endpoint string) ([]string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("querying discovery directory: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discovery directory returned status %s", resp.Status)
	}

	var entries []discoveryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &DecodeError{cause: err}
	}
	return lo.Map(entries, func(e discoveryEntry, _ int) string { return e.InternalIPAddress }), nil
}
