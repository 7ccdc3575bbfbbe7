package huelib

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type registerRequest struct {
	DeviceType        string `json:"devicetype"`
	GenerateClientKey bool   `json:"generateclientkey,omitempty"`
}

type registerSuccess struct {
	Username  string `json:"username"`
	ClientKey string `json:"clientkey"`
}

// RegisterUser registers a new user on the bridge at addr and returns the
// generated username. The devicetype conventionally has the form
// "application#device". The link button on the bridge must have been
// pressed beforehand; otherwise the bridge answers with error 101.
func RegisterUser(addr, devicetype string) (string, error) {
	success, err := registerUser(addr, registerRequest{DeviceType: devicetype})
	if err != nil {
		return "", err
	}
	return success.Username, nil
}

// RegisterUserWithClientKey registers a new user and additionally returns
// the client key used for entertainment streaming.
func RegisterUserWithClientKey(addr, devicetype string) (username, clientKey string, err error) {
	success, err := registerUser(addr, registerRequest{DeviceType: devicetype, GenerateClientKey: true})
	if err != nil {
		return "", "", err
	}
	return success.Username, success.ClientKey, nil
}

func registerUser(addr string, request registerRequest) (registerSuccess, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return registerSuccess{}, fmt.Errorf("encoding register request: %w", err)
	}

	url := fmt.Sprintf("http://%s/api", addr)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return registerSuccess{}, fmt.Errorf("sending POST %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return registerSuccess{}, fmt.Errorf("bridge returned status %s for POST %s", resp.Status, url)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return registerSuccess{}, fmt.Errorf("reading register response: %w", err)
	}

	var records []outcomeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return registerSuccess{}, &DecodeError{cause: err}
	}
	if len(records) == 0 {
		return registerSuccess{}, &DecodeError{cause: errors.New("empty register response")}
	}
	last := records[len(records)-1]
	if last.Error != nil {
		return registerSuccess{}, last.Error
	}

	var success registerSuccess
	if err := json.Unmarshal(last.Success, &success); err != nil {
		return registerSuccess{}, &DecodeError{cause: err}
	}
	return success, nil
}
