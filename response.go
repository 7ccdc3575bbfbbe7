package huelib

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BridgeError is an error that the bridge reported for a write
// sub-operation.
type BridgeError struct {
	// Numeric error type, e.g. 3 for "resource not available" or 101 for
	// "link button not pressed".
	Type int `json:"type"`
	// Address of the resource or attribute the error relates to.
	Address string `json:"address"`
	// Human readable description of the error.
	Description string `json:"description"`
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("bridge error %d at %s: %s", e.Type, e.Address, e.Description)
}

// DecodeError is returned when a bridge response does not match the shape
// expected for the requested value.
type DecodeError struct {
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding bridge response: %s", e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// outcomeRecord is one entry of a bridge write reply, tagged either
// "success" or "error".
type outcomeRecord struct {
	Success json.RawMessage `json:"success"`
	Error   *BridgeError    `json:"error"`
}

// Modified reports a single attribute changed by a write call. The bridge
// encodes it as a one-key object mapping the attribute's address to its new
// value.
type Modified struct {
	Address string
	Value   json.RawMessage
}

func (m *Modified) UnmarshalJSON(data []byte) error {
	var kv map[string]json.RawMessage
	if err := json.Unmarshal(data, &kv); err != nil {
		return err
	}
	if len(kv) != 1 {
		return fmt.Errorf("expected a single modified attribute, got %d", len(kv))
	}
	for address, value := range kv {
		m.Address = address
		m.Value = value
	}
	return nil
}

func (m Modified) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]json.RawMessage{m.Address: m.Value})
}

// Outcome is the result of one write sub-operation. Exactly one of Success
// and Error is set. Multi-field writes return one outcome per field, so a
// single call can partially succeed; callers that care must inspect every
// entry.
type Outcome struct {
	Success *Modified    `json:"success,omitempty"`
	Error   *BridgeError `json:"error,omitempty"`
}

// Err returns the bridge error of the outcome, or nil if it succeeded.
func (o Outcome) Err() error {
	if o.Error != nil {
		return o.Error
	}
	return nil
}

// unmarshalStrict rejects payloads with keys outside the target shape. Used
// to sniff outcome-record arrays without mistaking resource objects for
// them.
func unmarshalStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parseResponse normalizes a raw bridge payload into target.
//
// The bridge mixes two response shapes: write endpoints answer with an
// array of outcome records while read endpoints answer with a bare object.
// parseResponse first speculatively interprets the payload as an outcome
// array and fails if the last record carries an error tag; in every other
// case the original payload is decoded into target. A nil target skips the
// final decode.
func parseResponse(raw []byte, target any) error {
	var records []outcomeRecord
	if err := unmarshalStrict(raw, &records); err == nil && len(records) > 0 {
		if last := records[len(records)-1]; last.Error != nil {
			return last.Error
		}
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return &DecodeError{cause: err}
	}
	return nil
}

// firstError returns the first error tag found in records. Unlike
// parseResponse this inspects every record; delete and scan-start calls
// must fail even when only an intermediate record reports an error.
func firstError(records []outcomeRecord) error {
	for _, record := range records {
		if record.Error != nil {
			return record.Error
		}
	}
	return nil
}
