package huelib

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// Bridge is a handle to a Hue bridge with a registered username. The value
// is immutable and safe for concurrent use from multiple goroutines; every
// method performs exactly one blocking HTTP round trip with no retries and
// no shared state. Timeouts are whatever the configured http.Client
// enforces.
type Bridge struct {
	addr     string
	username string
	apiURL   string

	client *http.Client
	logger *log.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithHTTPClient replaces the http.Client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(b *Bridge) { b.client = client }
}

// WithLogger replaces the logger used for request debug logging.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bridge) { b.logger = logger }
}

// NewBridge returns a handle to the bridge at addr (IP address or host,
// optionally with port) for the given registered username.
func NewBridge(addr, username string, opts ...Option) *Bridge {
	b := &Bridge{
		addr:     addr,
		username: username,
		apiURL:   fmt.Sprintf("http://%s/api/%s", addr, username),
		client:   http.DefaultClient,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Addr returns the network address of the bridge.
func (b *Bridge) Addr() string { return b.addr }

// Username returns the name of the user that is registered on the bridge.
func (b *Bridge) Username() string { return b.username }

// request performs one HTTP round trip against the bridge API and returns
// the raw response body. A non-nil body is JSON encoded.
func (b *Bridge) request(method, suffix string, body any) ([]byte, error) {
	url := b.apiURL
	if suffix != "" {
		url += "/" + suffix
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	b.logger.Debug("bridge request complete", "method", method, "url", url, "status", resp.Status)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bridge returned status %s for %s %s", resp.Status, method, url)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", method, url, err)
	}
	return raw, nil
}

// identifiable is a resource whose bridge-assigned identifier is not part
// of its JSON body and has to be injected after decoding.
type identifiable[T any] interface {
	withID(id string) T
}

func getResource[T identifiable[T]](b *Bridge, collection, id string) (T, error) {
	var zero T
	raw, err := b.request(http.MethodGet, collection+"/"+id, nil)
	if err != nil {
		return zero, err
	}
	var v T
	if err := parseResponse(raw, &v); err != nil {
		return zero, err
	}
	return v.withID(id), nil
}

func getAllResources[T identifiable[T]](b *Bridge, collection string) ([]T, error) {
	raw, err := b.request(http.MethodGet, collection, nil)
	if err != nil {
		return nil, err
	}
	var byID map[string]T
	if err := parseResponse(raw, &byID); err != nil {
		return nil, err
	}
	return lo.MapToSlice(byID, func(id string, v T) T { return v.withID(id) }), nil
}

// setResource issues a PUT and returns the per-field outcomes as reported
// by the bridge. Individual field errors do not fail the call; callers that
// need all-or-nothing semantics must inspect the outcomes.
func setResource(b *Bridge, suffix string, modifier any) ([]Outcome, error) {
	raw, err := b.request(http.MethodPut, suffix, modifier)
	if err != nil {
		return nil, err
	}
	var outcomes []Outcome
	if err := json.Unmarshal(raw, &outcomes); err != nil {
		return nil, &DecodeError{cause: err}
	}
	return outcomes, nil
}

// createResource issues a POST and returns the identifier the bridge
// assigned to the new resource.
func createResource(b *Bridge, collection string, creator any) (string, error) {
	raw, err := b.request(http.MethodPost, collection, creator)
	if err != nil {
		return "", err
	}
	var records []outcomeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return "", &DecodeError{cause: err}
	}
	if len(records) == 0 {
		return "", &DecodeError{cause: errors.New("empty create response")}
	}
	last := records[len(records)-1]
	if last.Error != nil {
		return "", last.Error
	}
	var success struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(last.Success, &success); err != nil {
		return "", &DecodeError{cause: err}
	}
	return success.ID, nil
}

// deleteResource issues a DELETE and fails on the first error record, even
// when earlier records report success.
func deleteResource(b *Bridge, suffix string) error {
	raw, err := b.request(http.MethodDelete, suffix, nil)
	if err != nil {
		return err
	}
	var records []outcomeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return &DecodeError{cause: err}
	}
	return firstError(records)
}

// startScan asks the bridge to search the given collection for new
// devices. The bridge keeps the network open for roughly 40 seconds.
func startScan(b *Bridge, collection string, scanner Scanner) error {
	raw, err := b.request(http.MethodPost, collection, scanner)
	if err != nil {
		return err
	}
	var records []outcomeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return &DecodeError{cause: err}
	}
	return firstError(records)
}

func getScan(b *Bridge, collection string) (Scan, error) {
	raw, err := b.request(http.MethodGet, collection+"/new", nil)
	if err != nil {
		return Scan{}, err
	}
	var scan Scan
	if err := parseResponse(raw, &scan); err != nil {
		return Scan{}, err
	}
	return scan, nil
}
