// Package ns1 is a minimal client for the NS1 managed DNS REST API covering
// the calls needed to inspect and replace record answer sets.
package ns1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

const (
	// DefaultEndpoint is the public NS1 API base URL
	DefaultEndpoint = "https://api.nsone.net/v1"
	// DefaultTimeout bounds every request
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader carries the credential on every request
	APIKeyHeader = "X-NSONE-Key"
)

// Client is an HTTP API client for NS1
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new NS1 API client
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultEndpoint
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs an HTTP request with proper headers and maps the
// response status onto the record error kinds
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("calling NS1 API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", record.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", record.ErrTransport, err)
	}

	c.log.WithFields(logrus.Fields{"method": method, "path": path, "status": resp.StatusCode}).Debug("NS1 API responded")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return respBody, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", record.ErrNotFound, errorMessage(respBody, resp.Status))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", record.ErrAuth, errorMessage(respBody, resp.Status))
	default:
		return nil, fmt.Errorf("%w: API request failed with status %d: %s", record.ErrTransport, resp.StatusCode, errorMessage(respBody, resp.Status))
	}
}

// errorMessage extracts the provider's message from an error body
func errorMessage(body []byte, fallback string) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return fallback
}

func recordPath(key record.Key) string {
	return fmt.Sprintf("/zones/%s/%s/%s", url.PathEscape(key.Zone), url.PathEscape(key.Domain), url.PathEscape(key.Type))
}

// FetchRecord returns the current answers of a record
func (c *Client) FetchRecord(ctx context.Context, key record.Key) (record.Values, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	respBody, err := c.doRequest(ctx, http.MethodGet, recordPath(key), nil, nil)
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(respBody, &rec); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal record: %v", record.ErrTransport, err)
	}
	return rec.Values(), nil
}

// UpdateRecord replaces the answers of an existing record and returns the
// answers the provider confirmed
func (c *Client) UpdateRecord(ctx context.Context, key record.Key, values record.Values) (record.Values, error) {
	return c.writeRecord(ctx, http.MethodPost, key, values)
}

// CreateRecord creates a record with the given answers
func (c *Client) CreateRecord(ctx context.Context, key record.Key, values record.Values) (record.Values, error) {
	return c.writeRecord(ctx, http.MethodPut, key, values)
}

func (c *Client) writeRecord(ctx context.Context, method string, key record.Key, values record.Values) (record.Values, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if err := record.ValidateValues(key.Type, values); err != nil {
		return nil, err
	}

	respBody, err := c.doRequest(ctx, method, recordPath(key), nil, newRecordPayload(key, values))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(respBody, &rec); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal record: %v", record.ErrTransport, err)
	}
	return rec.Values(), nil
}

// SearchRecords returns the records whose name matches the query
func (c *Client) SearchRecords(ctx context.Context, fqdn string) ([]record.Record, error) {
	if err := record.ValidateName(record.NormalizeName(fqdn)); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", record.NormalizeName(fqdn))
	query.Set("type", "record")

	respBody, err := c.doRequest(ctx, http.MethodGet, "/search", query, nil)
	if err != nil {
		return nil, err
	}

	found, err := decodeSearch(respBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal search results: %v", record.ErrTransport, err)
	}

	records := make([]record.Record, 0, len(found))
	for _, r := range found {
		if r.Domain == "" || r.Type == "" {
			continue
		}
		records = append(records, r.toRecord())
	}
	return records, nil
}

// decodeSearch accepts both the bare list form and the wrapped
// {"results": [...]} form of the search response
func decodeSearch(body []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '{' {
		var wrapped struct {
			Results []Record `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, err
		}
		return wrapped.Results, nil
	}

	var list []Record
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, err
	}
	return list, nil
}
