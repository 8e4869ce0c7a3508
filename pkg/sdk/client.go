package keepstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the keepstack SDK entry point. It talks to the HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a keepstack Client for the given base URL
// (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.apiKey,
		httpClient: hc,
	}
}

// Query asks a question about the user's saved content.
func (c *Client) Query(ctx context.Context, req QueryRequest) (QueryResponse, error) {
	var resp QueryResponse
	if err := c.post(ctx, "/v1/query", req, &resp, http.StatusOK); err != nil {
		return QueryResponse{}, err
	}
	return resp, nil
}

// SaveItem saves a content item for the user. Indexed=false in the
// result means the item was accepted but not yet searchable.
func (c *Client) SaveItem(ctx context.Context, userID string, item Item) (SaveResult, error) {
	body := struct {
		UserID string `json:"userId"`
		Item   Item   `json:"item"`
	}{UserID: userID, Item: item}

	var res SaveResult
	if err := c.post(ctx, "/v1/items", body, &res, http.StatusCreated, http.StatusAccepted); err != nil {
		return SaveResult{}, err
	}
	return res, nil
}

// Health reports the server's component health.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("keepstack: build request: %w", err)
	}

	var status HealthStatus
	if err := c.do(req, &status, http.StatusOK); err != nil {
		return HealthStatus{}, err
	}
	return status, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any, okStatuses ...int) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("keepstack: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("keepstack: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out, okStatuses...)
}

func (c *Client) do(req *http.Request, out any, okStatuses ...int) error {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("keepstack: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	for _, s := range okStatuses {
		if resp.StatusCode == s {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("keepstack: decode response: %w", err)
			}
			return nil
		}
	}

	return c.apiError(resp)
}

// apiError decodes the {error, details} envelope into an APIError. An
// undecodable body still yields an APIError with the status code.
func (c *Client) apiError(resp *http.Response) error {
	var envelope struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	msg := envelope.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		Details:    envelope.Details,
	}
}
