package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Error kinds the client distinguishes. Only a 401 on login maps to
// ErrCredentialsRejected; every other non-success outcome (bad status,
// malformed body, transport failure) is ErrServiceUnreachable.
var (
	ErrCredentialsRejected = errors.New("credentials rejected")
	ErrServiceUnreachable  = errors.New("service unreachable")
)

// Client calls the hospital admin HTTP API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient constructs a Client.
// base := "http://localhost:8080" (no trailing slash required).
// timeout controls the HTTP client request timeout.
func NewClient(base string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) endpoint(parts ...string) string {
	u := *c.baseURL // copy
	u.Path = path.Join(append([]string{c.baseURL.Path, "api"}, parts...)...)
	return u.String()
}

// Login submits credentials. A 2xx response means success; the body is
// ignored. A 401 is a credential rejection; anything else is treated as
// the service being unreachable.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("login"), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrCredentialsRejected
	default:
		return fmt.Errorf("%w: login status %d", ErrServiceUnreachable, resp.StatusCode)
	}
}

// ListPatients fetches the full roster.
func (c *Client) ListPatients(ctx context.Context) ([]Patient, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("patients"), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("%w: patients status %d: %s", ErrServiceUnreachable, resp.StatusCode, string(body))
	}

	var patients []Patient
	if err := json.NewDecoder(resp.Body).Decode(&patients); err != nil {
		return nil, fmt.Errorf("%w: decode patients: %v", ErrServiceUnreachable, err)
	}
	return patients, nil
}

// AddPatient submits a draft. The response body is not required to carry
// the created record; callers reconcile with a follow-up ListPatients.
func (c *Client) AddPatient(ctx context.Context, d Draft) error {
	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("add_patient"), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: add_patient status %d", ErrServiceUnreachable, resp.StatusCode)
	}
	return nil
}

// Stats fetches the overview numbers.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("stats"), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: stats status %d", ErrServiceUnreachable, resp.StatusCode)
	}

	var s Stats
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: decode stats: %v", ErrServiceUnreachable, err)
	}
	return &s, nil
}
