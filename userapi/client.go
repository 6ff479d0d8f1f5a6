// Package userapi is the HTTP client for the user endpoint the widgets read from.
//
// The endpoint returns a JSON user object, or JSON null when the user does not
// exist. GetUser reports absence as a nil *User with a nil error.
package userapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// User is the record the widgets render.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const (
	// DefaultBaseURL is the public placeholder API.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"
	// UsersPath is the plural endpoint template.
	UsersPath = "/users/{id}"
	// UserPath is the singular endpoint template used by the status widget.
	UserPath = "/user/{id}"

	maxBody = 1 << 20
)

// StatusError is returned for non-2xx responses other than 404.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Client fetches users over HTTP.
type Client struct {
	BaseURL      string
	PathTemplate string
	HTTPClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithPath sets the endpoint template; "{id}" is replaced by the user id.
func WithPath(tmpl string) Option {
	return func(c *Client) { c.PathTemplate = tmpl }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout sets a per-request timeout on a fresh HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient = &http.Client{Timeout: d} }
}

// New returns a Client for baseURL using UsersPath unless configured otherwise.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		PathTemplate: UsersPath,
		HTTPClient:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the request URL for id.
func (c *Client) URL(id int) string {
	return c.BaseURL + strings.ReplaceAll(c.PathTemplate, "{id}", strconv.Itoa(id))
}

// GetUser fetches user id. A 404, an empty body or a JSON null yields (nil, nil).
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	url := c.URL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for user %d: %w", id, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("reading user %d: %w", id, err)
	}
	return decodeUser(body)
}

func decodeUser(body []byte) (*User, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	var u *User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return u, nil
}
