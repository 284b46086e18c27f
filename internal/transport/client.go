// Package transport provides the HTTP client used to download the manifest
// and remote metadata documents.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/toolness/nycdb-fun/pkg/constants"
	"github.com/toolness/nycdb-fun/pkg/errors"
)

// DefaultUserAgent identifies the tool to remote servers.
const DefaultUserAgent = "nycdb-schema"

// Client performs authenticated GET requests.
type Client struct {
	http      *http.Client
	auth      Authenticator
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithAuth sets the authenticator applied to every request.
func WithAuth(auth Authenticator) Option {
	return func(c *Client) {
		if auth != nil {
			c.auth = auth
		}
	}
}

// WithTimeout sets the overall request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: constants.DefaultHTTPTimeout},
		auth:      &NoAuth{},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request with authentication applied.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	c.auth.Apply(req)
	return c.http.Do(req)
}

// Fetch downloads url and returns the response body. source names the
// remote service in errors. Any status other than 200 is an HTTPError.
func (c *Client) Fetch(ctx context.Context, source, url string) ([]byte, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Join(errors.ErrCanceled, ctx.Err())
		}
		return nil, &errors.HTTPError{Source: source, URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewHTTPError(source, url, resp.StatusCode)
	}
	return body, nil
}

// DecodeJSON decodes a JSON document into target. name identifies the
// document in errors.
func DecodeJSON(data []byte, target any, name string) error {
	if err := json.Unmarshal(data, target); err != nil {
		return errors.WrapParse("json", name, err)
	}
	return nil
}
