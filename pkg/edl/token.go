// Package edl bootstraps Earthdata Login bearer tokens for the CMR
// GraphQL API. Credentials ride on the injected http.Client transport.
package edl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/earthdata-tools/cmr-opendap/pkg/cmr"
)

// Client retrieves tokens from an Earthdata Login deployment.
type Client struct {
	root       *url.URL
	httpClient *http.Client
	logger     cmr.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client, typically carrying a
// basic-auth transport with the operator's EDL credentials.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger registers a logger for token lifecycle events.
func WithLogger(logger cmr.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// NewClient creates a token client for the given EDL root URL.
func NewClient(edlRoot string, opts ...Option) (*Client, error) {
	root, err := url.Parse(edlRoot)
	if err != nil {
		return nil, err
	}
	c := &Client{
		root:       root,
		httpClient: &http.Client{},
		logger:     nopLogger{},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

type tokenRecord struct {
	AccessToken string `json:"access_token"`
}

// FetchToken returns an existing EDL token for the authenticated user,
// generating a fresh one if none exists. Any non-2xx response is fatal.
func (c *Client) FetchToken(ctx context.Context) (string, error) {
	var existing []tokenRecord
	if err := c.requestJSON(ctx, http.MethodGet, c.root.JoinPath("api", "users", "tokens").String(), &existing); err != nil {
		return "", err
	}

	if len(existing) > 0 {
		c.logger.Debugf("reusing existing EDL token")
		return existing[0].AccessToken, nil
	}

	c.logger.Debugf("no existing EDL token, generating one")
	var created tokenRecord
	if err := c.requestJSON(ctx, http.MethodPost, c.root.JoinPath("api", "users", "token").String(), &created); err != nil {
		return "", err
	}
	return created.AccessToken, nil
}

func (c *Client) requestJSON(ctx context.Context, method, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("edl: %s %s: status=%d body=%s", method, rawURL, resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
