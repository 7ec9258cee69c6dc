package cmr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Middleware manipulates an outgoing *http.Request before it is executed.
// The context is provided for cancellation and to support auth
// implementations that may need to perform async operations.
type Middleware func(context.Context, *http.Request) error

// Logger is the minimal logging interface used by the client. The zap
// sugared logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// ClientOption configures a Client during construction.
type ClientOption func(*Client) error

// Client talks to one CMR deployment: its GraphQL API for collection
// discovery and its search application for service associations.
type Client struct {
	env        EnvironmentConfig
	graphqlURL *url.URL
	searchURL  *url.URL
	httpClient *http.Client
	middleware []Middleware
	logger     Logger
}

// WithHTTPClient injects a custom http.Client, typically one carrying an
// auth transport.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		if httpClient == nil {
			return errors.New("cmr: http client cannot be nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithTimeout sets a per-request timeout on the underlying http.Client.
// A non-positive value leaves the transport default in place.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) error {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
		return nil
	}
}

// WithMiddleware registers one or more request-middleware functions.
func WithMiddleware(mw ...Middleware) ClientOption {
	return func(c *Client) error {
		c.middleware = append(c.middleware, mw...)
		return nil
	}
}

// WithLogger registers a logger used for request lifecycle events.
func WithLogger(logger Logger) ClientOption {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// NewClient creates a client for the given deployment.
func NewClient(env EnvironmentConfig, opts ...ClientOption) (*Client, error) {
	graphqlURL, err := url.Parse(env.GraphQLEndpoint)
	if err != nil {
		return nil, err
	}

	c := &Client{
		env:        env,
		graphqlURL: graphqlURL,
		httpClient: &http.Client{},
		logger:     nopLogger{},
	}

	if env.SearchRoot != "" {
		if c.searchURL, err = url.Parse(env.SearchRoot); err != nil {
			return nil, err
		}
	}

	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// doRequest is the single funnel through which every outbound call goes:
// it builds the request, runs the registered middleware, and executes it.
func (c *Client) doRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, mw := range c.middleware {
		if err := mw(ctx, req); err != nil {
			return nil, err
		}
	}

	c.logger.Debugf("%s %s", method, rawURL)
	return c.httpClient.Do(req)
}

// doJSON issues a request with a JSON body and decodes a JSON response
// into out. Non-2xx responses become an *APIError.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.doRequest(ctx, method, rawURL, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, URL: rawURL, Body: raw}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
