// Package auth provides http.RoundTripper wrappers that attach the
// credentials used by the different CMR flows.
package auth

import "net/http"

// BearerTokenTransport injects an EDL bearer token, as expected by the
// CMR GraphQL API.
type BearerTokenTransport struct {
	Token string
	Base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *BearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.Token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.Token)
	}
	return base(t.Base).RoundTrip(clone)
}

// TokenTransport injects a raw token value, LaunchPad style: the CMR
// search application expects the token without a Bearer prefix.
type TokenTransport struct {
	Token string
	Base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *TokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.Token != "" {
		clone.Header.Set("Authorization", t.Token)
	}
	return base(t.Base).RoundTrip(clone)
}

// BasicAuthTransport injects Earthdata Login username/password
// credentials, the Go analogue of a .netrc entry.
type BasicAuthTransport struct {
	Username string
	Password string
	Base     http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *BasicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.Username != "" {
		clone.SetBasicAuth(t.Username, t.Password)
	}
	return base(t.Base).RoundTrip(clone)
}

func base(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		return http.DefaultTransport
	}
	return rt
}
