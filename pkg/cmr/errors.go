package cmr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEnvironment is returned for environment names outside
	// the supported deployments.
	ErrUnknownEnvironment = errors.New("cmr: unknown environment")
	// ErrAssociationsUnsupported indicates the deployment has no search
	// application configured for association flows.
	ErrAssociationsUnsupported = errors.New("cmr: associations not supported in this environment")
	// ErrServiceNotFound indicates a UMM-S lookup returned no records.
	ErrServiceNotFound = errors.New("cmr: service record not found")
)

// APIError represents a non-2xx response from CMR or its GraphQL API.
type APIError struct {
	Status int
	URL    string
	Body   []byte
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("cmr: api error status=%d url=%s", e.Status, e.URL)
	}
	return fmt.Sprintf("cmr: api error status=%d url=%s body=%s", e.Status, e.URL, e.Body)
}

// Temporary reports whether the error is worth spending retry budget on.
func (e *APIError) Temporary() bool {
	if e == nil {
		return false
	}
	return e.Status >= 500 && e.Status < 600
}
