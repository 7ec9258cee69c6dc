package cmr

import (
	"fmt"
	"strings"
)

// Environment identifies one of the CMR deployments.
type Environment string

const (
	EnvSIT  Environment = "sit"
	EnvUAT  Environment = "uat"
	EnvProd Environment = "prod"
)

// EnvironmentConfig holds the per-deployment endpoints and constants.
// Instances are immutable; callers receive copies from LookupEnvironment.
type EnvironmentConfig struct {
	// EDLRoot is the Earthdata Login root used for token bootstrap.
	EDLRoot string
	// GraphQLEndpoint is the CMR GraphQL API endpoint.
	GraphQLEndpoint string
	// HyraxSubstring is the host fragment identifying the cloud Hyrax
	// deployment in a granule's related URLs.
	HyraxSubstring string
	// SearchRoot is the CMR search application root. Empty for
	// deployments where association flows are unsupported.
	SearchRoot string
	// OpenDAPServiceID is the concept ID of the canonical OPeNDAP
	// UMM-S record. Empty where association flows are unsupported.
	OpenDAPServiceID string
}

var environments = map[Environment]EnvironmentConfig{
	EnvProd: {
		EDLRoot:          "https://urs.earthdata.nasa.gov",
		GraphQLEndpoint:  "https://graphql.earthdata.nasa.gov/api",
		HyraxSubstring:   "opendap.earthdata.nasa.gov",
		SearchRoot:       "https://cmr.earthdata.nasa.gov",
		OpenDAPServiceID: "S2874702816-XYZ_PROV",
	},
	EnvUAT: {
		EDLRoot:          "https://uat.urs.earthdata.nasa.gov",
		GraphQLEndpoint:  "https://graphql.uat.earthdata.nasa.gov/api",
		HyraxSubstring:   "opendap.uat.earthdata.nasa.gov",
		SearchRoot:       "https://cmr.uat.earthdata.nasa.gov",
		OpenDAPServiceID: "S1262134530-EEDTEST",
	},
	EnvSIT: {
		EDLRoot:         "https://sit.urs.earthdata.nasa.gov",
		GraphQLEndpoint: "https://graphql.sit.earthdata.nasa.gov/api",
		HyraxSubstring:  "opendap.sit.earthdata.nasa.gov",
	},
}

// LookupEnvironment resolves a (case-insensitive) environment name to its
// configuration. Unknown names return ErrUnknownEnvironment.
func LookupEnvironment(name string) (Environment, EnvironmentConfig, error) {
	environment := Environment(strings.ToLower(name))
	cfg, ok := environments[environment]
	if !ok {
		return "", EnvironmentConfig{}, fmt.Errorf("%w: %q (expected sit, uat or prod)", ErrUnknownEnvironment, name)
	}
	return environment, cfg, nil
}

// SupportsAssociations reports whether the deployment exposes the CMR
// search application used by the association flows.
func (c EnvironmentConfig) SupportsAssociations() bool {
	return c.SearchRoot != "" && c.OpenDAPServiceID != ""
}
