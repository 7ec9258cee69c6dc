package cmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEnvironment(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         Environment
		associations bool
	}{
		{name: "prod", input: "prod", want: EnvProd, associations: true},
		{name: "uat", input: "uat", want: EnvUAT, associations: true},
		{name: "sit", input: "sit", want: EnvSIT, associations: false},
		{name: "case insensitive", input: "PROD", want: EnvProd, associations: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environment, cfg, err := LookupEnvironment(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, environment)
			assert.NotEmpty(t, cfg.EDLRoot)
			assert.NotEmpty(t, cfg.GraphQLEndpoint)
			assert.NotEmpty(t, cfg.HyraxSubstring)
			assert.Equal(t, tt.associations, cfg.SupportsAssociations())
		})
	}
}

func TestLookupEnvironmentUnknown(t *testing.T) {
	_, _, err := LookupEnvironment("staging")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
	assert.Contains(t, err.Error(), "staging")
}
