package cmr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssociations(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   []associationEntry
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(testEnv(server))
	require.NoError(t, err)

	err = client.CreateAssociations(context.Background(), "S100-EEDTEST", []string{"C1-POCLOUD", "C2-POCLOUD"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/search/services/S100-EEDTEST/associations", gotPath)
	assert.Equal(t, []associationEntry{{ConceptID: "C1-POCLOUD"}, {ConceptID: "C2-POCLOUD"}}, gotBody)
}

func TestRemoveAssociations(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(testEnv(server))
	require.NoError(t, err)

	err = client.RemoveAssociations(context.Background(), "S100-EEDTEST", []string{"C1-POCLOUD"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestCreateAssociationsFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no permission", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient(testEnv(server))
	require.NoError(t, err)

	err = client.CreateAssociations(context.Background(), "S100-EEDTEST", []string{"C1-POCLOUD"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, apiErr.Temporary())
}

func TestAssociatedCollections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/services.umm_json", r.URL.Path)
		assert.Equal(t, "S200-POCLOUD", r.URL.Query().Get("concept_id"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"items": [{
				"meta": {
					"associations": {
						"collections": ["C1-POCLOUD", "C2-OTHER", "C3-pocloud"]
					}
				}
			}]
		}`)
	}))
	defer server.Close()

	client, err := NewClient(testEnv(server))
	require.NoError(t, err)

	collections, err := client.AssociatedCollections(context.Background(), "S200-POCLOUD", "POCLOUD")
	require.NoError(t, err)
	assert.Equal(t, []string{"C1-POCLOUD", "C3-pocloud"}, collections)
}

func TestAssociatedCollectionsServiceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items": []}`)
	}))
	defer server.Close()

	client, err := NewClient(testEnv(server))
	require.NoError(t, err)

	_, err = client.AssociatedCollections(context.Background(), "S404-NOPE", "POCLOUD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceNotFound))
	assert.Contains(t, err.Error(), "S404-NOPE")
}

func TestAssociationsUnsupportedEnvironment(t *testing.T) {
	env := EnvironmentConfig{GraphQLEndpoint: "https://graphql.sit.earthdata.nasa.gov/api"}
	client, err := NewClient(env)
	require.NoError(t, err)

	err = client.CreateAssociations(context.Background(), "S1-X", []string{"C1-X"})
	assert.ErrorIs(t, err, ErrAssociationsUnsupported)

	_, err = client.AssociatedCollections(context.Background(), "S1-X", "X")
	assert.ErrorIs(t, err, ErrAssociationsUnsupported)
}
