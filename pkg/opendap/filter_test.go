package opendap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earthdata-tools/cmr-opendap/pkg/cmr"
)

const hyrax = "opendap.earthdata.nasa.gov"

func withRelatedURL(related cmr.RelatedURL) cmr.Collection {
	return cmr.Collection{
		ShortName: "SST_L2",
		Version:   "1",
		ConceptID: "C1-POCLOUD",
		Granules:  &cmr.GranuleList{Items: []cmr.Granule{{RelatedURLs: []cmr.RelatedURL{related}}}},
	}
}

func TestHasOpenDAPURL(t *testing.T) {
	match := cmr.RelatedURL{
		Type:    "USE SERVICE API",
		Subtype: "OPENDAP DATA",
		URL:     "https://opendap.earthdata.nasa.gov/collections/C1-POCLOUD",
	}

	tests := []struct {
		name    string
		related cmr.RelatedURL
		want    bool
	}{
		{name: "all three conditions", related: match, want: true},
		{name: "wrong type", related: cmr.RelatedURL{Type: "GET DATA", Subtype: match.Subtype, URL: match.URL}, want: false},
		{name: "wrong subtype", related: cmr.RelatedURL{Type: match.Type, Subtype: "DIRECT DOWNLOAD", URL: match.URL}, want: false},
		{name: "wrong host", related: cmr.RelatedURL{Type: match.Type, Subtype: match.Subtype, URL: "https://opendap.example.org/x"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasOpenDAPURL(withRelatedURL(tt.related), hyrax))
		})
	}
}

func TestHasOpenDAPURLAbsentData(t *testing.T) {
	tests := []struct {
		name       string
		collection cmr.Collection
	}{
		{name: "no granules field", collection: cmr.Collection{ShortName: "A", ConceptID: "C1-X"}},
		{name: "empty granule list", collection: cmr.Collection{ShortName: "B", ConceptID: "C2-X", Granules: &cmr.GranuleList{}}},
		{name: "granule without related urls", collection: cmr.Collection{ShortName: "C", ConceptID: "C3-X", Granules: &cmr.GranuleList{Items: []cmr.Granule{{}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, HasOpenDAPURL(tt.collection, hyrax))
		})
	}
}

func TestFilterSubset(t *testing.T) {
	matching := withRelatedURL(cmr.RelatedURL{
		Type:    "USE SERVICE API",
		Subtype: "OPENDAP DATA",
		URL:     "https://opendap.earthdata.nasa.gov/x",
	})
	nonMatching := cmr.Collection{ShortName: "OTHER", ConceptID: "C9-OTHER"}

	input := []cmr.Collection{matching, nonMatching}
	filtered, err := Filter(input, hyrax, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(filtered), len(input))
	require.Len(t, filtered, 1)
	assert.Equal(t, matching.ConceptID, filtered[0].ConceptID)

	// Input must not be mutated.
	assert.Len(t, input, 2)
	assert.Equal(t, "C9-OTHER", input[1].ConceptID)
}

func TestFilterMissingShortNameIsFatal(t *testing.T) {
	input := []cmr.Collection{{ConceptID: "C8-BROKEN"}}
	_, err := Filter(input, hyrax, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C8-BROKEN")
}

func TestRecords(t *testing.T) {
	input := []cmr.Collection{{ShortName: "SST_L2", Version: "2.0", ConceptID: "C1-POCLOUD"}}
	records := Records(input)
	require.Len(t, records, 1)
	assert.Equal(t, cmr.CollectionRecord{ShortName: "SST_L2", Version: "2.0", ConceptID: "C1-POCLOUD"}, records[0])
}
