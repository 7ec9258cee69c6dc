// Package opendap decides whether CMR collections expose a cloud Hyrax
// endpoint, based on the related URLs of their first granule.
package opendap

import (
	"fmt"
	"strings"

	"github.com/earthdata-tools/cmr-opendap/pkg/cmr"
)

const (
	relatedURLType    = "USE SERVICE API"
	relatedURLSubtype = "OPENDAP DATA"
)

// HasOpenDAPURL reports whether any related URL of the collection's first
// granule is a service-API OPeNDAP URL pointing at the given Hyrax host.
// Collections without granules or related URLs simply report false.
func HasOpenDAPURL(collection cmr.Collection, hyraxSubstring string) bool {
	for _, related := range collection.RelatedURLs() {
		if related.Type == relatedURLType &&
			related.Subtype == relatedURLSubtype &&
			strings.Contains(related.URL, hyraxSubstring) {
			return true
		}
	}
	return false
}

// Filter returns the subset of collections exposing an OPeNDAP endpoint.
// The input is not modified. A collection missing its short name is a
// schema violation worth surfacing: the offending concept ID is logged
// and an error returned.
func Filter(collections []cmr.Collection, hyraxSubstring string, logger cmr.Logger) ([]cmr.Collection, error) {
	var matched []cmr.Collection
	for _, collection := range collections {
		if collection.ShortName == "" {
			if logger != nil {
				logger.Errorf("collection %s has no short name", collection.ConceptID)
			}
			return nil, fmt.Errorf("opendap: collection %s has no short name", collection.ConceptID)
		}
		if HasOpenDAPURL(collection, hyraxSubstring) {
			matched = append(matched, collection)
		}
	}
	return matched, nil
}

// Records projects collections into their persisted snapshot form.
func Records(collections []cmr.Collection) []cmr.CollectionRecord {
	records := make([]cmr.CollectionRecord, 0, len(collections))
	for _, collection := range collections {
		records = append(records, collection.Record())
	}
	return records
}
