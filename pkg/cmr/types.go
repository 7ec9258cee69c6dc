package cmr

import "strings"

// Collection is a UMM-C summary as returned by the GraphQL Collections
// operation. Only the first granule is ever requested, so GranuleList
// carries at most one entry.
type Collection struct {
	ShortName string       `json:"shortName"`
	Version   string       `json:"version"`
	ConceptID string       `json:"conceptId"`
	Granules  *GranuleList `json:"granules,omitempty"`
}

// GranuleList wraps the granule items returned for a collection.
type GranuleList struct {
	Items []Granule `json:"items"`
}

// Granule is a UMM-G summary carrying only the related URLs.
type Granule struct {
	RelatedURLs []RelatedURL `json:"relatedUrls"`
}

// RelatedURL is a typed access URL attached to a granule.
type RelatedURL struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	URL     string `json:"url"`
}

// RelatedURLs returns the related URLs of the collection's first granule.
// Collections without granules, and granules without related URLs, yield
// an empty slice.
func (c Collection) RelatedURLs() []RelatedURL {
	if c.Granules == nil || len(c.Granules.Items) == 0 {
		return nil
	}
	return c.Granules.Items[0].RelatedURLs
}

// CollectionRecord is the projection of a Collection persisted in the
// filtered snapshot.
type CollectionRecord struct {
	ShortName string `json:"short_name"`
	Version   string `json:"version"`
	ConceptID string `json:"concept_id"`
}

// Record projects the collection into its persisted form.
func (c Collection) Record() CollectionRecord {
	return CollectionRecord{
		ShortName: c.ShortName,
		Version:   c.Version,
		ConceptID: c.ConceptID,
	}
}

// FilterByProvider returns the concept IDs owned by the given provider.
// Ownership is a case-insensitive suffix match on the concept ID.
func FilterByProvider(conceptIDs []string, provider string) []string {
	suffix := strings.ToLower(provider)
	var owned []string
	for _, id := range conceptIDs {
		if strings.HasSuffix(strings.ToLower(id), suffix) {
			owned = append(owned, id)
		}
	}
	return owned
}

// ShortNamesForProvider returns the short names of the records whose
// concept ID is owned by the given provider.
func ShortNamesForProvider(records []CollectionRecord, provider string) []string {
	suffix := strings.ToLower(provider)
	var names []string
	for _, record := range records {
		if strings.HasSuffix(strings.ToLower(record.ConceptID), suffix) {
			names = append(names, record.ShortName)
		}
	}
	return names
}
