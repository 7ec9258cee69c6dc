package cmr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type associationEntry struct {
	ConceptID string `json:"concept_id"`
}

// serviceSearchResponse is the umm_json envelope for a UMM-S lookup. Only
// the association metadata is of interest here.
type serviceSearchResponse struct {
	Items []struct {
		Meta struct {
			Associations struct {
				Collections []string `json:"collections"`
			} `json:"associations"`
		} `json:"meta"`
	} `json:"items"`
}

func (c *Client) associationsURL(serviceConceptID string) (string, error) {
	if c.searchURL == nil {
		return "", ErrAssociationsUnsupported
	}
	return c.searchURL.JoinPath("search", "services", serviceConceptID, "associations").String(), nil
}

func associationPayload(conceptIDs []string) []associationEntry {
	payload := make([]associationEntry, 0, len(conceptIDs))
	for _, id := range conceptIDs {
		payload = append(payload, associationEntry{ConceptID: id})
	}
	return payload
}

// CreateAssociations issues a single bulk request associating every
// listed collection with the given UMM-S record. Any non-2xx response is
// fatal; CMR applies the whole batch or none of it.
func (c *Client) CreateAssociations(ctx context.Context, serviceConceptID string, conceptIDs []string) error {
	u, err := c.associationsURL(serviceConceptID)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, u, associationPayload(conceptIDs), nil)
}

// RemoveAssociations issues a single bulk request removing the
// associations between the listed collections and the given UMM-S record.
func (c *Client) RemoveAssociations(ctx context.Context, serviceConceptID string, conceptIDs []string) error {
	u, err := c.associationsURL(serviceConceptID)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, u, associationPayload(conceptIDs), nil)
}

// AssociatedCollections returns the concept IDs of the collections
// currently associated with the given UMM-S record, restricted to those
// owned by the given provider.
func (c *Client) AssociatedCollections(ctx context.Context, serviceConceptID, provider string) ([]string, error) {
	if c.searchURL == nil {
		return nil, ErrAssociationsUnsupported
	}

	u := c.searchURL.JoinPath("search", "services.umm_json")
	u.RawQuery = url.Values{"concept_id": []string{serviceConceptID}}.Encode()

	var resp serviceSearchResponse
	if err := c.doJSON(ctx, http.MethodGet, u.String(), nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceConceptID)
	}

	return FilterByProvider(resp.Items[0].Meta.Associations.Collections, provider), nil
}
