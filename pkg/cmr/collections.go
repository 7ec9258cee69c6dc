package cmr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const (
	// collectionPageSize keeps GraphQL responses small enough to avoid
	// server-side timeouts.
	collectionPageSize = 100
	// granulePageLimit requests only the first granule per collection.
	granulePageLimit = 1
	// FetchErrorBudget is the number of failed page requests tolerated
	// before a fetch gives up and returns what it has.
	FetchErrorBudget = 3
)

const collectionsQuery = `
query Collections($collectionParams: CollectionsInput, $granulesParams: GranulesInput) {
  collections(params: $collectionParams) {
    count
    cursor
    items {
      shortName
      version
      conceptId
      granules(params: $granulesParams) {
        items {
          relatedUrls
        }
      }
    }
  }
}
`

type collectionsVariables struct {
	CollectionParams collectionParams `json:"collectionParams"`
	GranulesParams   granulesParams   `json:"granulesParams"`
}

type collectionParams struct {
	CloudHosted bool   `json:"cloudHosted"`
	Limit       int    `json:"limit"`
	Cursor      string `json:"cursor,omitempty"`
}

type granulesParams struct {
	Limit int `json:"limit"`
}

type graphqlRequest struct {
	OperationName string               `json:"operationName"`
	Query         string               `json:"query"`
	Variables     collectionsVariables `json:"variables"`
}

type collectionsResponse struct {
	Data struct {
		Collections struct {
			Count  int          `json:"count"`
			Cursor string       `json:"cursor"`
			Items  []Collection `json:"items"`
		} `json:"collections"`
	} `json:"data"`
}

// CloudHostedCollections pages through the GraphQL Collections operation
// and returns every cloud-hosted collection, each annotated with its
// first granule's related URLs.
//
// Non-2xx responses are logged and retried against a fixed error budget;
// when the budget is exhausted the partial accumulation is returned with
// a nil error, since a partial list is still usable by callers. Transport
// and decode failures are fatal and return alongside whatever was
// accumulated.
func (c *Client) CloudHostedCollections(ctx context.Context) ([]Collection, error) {
	request := graphqlRequest{
		OperationName: "Collections",
		Query:         collectionsQuery,
		Variables: collectionsVariables{
			CollectionParams: collectionParams{CloudHosted: true, Limit: collectionPageSize},
			GranulesParams:   granulesParams{Limit: granulePageLimit},
		},
	}

	budget := NewBudget(FetchErrorBudget)

	var collections []Collection
	// Non-zero placeholder until the first response reports the real total.
	count := 1

	for len(collections) < count {
		var page collectionsResponse
		err := c.doJSON(ctx, http.MethodPost, c.graphqlURL.String(), request, &page)

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.logger.Errorf("collections page failed: status=%d body=%s", apiErr.Status, apiErr.Body)
			if budget.Spend() {
				c.logger.Errorf("error budget exhausted, returning %d collections", len(collections))
				return collections, nil
			}
			continue
		}
		if err != nil {
			return collections, fmt.Errorf("cmr: collections query: %w", err)
		}

		count = page.Data.Collections.Count
		collections = append(collections, page.Data.Collections.Items...)
		request.Variables.CollectionParams.Cursor = page.Data.Collections.Cursor

		c.logger.Infof("retrieved %d/%d collections", len(collections), count)
	}

	return collections, nil
}
