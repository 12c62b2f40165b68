// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pdiddy/get-papers-list/internal/httputil"
)

// SearchIDs runs an ESearch for term and returns the matching PMIDs in the
// order PubMed lists them. maxResults <= 0 uses the configured retmax.
func (c *Client) SearchIDs(ctx context.Context, term string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = c.Config.MaxResults
	}

	params := c.baseParams()
	params.Set("term", term)
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(maxResults))

	endpoint := c.endpoint("esearch.fcgi")
	c.Logger.Debug("esearch", "url", redactedURL(endpoint, params))

	body, err := httputil.Get(ctx, c.HTTP, endpoint, params, c.Config.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("PubMed search: %w", err)
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing PubMed search response: %w", err)
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("parsing PubMed search response: missing esearchresult")
	}
	// A warning in ERROR does not discard IDs that came back with it.
	if resp.Result.IDList == nil {
		if resp.Result.Error != "" {
			return nil, fmt.Errorf("PubMed search: %s", resp.Result.Error)
		}
		return nil, fmt.Errorf("parsing PubMed search response: missing idlist")
	}
	if resp.Result.Error != "" {
		c.Logger.Warn("esearch reported an error", "error", resp.Result.Error)
	}

	ids := *resp.Result.IDList
	c.Logger.Debug("esearch done", "count", resp.Result.Count, "returned", len(ids))
	return ids, nil
}

// ESearch JSON structures.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string    `json:"count"`
	IDList *[]string `json:"idlist"`
	Error  string    `json:"ERROR"`
}
