// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries NCBI E-utilities for PubMed records and selects the
// papers that have at least one author with a non-academic affiliation.
//
// A run is two sequential requests: ESearch returns PMIDs for a term, then
// one EFetch returns the XML records for all of them. Neither request is
// retried, paginated, or cached.
package pubmed

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

const (
	// DefaultBaseURL is the E-utilities root.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// DefaultMaxResults is the ESearch retmax used when none is configured.
	DefaultMaxResults = 100

	database = "pubmed"
)

// Client calls the ESearch and EFetch endpoints.
type Client struct {
	HTTP   *http.Client
	Config types.PubMedConfig
	Logger *slog.Logger
}

// NewClient returns a Client for cfg. Empty BaseURL and non-positive
// MaxResults are replaced with the defaults. A nil logger discards output.
func NewClient(cfg types.PubMedConfig, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

func (c *Client) endpoint(name string) string {
	return c.Config.BaseURL + "/" + name
}

// baseParams returns the parameters common to every E-utilities request.
func (c *Client) baseParams() url.Values {
	params := url.Values{"db": {database}}
	if c.Config.Tool != "" {
		params.Set("tool", c.Config.Tool)
	}
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
	return params
}

// redactedURL renders the request URL for logging with the API key hidden.
func redactedURL(endpoint string, params url.Values) string {
	if params.Get("api_key") != "" {
		clone := url.Values{}
		for k, v := range params {
			clone[k] = v
		}
		clone.Set("api_key", "REDACTED")
		params = clone
	}
	return endpoint + "?" + params.Encode()
}
